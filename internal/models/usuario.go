package models

// RegistroRequest contiene los datos enviados a POST /registrar.
// Contrasena solo vive en memoria durante el request; nunca se persiste en claro.
type RegistroRequest struct {
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Cedula     string `json:"cedula"`
	Telefono   string `json:"telefono"`
	Fecha      string `json:"fecha"`
	Genero     string `json:"genero"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// Usuario es la fila de la tabla usuarios tal como la devuelve la base de datos.
// Contrasena contiene el hash bcrypt (la columna se sigue llamando contrasena).
type Usuario struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Cedula     string `json:"cedula"`
	Telefono   string `json:"telefono"`
	Fecha      string `json:"fecha"`
	Genero     string `json:"genero"`
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// UsuarioDTO es la representación mínima usada en respuestas de login.
type UsuarioDTO struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
}

// DTO descarta el hash y los datos personales que el login no necesita.
func (u *Usuario) DTO() UsuarioDTO {
	return UsuarioDTO{ID: u.ID, Nombre: u.Nombre, Apellido: u.Apellido, Correo: u.Correo}
}
