package models

import "time"

// LoginRequest representa las credenciales enviadas por el cliente.
type LoginRequest struct {
	Correo     string `json:"correo"`
	Contrasena string `json:"contrasena"`
}

// LoginResponse se retorna tras una autenticación exitosa.
type LoginResponse struct {
	Token     string     `json:"token"`
	Usuario   UsuarioDTO `json:"usuario"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// ErrorResponse es la forma de error de la API: {"detail": "..."}.
// En errores de validación Detail es una lista de ValidationDetail.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

// ValidationDetail describe un campo rechazado por el esquema.
type ValidationDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}
