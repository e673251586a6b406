// Package registro implementa el registro y la autenticación de usuarios
// sobre la tabla usuarios.
package registro

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/yourorg/registrocl/internal/db"
	"github.com/yourorg/registrocl/internal/models"
	"github.com/yourorg/registrocl/internal/password"
)

// Todas las columnas salvo id son de texto; fecha incluida.
const (
	insertUsuarioQuery = `
		INSERT INTO usuarios (nombre, apellido, cedula, telefono, fecha, genero, correo, contrasena)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, nombre, apellido, cedula, telefono, fecha, genero, correo, contrasena`

	selectUsuarioPorCorreoQuery = `
		SELECT id, nombre, apellido, cedula, telefono, fecha, genero, correo, contrasena
		FROM usuarios
		WHERE correo = ?
		ORDER BY id DESC
		LIMIT 1`
)

// Connector entrega una conexión nueva por llamada; el llamador la cierra.
// handlers declara la misma interfaz para /health; *db.Connector satisface ambas.
type Connector interface {
	Connect(ctx context.Context) (*sql.DB, error)
}

// Service registra usuarios. No guarda estado entre requests: cada llamada
// abre su propia conexión y su propia transacción.
type Service struct {
	connector Connector
	dialect   db.Dialect
	hasher    password.Hasher
}

// NewService crea el servicio de registro.
func NewService(connector Connector, dialect db.Dialect, hasher password.Hasher) *Service {
	return &Service{
		connector: connector,
		dialect:   dialect,
		hasher:    hasher,
	}
}

// Register hashea la contraseña, inserta la fila y la retorna tal como quedó
// almacenada (incluido el hash). Los errores son *models.ErrConnection,
// *models.ErrStorage o *models.ErrUnexpected; ante cualquiera de ellos no
// queda ninguna fila persistida.
func (s *Service) Register(ctx context.Context, req models.RegistroRequest) (usuario *models.Usuario, err error) {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		log.Printf("❌ Error al conectar a la base de datos: %v", err)
		return nil, models.NewErrConnection(err)
	}
	defer conn.Close()

	var tx *sql.Tx
	defer func() {
		if r := recover(); r != nil {
			err = models.NewErrUnexpected(fmt.Errorf("%v", r))
			usuario = nil
		}
		if err != nil && tx != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("⚠️ Error en rollback: %v", rbErr)
			}
		}
		if err != nil {
			if _, unexpected := err.(*models.ErrUnexpected); unexpected {
				log.Printf("❌ Error inesperado: %v", errors.Cause(err))
			}
		}
	}()

	hash, err := s.hasher.Hash(req.Contrasena)
	if err != nil {
		return nil, models.NewErrUnexpected(err)
	}
	// El texto plano no sale de este punto.
	req.Contrasena = ""

	tx, err = conn.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Error en la consulta SQL: %v", err)
		return nil, models.NewErrStorage(err)
	}

	u := &models.Usuario{}
	err = tx.QueryRowContext(ctx, s.dialect.Rebind(insertUsuarioQuery),
		req.Nombre,
		req.Apellido,
		req.Cedula,
		req.Telefono,
		req.Fecha,
		req.Genero,
		req.Correo,
		hash,
	).Scan(
		&u.ID,
		&u.Nombre,
		&u.Apellido,
		&u.Cedula,
		&u.Telefono,
		&u.Fecha,
		&u.Genero,
		&u.Correo,
		&u.Contrasena,
	)
	if err != nil {
		log.Printf("❌ Error en la consulta SQL: %v", err)
		return nil, models.NewErrStorage(err)
	}

	if err = tx.Commit(); err != nil {
		log.Printf("❌ Error confirmando la transacción: %v", err)
		return nil, models.NewErrStorage(err)
	}

	log.Printf("✅ Usuario registrado: id=%d, correo=%s", u.ID, u.Correo)
	return u, nil
}

// Authenticate verifica las credenciales contra la fila más reciente con ese
// correo. Sin coincidencia retorna *models.ErrAuthentication.
func (s *Service) Authenticate(ctx context.Context, correo, contrasena string) (*models.Usuario, error) {
	conn, err := s.connector.Connect(ctx)
	if err != nil {
		log.Printf("❌ Error al conectar a la base de datos: %v", err)
		return nil, models.NewErrConnection(err)
	}
	defer conn.Close()

	u := &models.Usuario{}
	err = conn.QueryRowContext(ctx, s.dialect.Rebind(selectUsuarioPorCorreoQuery), correo).Scan(
		&u.ID,
		&u.Nombre,
		&u.Apellido,
		&u.Cedula,
		&u.Telefono,
		&u.Fecha,
		&u.Genero,
		&u.Correo,
		&u.Contrasena,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewErrAuthentication()
		}
		log.Printf("❌ Error consultando usuario: %v", err)
		return nil, models.NewErrStorage(err)
	}

	if !s.hasher.Check(u.Contrasena, contrasena) {
		return nil, models.NewErrAuthentication()
	}
	return u, nil
}
