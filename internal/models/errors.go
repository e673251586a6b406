package models

import (
	"fmt"
	"strings"
)

// ErrValidation indica que el cuerpo del request no cumple el esquema.
// Se produce antes de abrir cualquier conexión.
type ErrValidation struct {
	Details []ValidationDetail
}

func NewErrValidation(details ...ValidationDetail) *ErrValidation {
	return &ErrValidation{Details: details}
}

func (e *ErrValidation) Error() string {
	parts := make([]string, len(e.Details))
	for i, d := range e.Details {
		parts[i] = fmt.Sprintf("%s: %s", strings.Join(d.Loc, "."), d.Msg)
	}
	return "Error de validación: " + strings.Join(parts, "; ")
}

// ErrConnection indica que no se pudo establecer la conexión con la base de datos.
type ErrConnection struct {
	Cause error
}

func NewErrConnection(cause error) *ErrConnection {
	return &ErrConnection{Cause: cause}
}

func (e *ErrConnection) Error() string {
	return "Error de conexión a la base de datos"
}

func (e *ErrConnection) Unwrap() error {
	return e.Cause
}

// ErrStorage indica que la sentencia SQL falló (restricción, tipo, etc.).
// El mensaje incluye el texto del driver.
type ErrStorage struct {
	Cause error
}

func NewErrStorage(cause error) *ErrStorage {
	return &ErrStorage{Cause: cause}
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("Error en la base de datos: %v", e.Cause)
}

func (e *ErrStorage) Unwrap() error {
	return e.Cause
}

// ErrUnexpected cubre cualquier otra falla durante el procesamiento.
type ErrUnexpected struct {
	Cause error
}

func NewErrUnexpected(cause error) *ErrUnexpected {
	return &ErrUnexpected{Cause: cause}
}

func (e *ErrUnexpected) Error() string {
	return fmt.Sprintf("Error inesperado: %v", e.Cause)
}

func (e *ErrUnexpected) Unwrap() error {
	return e.Cause
}

// ErrAuthentication indica credenciales inválidas en /login.
type ErrAuthentication struct{}

func NewErrAuthentication() *ErrAuthentication {
	return &ErrAuthentication{}
}

func (e *ErrAuthentication) Error() string {
	return "Credenciales inválidas"
}
