package models

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var errDriver = errors.New(`duplicate key value violates unique constraint "usuarios_cedula_key"`)

func TestErrValidation(t *testing.T) {
	err := NewErrValidation(
		ValidationDetail{Loc: []string{"body", "nombre"}, Msg: "Field required", Type: "missing"},
		ValidationDetail{Loc: []string{"body", "correo"}, Msg: "Input should be a valid string", Type: "string_type"},
	)
	require.Contains(t, err.Error(), "body.nombre: Field required")
	require.Contains(t, err.Error(), "body.correo: Input should be a valid string")
}

func TestErrConnection(t *testing.T) {
	err := NewErrConnection(errDriver)
	require.Equal(t, "Error de conexión a la base de datos", err.Error())
	require.ErrorIs(t, err, errDriver)
}

func TestErrStorage(t *testing.T) {
	err := NewErrStorage(errDriver)
	require.Equal(t, "Error en la base de datos: "+errDriver.Error(), err.Error())
	require.ErrorIs(t, err, errDriver)
}

func TestErrUnexpected(t *testing.T) {
	err := NewErrUnexpected(errors.New("boom"))
	require.Equal(t, "Error inesperado: boom", err.Error())
}

func TestErrAuthentication(t *testing.T) {
	require.Equal(t, "Credenciales inválidas", NewErrAuthentication().Error())
}

func TestCauseKeepsType(t *testing.T) {
	wrapped := errors.Wrap(NewErrStorage(errDriver), "registrando usuario")
	_, ok := errors.Cause(wrapped).(*ErrStorage)
	require.True(t, ok)
}
