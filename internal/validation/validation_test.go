package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourorg/registrocl/internal/models"
)

var validBody = map[string]interface{}{
	"nombre":     "Ana",
	"apellido":   "Diaz",
	"cedula":     "123",
	"telefono":   "555",
	"fecha":      "2024-01-01",
	"genero":     "F",
	"correo":     "a@x.com",
	"contrasena": "secret",
}

func bodyWith(t *testing.T, mutate func(m map[string]interface{})) []byte {
	m := make(map[string]interface{}, len(validBody))
	for k, v := range validBody {
		m[k] = v
	}
	mutate(m)
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return b
}

func requireValidationError(t *testing.T, err error) *models.ErrValidation {
	require.Error(t, err)
	verr, ok := err.(*models.ErrValidation)
	require.True(t, ok, "expected *models.ErrValidation, got %T", err)
	require.NotEmpty(t, verr.Details)
	return verr
}

func TestRegistroValid(t *testing.T) {
	var req models.RegistroRequest
	err := Registro.Decode(bodyWith(t, func(map[string]interface{}) {}), &req)
	require.NoError(t, err)
	require.Equal(t, models.RegistroRequest{
		Nombre:     "Ana",
		Apellido:   "Diaz",
		Cedula:     "123",
		Telefono:   "555",
		Fecha:      "2024-01-01",
		Genero:     "F",
		Correo:     "a@x.com",
		Contrasena: "secret",
	}, req)
}

func TestRegistroMissingField(t *testing.T) {
	for field := range validBody {
		t.Run(field, func(t *testing.T) {
			var req models.RegistroRequest
			err := Registro.Decode(bodyWith(t, func(m map[string]interface{}) {
				delete(m, field)
			}), &req)
			verr := requireValidationError(t, err)
			require.Len(t, verr.Details, 1)
			require.Equal(t, []string{"body", field}, verr.Details[0].Loc)
			require.Equal(t, "missing", verr.Details[0].Type)
		})
	}
}

func TestRegistroWrongType(t *testing.T) {
	testCases := []struct {
		name  string
		value interface{}
	}{
		{name: "number", value: 123},
		{name: "boolean", value: true},
		{name: "null", value: nil},
		{name: "object", value: map[string]string{"a": "b"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := Registro.Decode(bodyWith(t, func(m map[string]interface{}) {
				m["cedula"] = testCase.value
			}), &models.RegistroRequest{})
			verr := requireValidationError(t, err)
			require.Len(t, verr.Details, 1)
			require.Equal(t, []string{"body", "cedula"}, verr.Details[0].Loc)
			require.Equal(t, "string_type", verr.Details[0].Type)
		})
	}
}

func TestRegistroEmptyStringsAccepted(t *testing.T) {
	// Solo se exige presencia y tipo texto.
	err := Registro.Decode(bodyWith(t, func(m map[string]interface{}) {
		m["correo"] = ""
		m["fecha"] = "no es una fecha"
	}), &models.RegistroRequest{})
	require.NoError(t, err)
}

func TestRegistroInvalidJSON(t *testing.T) {
	testCases := map[string][]byte{
		"truncated": []byte(`{"nombre": "Ana"`),
		"empty":     []byte(``),
		"garbage":   []byte(`nombre=Ana`),
	}
	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			verr := requireValidationError(t, Registro.Decode(body, &models.RegistroRequest{}))
			require.Equal(t, "json_invalid", verr.Details[0].Type)
		})
	}
}

func TestRegistroNotAnObject(t *testing.T) {
	verr := requireValidationError(t, Registro.Decode([]byte(`["Ana"]`), &models.RegistroRequest{}))
	require.Equal(t, []string{"body"}, verr.Details[0].Loc)
	require.Equal(t, "model_attributes_type", verr.Details[0].Type)
}

func TestLoginSchema(t *testing.T) {
	var req models.LoginRequest
	require.NoError(t, Login.Decode([]byte(`{"correo":"a@x.com","contrasena":"secret"}`), &req))
	require.Equal(t, "a@x.com", req.Correo)

	verr := requireValidationError(t, Login.Decode([]byte(`{"correo":"a@x.com"}`), &req))
	require.Equal(t, []string{"body", "contrasena"}, verr.Details[0].Loc)
}

func TestLoadUnknownSchema(t *testing.T) {
	_, err := Load("inexistente")
	require.Error(t, err)
}

func TestRegistroKeysAreCaseSensitive(t *testing.T) {
	testCases := []struct {
		name  string
		extra map[string]interface{}
	}{
		{name: "uppercase duplicate", extra: map[string]interface{}{"NOMBRE": "Mallory"}},
		{name: "mixed case with other type", extra: map[string]interface{}{"Nombre": 5}},
		{name: "unknown key", extra: map[string]interface{}{"rol": "admin", "Contrasena": "otra"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var req models.RegistroRequest
			err := Registro.Decode(bodyWith(t, func(m map[string]interface{}) {
				for k, v := range testCase.extra {
					m[k] = v
				}
			}), &req)
			require.NoError(t, err)
			require.Equal(t, "Ana", req.Nombre)
			require.Equal(t, "secret", req.Contrasena)
		})
	}
}
