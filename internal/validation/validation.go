// Package validation valida cuerpos JSON contra esquemas fijos antes de que
// corra la lógica del endpoint.
package validation

import (
	"embed"
	"encoding/json"
	"log"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
	"github.com/yourorg/registrocl/internal/models"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// rootField es como gojsonschema nombra la raíz del documento.
const rootField = "(root)"

// Schema es un esquema JSON compilado una vez al arrancar.
type Schema struct {
	name   string
	schema *gojsonschema.Schema

	// properties son las claves exactas de "properties"; el resto se descarta.
	properties map[string]struct{}
}

var (
	// Registro valida el cuerpo de POST /registrar.
	Registro = mustLoad("registro")
	// Login valida el cuerpo de POST /login.
	Login = mustLoad("login")
)

func mustLoad(name string) *Schema {
	s, err := Load(name)
	if err != nil {
		panic(err)
	}
	return s
}

// Load compila el esquema embebido schemas/<name>.json.
func Load(name string) (*Schema, error) {
	src, err := schemaFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, errors.Wrapf(err, "esquema %q no encontrado", name)
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(src))
	if err != nil {
		return nil, errors.Wrapf(err, "esquema %q inválido", name)
	}
	var doc struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(src, &doc); err != nil {
		return nil, errors.Wrapf(err, "esquema %q inválido", name)
	}
	properties := make(map[string]struct{}, len(doc.Properties))
	for key := range doc.Properties {
		properties[key] = struct{}{}
	}
	return &Schema{name: name, schema: compiled, properties: properties}, nil
}

// Decode valida body contra el esquema y, si es válido, lo decodifica en dst.
// Solo llegan a dst las claves declaradas en el esquema, comparadas con
// mayúsculas exactas; las demás se ignoran sin error.
// Un cuerpo inválido retorna *models.ErrValidation; cualquier otro error es interno.
func (s *Schema) Decode(body []byte, dst interface{}) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		// Con un esquema válido, lo más probable es que el cuerpo no sea JSON.
		return models.NewErrValidation(models.ValidationDetail{
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		})
	}
	if !result.Valid() {
		details := make([]models.ValidationDetail, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			details = append(details, toDetail(verr))
		}
		return models.NewErrValidation(details...)
	}
	if dst == nil {
		return nil
	}
	known, err := s.knownFields(body)
	if err != nil {
		log.Println(errors.Wrapf(err, "error filtrando cuerpo validado por %q", s.name))
		return errors.Wrap(err, "error decodificando el cuerpo del request")
	}
	if err := json.Unmarshal(known, dst); err != nil {
		// Ya pasó la validación: si falla aquí el problema es nuestro.
		log.Println(errors.Wrapf(err, "error decodificando cuerpo validado por %q", s.name))
		return errors.Wrap(err, "error decodificando el cuerpo del request")
	}
	return nil
}

// knownFields deja solo las claves del esquema. encoding/json compara claves
// sin distinguir mayúsculas, así que "NOMBRE" no debe llegar al struct.
func (s *Schema) knownFields(body []byte) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	for key := range fields {
		if _, ok := s.properties[key]; !ok {
			delete(fields, key)
		}
	}
	return json.Marshal(fields)
}

func toDetail(verr gojsonschema.ResultError) models.ValidationDetail {
	field := verr.Field()
	if prop, ok := verr.Details()["property"].(string); ok && verr.Type() == "required" {
		field = prop
	}
	loc := []string{"body"}
	if field != "" && field != rootField {
		loc = append(loc, strings.Split(field, ".")...)
	}

	switch verr.Type() {
	case "required":
		return models.ValidationDetail{Loc: loc, Msg: "Field required", Type: "missing"}
	case "invalid_type":
		if len(loc) == 1 {
			return models.ValidationDetail{
				Loc:  loc,
				Msg:  "Input should be a valid dictionary or object to extract fields from",
				Type: "model_attributes_type",
			}
		}
		return models.ValidationDetail{Loc: loc, Msg: "Input should be a valid string", Type: "string_type"}
	default:
		return models.ValidationDetail{Loc: loc, Msg: verr.Description(), Type: verr.Type()}
	}
}
