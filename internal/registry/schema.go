package registry

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema pins the shape of the registry payload before we trust it.
const recordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["plate"],
  "properties": {
    "plate":         {"type": "string", "minLength": 5},
    "make":          {"type": ["string", "null"]},
    "model":         {"type": ["string", "null"]},
    "year":          {"type": ["integer", "null"], "minimum": 1900},
    "color":         {"type": ["string", "null"]},
    "vin":           {"type": ["string", "null"]},
    "engine_number": {"type": ["string", "null"]},
    "owner_rut":     {"type": ["string", "null"]},
    "owner_name":    {"type": ["string", "null"]}
  }
}`

var compiledRecordSchema = jsonschema.MustCompileString("registry/record.json", recordSchema)

func validateRecord(data json.RawMessage) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return compiledRecordSchema.Validate(v)
}
