package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const documentSchemaURL = "nower://document.schema.json"

// documentSchema describes the JSON store file. Unknown top-level keys are
// allowed so files carrying the legacy "actions" list still load.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["goals"],
  "properties": {
    "goals": {"type": "array", "items": {"$ref": "#/$defs/goal"}}
  },
  "$defs": {
    "date": {"type": ["string", "null"], "format": "date"},
    "task": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "due_date": {"$ref": "#/$defs/date"}
      }
    },
    "goal": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": "string"},
        "due_date": {"$ref": "#/$defs/date"},
        "subgoals": {"type": "array", "items": {"$ref": "#/$defs/goal"}},
        "tasks": {"type": "array", "items": {"$ref": "#/$defs/task"}}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true
		if err := compiler.AddResource(documentSchemaURL, strings.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("adding document schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(documentSchemaURL)
	})
	return compiledSchema, schemaErr
}

// ValidateJSON checks raw JSON store content against the document schema.
func ValidateJSON(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decoding JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
