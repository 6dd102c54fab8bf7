package lint

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchemaJSON describes the shape of a catalog file. Emptiness and
// cross-references are checked separately so they can carry finer severities.
const catalogSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["categories", "rules"],
  "additionalProperties": false,
  "properties": {
    "categories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "additionalProperties": false,
        "properties": {
          "id": { "type": "string" },
          "name": { "type": "string" }
        }
      }
    },
    "rules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "category", "title", "desc", "do", "dont"],
        "additionalProperties": false,
        "properties": {
          "id": { "type": "string" },
          "category": { "type": "string" },
          "title": { "type": "string" },
          "desc": { "type": "string" },
          "do": { "type": "string" },
          "dont": { "type": "string" },
          "tags": { "type": "array", "items": { "type": "string" } }
        }
      }
    }
  }
}`

var catalogSchemaLoader = gojsonschema.NewStringLoader(catalogSchemaJSON)

// schemaError is one structural violation. Field is a dot-separated path
// such as "rules.3.title", or "(root)".
type schemaError struct {
	Field   string
	Message string
}

// validateShape checks a decoded document against the catalog schema.
func validateShape(doc any) ([]schemaError, error) {
	result, err := gojsonschema.Validate(catalogSchemaLoader, gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]schemaError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		// "required" and "additional property" errors name the key in their
		// details rather than in the field path.
		if prop, ok := desc.Details()["property"].(string); ok && prop != "" {
			field = strings.TrimPrefix(field+"."+prop, "(root).")
		}
		errs = append(errs, schemaError{Field: field, Message: desc.String()})
	}
	return errs, nil
}
