package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON Schema describing config.toml.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{RequiredFromJSONSchemaTags: true}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/favicache/config.schema.json"
	schema.Title = "favicache Configuration"
	schema.Description = "Configuration schema for favicache, a two-tier favicon cache"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
