package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaNode is the subset of JSON schema produced by GenerateSchema that verification understands
type schemaNode struct {
	Ref                  string                 `json:"$ref"`
	Defs                 map[string]*schemaNode `json:"$defs"`
	Type                 string                 `json:"type"`
	Properties           map[string]*schemaNode `json:"properties"`
	Required             []string               `json:"required"`
	AdditionalProperties *bool                  `json:"additionalProperties"`
	Items                *schemaNode            `json:"items"`
	Minimum              *float64               `json:"minimum"`
	Maximum              *float64               `json:"maximum"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, embeddedSchema)
}

func verify(cfg *Config, schemaText string) error {
	var root schemaNode
	if err := json.Unmarshal([]byte(schemaText), &root); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	v := schemaValidator{defs: root.Defs}
	if err := v.check(&root, configMap, "config"); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

type schemaValidator struct {
	defs map[string]*schemaNode
}

func (v schemaValidator) resolve(node *schemaNode) (*schemaNode, error) {
	for node.Ref != "" {
		name := strings.TrimPrefix(node.Ref, "#/$defs/")
		def, ok := v.defs[name]
		if !ok {
			return nil, fmt.Errorf("unknown schema reference %s", node.Ref)
		}
		node = def
	}
	return node, nil
}

// check validates value against node, null values are accepted for any type
func (v schemaValidator) check(node *schemaNode, value any, path string) error {
	node, err := v.resolve(node)
	if err != nil {
		return err
	}
	if value == nil {
		return nil
	}

	switch node.Type {
	case "object":
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s must be an object", path)
		}
		return v.checkObject(node, obj, path)
	case "array":
		arr, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s must be an array", path)
		}
		if node.Items == nil {
			return nil
		}
		for i, el := range arr {
			if err := v.check(node.Items, el, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s must be a string", path)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s must be a boolean", path)
		}
	case "integer", "number":
		num, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%s must be a number", path)
		}
		if node.Type == "integer" && num != float64(int64(num)) {
			return fmt.Errorf("%s must be an integer", path)
		}
		if node.Minimum != nil && num < *node.Minimum {
			return fmt.Errorf("%s must be at least %v", path, *node.Minimum)
		}
		if node.Maximum != nil && num > *node.Maximum {
			return fmt.Errorf("%s must be at most %v", path, *node.Maximum)
		}
	}
	return nil
}

func (v schemaValidator) checkObject(node *schemaNode, obj map[string]any, path string) error {
	for _, name := range node.Required {
		if _, ok := obj[name]; !ok {
			return fmt.Errorf("%s.%s is required", path, name)
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prop, ok := node.Properties[k]
		if !ok {
			if node.AdditionalProperties != nil && !*node.AdditionalProperties {
				return fmt.Errorf("%s.%s is not allowed", path, k)
			}
			continue
		}
		if err := v.check(prop, obj[k], path+"."+k); err != nil {
			return err
		}
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
