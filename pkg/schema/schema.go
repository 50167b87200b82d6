// SPDX-License-Identifier: Apache-2.0
// Package schema declares operation argument schemas and validates raw
// input against them. A Descriptor is the static, discoverable shape of one
// operation; validation is a pure function of (raw input, descriptor).
package schema

import (
	"encoding/json"
	"fmt"
)

// Kind is the type tag of a field.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Coercion names a declared input transform attached to a field.
// Coercions run before type checking, so transports that deliver weakly
// typed values can still satisfy the schema.
type Coercion string

const (
	// CoerceNone applies no transform.
	CoerceNone Coercion = ""

	// CoerceLenientBool accepts the literal strings "true" and "false"
	// (case-insensitive) in addition to native booleans.
	CoerceLenientBool Coercion = "lenient-bool"
)

// FieldSpec describes one accepted argument field.
type FieldSpec struct {
	Name        string
	Type        Kind
	Description string
	Required    bool
	Default     interface{} // nil when the field has no default
	Enum        []string
	MinLen      int // minimum string length in characters; 0 means unset
	MaxLen      int // maximum string length in characters; 0 means unset
	Coerce      Coercion
	Examples    []interface{}
}

// CrossFieldRule is a validation constraint over more than one field.
// Check is only invoked when every listed field passed its own per-field
// validation, so rules never observe ill-typed values.
type CrossFieldRule struct {
	Description string
	Fields      []string
	Check       func(args Arguments) *Violation
}

// Descriptor is the immutable schema and advertisement for one operation.
// Field order is the declaration order and is preserved in discovery output.
type Descriptor struct {
	Name        string
	Description string
	Fields      []FieldSpec
	Rules       []CrossFieldRule
}

// Check verifies the descriptor itself is well formed: nonempty unique
// name material, unique field names, known type tags.
func (d *Descriptor) Check() error {
	if d.Name == "" {
		return fmt.Errorf("descriptor name is required")
	}
	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return fmt.Errorf("descriptor %q: field name is required", d.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("descriptor %q: duplicate field %q", d.Name, f.Name)
		}
		seen[f.Name] = true
		switch f.Type {
		case KindString, KindNumber, KindBoolean:
		default:
			return fmt.Errorf("descriptor %q: field %q has unknown type %q", d.Name, f.Name, f.Type)
		}
	}
	for _, r := range d.Rules {
		for _, name := range r.Fields {
			if !seen[name] {
				return fmt.Errorf("descriptor %q: rule %q references unknown field %q", d.Name, r.Description, name)
			}
		}
	}
	return nil
}

// JSONSchema renders the discovery advertisement for this descriptor as a
// JSON Schema object. Only declared fields are accepted; the required list
// holds fields that carry no default.
func (d *Descriptor) JSONSchema() (json.RawMessage, error) {
	props := make(map[string]interface{}, len(d.Fields))
	required := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		prop := map[string]interface{}{
			"type": string(f.Type),
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		if f.MinLen > 0 {
			prop["minLength"] = f.MinLen
		}
		if f.MaxLen > 0 {
			prop["maxLength"] = f.MaxLen
		}
		if f.Default != nil {
			prop["default"] = f.Default
		}
		if len(f.Examples) > 0 {
			prop["examples"] = f.Examples
		}
		props[f.Name] = prop
		if f.Required && f.Default == nil {
			required = append(required, f.Name)
		}
	}

	out := map[string]interface{}{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("descriptor %q: render schema: %w", d.Name, err)
	}
	return data, nil
}
