// SPDX-License-Identifier: Apache-2.0
package schema

import (
	"encoding/json"
	"testing"
)

func TestDescriptorCheck(t *testing.T) {
	tests := []struct {
		name    string
		desc    Descriptor
		wantErr bool
	}{
		{
			name:    "valid",
			desc:    *greetingDescriptor(),
			wantErr: false,
		},
		{
			name:    "missing name",
			desc:    Descriptor{Fields: []FieldSpec{{Name: "x", Type: KindString}}},
			wantErr: true,
		},
		{
			name: "duplicate field",
			desc: Descriptor{
				Name: "dup",
				Fields: []FieldSpec{
					{Name: "x", Type: KindString},
					{Name: "x", Type: KindNumber},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown type tag",
			desc: Descriptor{
				Name:   "bad",
				Fields: []FieldSpec{{Name: "x", Type: Kind("array")}},
			},
			wantErr: true,
		},
		{
			name: "rule references unknown field",
			desc: Descriptor{
				Name:   "bad-rule",
				Fields: []FieldSpec{{Name: "x", Type: KindString}},
				Rules: []CrossFieldRule{
					{Description: "r", Fields: []string{"y"}, Check: func(Arguments) *Violation { return nil }},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.desc.Check()
			if tt.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestJSONSchema(t *testing.T) {
	raw, err := greetingDescriptor().JSONSchema()
	if err != nil {
		t.Fatalf("JSONSchema error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	if decoded["type"] != "object" {
		t.Errorf("expected type object, got %v", decoded["type"])
	}
	if decoded["additionalProperties"] != false {
		t.Errorf("expected additionalProperties false, got %v", decoded["additionalProperties"])
	}

	props, ok := decoded["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected properties object, got %T", decoded["properties"])
	}
	nameProp, ok := props["name"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected name property")
	}
	if nameProp["maxLength"] != float64(100) {
		t.Errorf("expected maxLength 100, got %v", nameProp["maxLength"])
	}
	formalProp, ok := props["formal"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected formal property")
	}
	if formalProp["default"] != false {
		t.Errorf("expected formal default false, got %v", formalProp["default"])
	}

	required, ok := decoded["required"].([]interface{})
	if !ok || len(required) != 1 || required[0] != "name" {
		t.Errorf("expected required [name], got %v", decoded["required"])
	}
}

func TestJSONSchema_EnumAdvertised(t *testing.T) {
	raw, err := calculateDescriptor().JSONSchema()
	if err != nil {
		t.Fatalf("JSONSchema error: %v", err)
	}
	var decoded struct {
		Properties map[string]struct {
			Enum []string `json:"enum"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if got := decoded.Properties["operation"].Enum; len(got) != 4 || got[3] != "divide" {
		t.Errorf("expected four-member enum ending in divide, got %v", got)
	}
	if len(decoded.Required) != 3 {
		t.Errorf("expected 3 required fields, got %v", decoded.Required)
	}
}
