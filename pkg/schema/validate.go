// SPDX-License-Identifier: Apache-2.0
package schema

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Arguments holds field values that passed every constraint of one
// descriptor, with defaults substituted for omitted optional fields.
// It lives for a single invocation and is never shared across calls.
type Arguments map[string]interface{}

// String returns the named field as a string, or "" if absent.
func (a Arguments) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// Number returns the named field as a float64, or 0 if absent.
func (a Arguments) Number(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// Bool returns the named field as a bool, or false if absent.
func (a Arguments) Bool(name string) bool {
	v, _ := a[name].(bool)
	return v
}

// Violation is one failed constraint, addressed by field path.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// Validate checks raw input against the descriptor. It is fail-slow: every
// violated constraint is reported, ordered by field declaration, with
// cross-field rules evaluated last and only over well-typed fields.
// On success the returned Arguments contain every declared field.
// Unknown keys in raw are ignored; the advertisement already declares them
// disallowed via additionalProperties.
func (d *Descriptor) Validate(raw map[string]interface{}) (Arguments, []Violation) {
	args := make(Arguments, len(d.Fields))
	var violations []Violation
	invalid := make(map[string]bool)

	for _, f := range d.Fields {
		value, present := raw[f.Name]
		if !present || value == nil {
			if f.Required {
				violations = append(violations, Violation{Field: f.Name, Message: "field is required"})
				invalid[f.Name] = true
				continue
			}
			args[f.Name] = f.Default
			continue
		}

		checked, vio := checkField(f, value)
		if vio != nil {
			violations = append(violations, *vio)
			invalid[f.Name] = true
			continue
		}
		args[f.Name] = checked
	}

	for _, rule := range d.Rules {
		if ruleBlocked(rule, invalid) {
			continue
		}
		if vio := rule.Check(args); vio != nil {
			violations = append(violations, *vio)
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return args, nil
}

// ruleBlocked reports whether any field the rule depends on failed its own
// per-field validation. A cross-field rule must never run against
// ill-typed or missing values.
func ruleBlocked(rule CrossFieldRule, invalid map[string]bool) bool {
	for _, name := range rule.Fields {
		if invalid[name] {
			return true
		}
	}
	return false
}

func checkField(f FieldSpec, value interface{}) (interface{}, *Violation) {
	value = coerce(f, value)

	switch f.Type {
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, &Violation{Field: f.Name, Message: fmt.Sprintf("must be a string, got %T", value)}
		}
		return checkString(f, s)
	case KindNumber:
		n, ok := asNumber(value)
		if !ok {
			return nil, &Violation{Field: f.Name, Message: fmt.Sprintf("must be a number, got %T", value)}
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, &Violation{Field: f.Name, Message: "must be a finite number"}
		}
		return n, nil
	case KindBoolean:
		b, ok := value.(bool)
		if !ok {
			return nil, &Violation{Field: f.Name, Message: fmt.Sprintf("must be a boolean, got %T", value)}
		}
		return b, nil
	}
	return nil, &Violation{Field: f.Name, Message: fmt.Sprintf("unsupported field type %q", f.Type)}
}

func checkString(f FieldSpec, s string) (interface{}, *Violation) {
	length := utf8.RuneCountInString(s)
	if f.MinLen > 0 && length < f.MinLen {
		return nil, &Violation{Field: f.Name, Message: fmt.Sprintf("must be at least %d characters, got %d", f.MinLen, length)}
	}
	if f.MaxLen > 0 && length > f.MaxLen {
		return nil, &Violation{Field: f.Name, Message: fmt.Sprintf("must be at most %d characters, got %d", f.MaxLen, length)}
	}
	if len(f.Enum) > 0 {
		for _, allowed := range f.Enum {
			if s == allowed {
				return s, nil
			}
		}
		return nil, &Violation{Field: f.Name, Message: fmt.Sprintf("must be one of %s", strings.Join(f.Enum, ", "))}
	}
	return s, nil
}

// coerce applies the field's declared transform. Unrecognized inputs pass
// through untouched so the type check reports them.
func coerce(f FieldSpec, value interface{}) interface{} {
	if f.Coerce == CoerceLenientBool {
		if s, ok := value.(string); ok {
			switch strings.ToLower(strings.TrimSpace(s)) {
			case "true":
				return true
			case "false":
				return false
			}
		}
	}
	return value
}

// asNumber normalizes the numeric representations a JSON transport or an
// in-process caller can deliver.
func asNumber(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
