// Copyright (c) 2026 Araçtakip Team
// Araçtakip - vehicle maintenance and expense tracking client
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"strconv"
	"strings"
)

// Kind tells the hosting screen how to render and coerce a field.
type Kind int

const (
	Text Kind = iota
	Secret
	IntField
	FloatField
	Date
	Select
	Bool
)

// Field is one input of a schema. Name is the wire name ("plaka"); Label is
// an i18n message ID.
type Field struct {
	Name      string
	Label     string
	Kind      Kind
	Default   string
	Options   []string
	Rules     []Rule
	Normalize func(string) string
}

// Schema is the declarative description of one entity form.
type Schema struct {
	Name   string
	Fields []Field
}

// Field returns the field named name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Defaults returns a fresh value map with every field at its default.
func (s Schema) Defaults() map[string]string {
	values := make(map[string]string, len(s.Fields))
	for _, f := range s.Fields {
		values[f.Name] = f.Default
	}
	return values
}

// Validate evaluates every field's rules against values and returns the
// first violated rule's localized message per field. An empty map means the
// form may be submitted. Values are trimmed and normalized in place so the
// subsequent payload build sees what was validated.
func (s Schema) Validate(values map[string]string) map[string]string {
	errs := map[string]string{}
	for _, f := range s.Fields {
		v := strings.TrimSpace(values[f.Name])
		if f.Normalize != nil {
			v = f.Normalize(v)
		}
		values[f.Name] = v
		for _, r := range f.Rules {
			if !r.check(v) {
				errs[f.Name] = r.fail()
				break
			}
		}
	}
	return errs
}

// Coercion helpers. They are used after Validate has passed, so a parse
// failure can only mean an optional field was left empty.

// Int returns the integer value of field name, or 0.
func Int(values map[string]string, name string) int {
	n, _ := strconv.Atoi(values[name])
	return n
}

// Float returns the numeric value of field name, or 0.
func Float(values map[string]string, name string) float64 {
	f, _ := strconv.ParseFloat(values[name], 64)
	return f
}

// BoolValue returns whether field name holds "true".
func BoolValue(values map[string]string, name string) bool {
	return values[name] == "true"
}

// OptionalFloat returns a pointer to the numeric value, or nil when empty.
func OptionalFloat(values map[string]string, name string) *float64 {
	if values[name] == "" {
		return nil
	}
	f := Float(values, name)
	return &f
}

// OptionalInt returns a pointer to the integer value, or nil when empty.
func OptionalInt(values map[string]string, name string) *int {
	if values[name] == "" {
		return nil
	}
	n := Int(values, name)
	return &n
}
