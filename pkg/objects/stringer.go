package objects

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pseudomuto/objectkit/pkg/check"
)

// Stringer accumulates formatted fields for a "TypeName{...}" rendering.
// Create one with ToStringHelper, chain Add/AddValue calls, and finish with
// Format. A Stringer holds unguarded mutable state; confine each instance to
// a single call site.
type Stringer struct {
	name   string
	fields []string
}

// ToStringHelper returns a Stringer bound to subject's simple type name.
// Panics with check.ErrNilArgument when subject is nil.
func ToStringHelper(subject any) *Stringer {
	check.NotNil(subject, "toString subject")
	return &Stringer{name: typeName(subject)}
}

// Add appends a field in "name=value" form, rendering a nil value as the
// literal "null". Panics with check.ErrInvalidArgument when name is empty.
// Returns the receiver for chaining.
func (s *Stringer) Add(name string, value any) *Stringer {
	return s.AddValue(check.NotEmpty(name, "field name") + "=" + render(value))
}

// AddValue appends the bare rendering of value ("null" when nil). Prefer
// Add, which gives the value a readable name. Returns the receiver for
// chaining.
func (s *Stringer) AddValue(value any) *Stringer {
	s.fields = append(s.fields, render(value))
	return s
}

// Format renders "TypeName{field1, field2}" with the fields in append
// order. Calling it again without further appends yields the same string.
func (s *Stringer) Format() string {
	var b strings.Builder
	b.WriteString(s.name)
	b.WriteByte('{')
	b.WriteString(strings.Join(s.fields, ", "))
	b.WriteByte('}')
	return b.String()
}

// String implements fmt.Stringer.
func (s *Stringer) String() string {
	return s.Format()
}

// SimpleName reduces a qualified type identifier to its innermost name:
// everything after the last '$' (nested-type separator) when present,
// otherwise everything after the last '.' (package separator), otherwise
// the identifier itself.
//
// Examples:
//   - "com.example.Outer$Inner" -> "Inner"
//   - "com.example.Outer" -> "Outer"
//   - "Outer" -> "Outer"
func SimpleName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '$'); i >= 0 {
		return qualified[i+1:]
	}
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}

// typeName resolves subject's type, dereferencing pointers, and reduces it
// to its simple name. Unnamed types keep their type string.
func typeName(subject any) string {
	t := reflect.TypeOf(subject)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if name == "" {
		name = t.String()
	}
	return SimpleName(name)
}

func render(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprint(value)
}
