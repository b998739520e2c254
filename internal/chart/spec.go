// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package chart defines the grammar-neutral chart intermediate representation:
// a chart kind, data bindings from roles to dataset columns, and style options
// keyed by semantic intent. A Spec is validated at construction time and is a
// read-only input to every translation.
package chart

import (
	"errors"
	"fmt"

	"github.com/plotlabs/plotc/internal/dataset"
)

var (
	// ErrUnknownKind indicates a chart kind outside the closed set.
	ErrUnknownKind = errors.New("unknown chart kind")

	// ErrUnsupportedRole indicates a role the chart kind does not recognize.
	ErrUnsupportedRole = errors.New("unsupported role for chart kind")

	// ErrTypeMismatch indicates a column type incompatible with a role.
	ErrTypeMismatch = errors.New("column type incompatible with role")

	// ErrDuplicateRole indicates a role bound twice on the same spec.
	ErrDuplicateRole = errors.New("role already bound")

	// ErrUnknownStyleKey indicates a style key outside the closed set.
	ErrUnknownStyleKey = errors.New("unknown style key")

	// ErrInvalidStyleValue indicates a value whose shape doesn't match its key.
	ErrInvalidStyleValue = errors.New("invalid style value")

	// ErrLiteralNotAllowed indicates a literal source bound to a column-only role.
	ErrLiteralNotAllowed = errors.New("literal source not allowed for role")
)

// Source is either a column reference or a literal value.
type Source struct {
	Column  string // column name; empty for literal sources
	Literal any    // literal value; nil for column sources
}

// ColumnRef returns a Source referencing a dataset column.
func ColumnRef(name string) Source {
	return Source{Column: name}
}

// LiteralValue returns a Source carrying a constant value.
func LiteralValue(v any) Source {
	return Source{Literal: v}
}

// IsLiteral reports whether the source is a constant rather than a column.
func (s Source) IsLiteral() bool {
	return s.Column == ""
}

// literalRoles are the roles that accept a literal source. Axis and grouping
// roles must reference a column.
var literalRoles = map[Role]bool{
	RoleFill:    true,
	RoleOutline: true,
	RoleSize:    true,
	RoleShape:   true,
}

// Binding attaches a source to a role.
type Binding struct {
	Role   Role
	Source Source
}

// Spec is the chart intermediate representation. Build it with New, Bind,
// SetStyle and SetFacet; all validation happens in those calls, so a Spec
// that exists is well-formed for its kind.
type Spec struct {
	kind     Kind
	schema   *dataset.Schema
	bindings map[Role]Source
	style    map[StyleKey]any
	facet    string
	warnings []string
}

// New returns an empty spec scoped to kind and schema.
func New(kind Kind, schema *dataset.Schema) (*Spec, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, errors.New("chart spec requires a schema")
	}
	return &Spec{
		kind:     kind,
		schema:   schema,
		bindings: make(map[Role]Source),
		style:    make(map[StyleKey]any),
	}, nil
}

// Kind returns the chart kind.
func (s *Spec) Kind() Kind {
	return s.kind
}

// Schema returns the dataset schema the spec was built against.
func (s *Spec) Schema() *dataset.Schema {
	return s.schema
}

// Bind attaches source to role. Literal sources are only admissible for the
// visual-property roles (fill, outline, size, shape); column sources must
// resolve in the schema and carry a type compatible with the role.
// Binding the Facet role delegates to SetFacet.
func (s *Spec) Bind(role Role, source Source) error {
	if role == RoleFacet {
		if source.IsLiteral() {
			return fmt.Errorf("%w: %s", ErrLiteralNotAllowed, role)
		}
		return s.SetFacet(source.Column)
	}

	if !kindAcceptsRole(s.kind, role) {
		return fmt.Errorf("%w: %s does not accept %s", ErrUnsupportedRole, s.kind, role)
	}
	if _, bound := s.bindings[role]; bound {
		return fmt.Errorf("%w: %s", ErrDuplicateRole, role)
	}

	if source.IsLiteral() {
		if !literalRoles[role] {
			return fmt.Errorf("%w: %s", ErrLiteralNotAllowed, role)
		}
	} else {
		col, err := s.schema.Resolve(source.Column)
		if err != nil {
			return err
		}
		want := roleColumnTypes(s.kind, role)
		if !columnTypeAllowed(want, col.Type) {
			return fmt.Errorf("%w: %s on %s requires %v, column %q is %s",
				ErrTypeMismatch, role, s.kind, want, col.Name, col.Type)
		}
	}

	s.bindings[role] = source
	return nil
}

// Binding returns the source bound to role, if any.
func (s *Spec) Binding(role Role) (Source, bool) {
	src, ok := s.bindings[role]
	return src, ok
}

// SetStyle records a style option. binWidth and binCount are mutually
// exclusive: setting one clears the other.
func (s *Spec) SetStyle(key StyleKey, value any) error {
	if _, err := ParseStyleKey(string(key)); err != nil {
		return err
	}
	normalized, err := normalizeStyleValue(key, value)
	if err != nil {
		return err
	}

	switch key {
	case KeyBinWidth:
		delete(s.style, KeyBinCount)
	case KeyBinCount:
		delete(s.style, KeyBinWidth)
	}

	s.style[key] = normalized
	return nil
}

// Style returns the value set for key, if any.
func (s *Spec) Style(key StyleKey) (any, bool) {
	v, ok := s.style[key]
	return v, ok
}

// SetFacet records the facet variable. Faceting by a Numeric column is
// allowed but recorded as a warning: with only a schema to inspect, a numeric
// facet is presumed high-cardinality.
func (s *Spec) SetFacet(column string) error {
	col, err := s.schema.Resolve(column)
	if err != nil {
		return err
	}
	if col.Type == dataset.Numeric {
		s.warnings = append(s.warnings,
			fmt.Sprintf("facet variable %q is numeric; expect one panel per distinct value", col.Name))
	}
	s.facet = col.Name
	return nil
}

// Facet returns the facet variable, if set.
func (s *Spec) Facet() (string, bool) {
	return s.facet, s.facet != ""
}

// Warnings returns soft-validation messages recorded during construction.
// Translation copies them into the result's diagnostics.
func (s *Spec) Warnings() []string {
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}
