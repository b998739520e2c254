// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package chart

import (
	"fmt"

	"github.com/plotlabs/plotc/internal/dataset"
)

// Kind identifies the chart type. It is fixed at construction: every other
// field's validity depends on it, so changing kind means building a new Spec.
type Kind string

const (
	Bar       Kind = "bar"
	Pie       Kind = "pie"
	Histogram Kind = "histogram"
	Boxplot   Kind = "boxplot"
	Line      Kind = "line"
	Scatter   Kind = "scatter"
)

// Kinds returns all chart kinds in canonical order.
func Kinds() []Kind {
	return []Kind{Bar, Pie, Histogram, Boxplot, Line, Scatter}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Bar, Pie, Histogram, Boxplot, Line, Scatter:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Role names a data binding slot, independent of any grammar's vocabulary.
type Role string

const (
	RoleX       Role = "x"
	RoleY       Role = "y"
	RoleGroup   Role = "group"
	RoleFill    Role = "fill"
	RoleOutline Role = "outline"
	RoleSize    Role = "size"
	RoleShape   Role = "shape"
	RoleFacet   Role = "facet"
)

// roleOrder is the canonical processing order for bindings. Translation
// iterates roles in this order so output is deterministic.
var roleOrder = []Role{RoleX, RoleY, RoleGroup, RoleFill, RoleOutline, RoleSize, RoleShape}

// RoleOrder returns the canonical binding processing order (facet excluded;
// the facet variable is always processed last).
func RoleOrder() []Role {
	out := make([]Role, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// ParseRole converts a string to a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleX, RoleY, RoleGroup, RoleFill, RoleOutline, RoleSize, RoleShape, RoleFacet:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedRole, s)
}

// kindRoles lists the roles each kind recognizes. A role outside this set
// fails Bind with ErrUnsupportedRole.
var kindRoles = map[Kind][]Role{
	Bar:       {RoleX, RoleGroup, RoleFill, RoleOutline, RoleFacet},
	Pie:       {RoleX, RoleFill},
	Histogram: {RoleX, RoleFill, RoleFacet},
	Boxplot:   {RoleY, RoleGroup, RoleFill, RoleOutline, RoleFacet},
	Line:      {RoleX, RoleY, RoleGroup, RoleOutline, RoleFacet},
	Scatter:   {RoleX, RoleY, RoleGroup, RoleSize, RoleShape, RoleFacet},
}

func kindAcceptsRole(k Kind, r Role) bool {
	for _, allowed := range kindRoles[k] {
		if allowed == r {
			return true
		}
	}
	return false
}

// roleColumnTypes returns the column types admissible for a role on a kind.
// Numeric-axis roles take Numeric or Temporal; category roles take
// Categorical or Logical; Size is strictly Numeric.
func roleColumnTypes(k Kind, r Role) []dataset.ColumnType {
	switch r {
	case RoleX:
		switch k {
		case Histogram, Line, Scatter:
			return []dataset.ColumnType{dataset.Numeric, dataset.Temporal}
		default: // Bar, Pie: a category axis
			return []dataset.ColumnType{dataset.Categorical, dataset.Logical}
		}
	case RoleY:
		if k == Boxplot {
			return []dataset.ColumnType{dataset.Numeric}
		}
		return []dataset.ColumnType{dataset.Numeric, dataset.Temporal}
	case RoleSize:
		return []dataset.ColumnType{dataset.Numeric}
	default: // Group, Fill, Outline, Shape, Facet
		return []dataset.ColumnType{dataset.Categorical, dataset.Logical}
	}
}

func columnTypeAllowed(types []dataset.ColumnType, t dataset.ColumnType) bool {
	for _, allowed := range types {
		if allowed == t {
			return true
		}
	}
	return false
}
