// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package translate

import (
	"fmt"

	"github.com/plotlabs/plotc/internal/chart"
)

// CropMode records what an axis-limit parameter does to data outside the
// range. The distinction matters: visual cropping aggregates over the full
// data and only trims the view, destructive cropping drops rows before any
// aggregation happens.
type CropMode string

const (
	CropNone        CropMode = ""
	CropVisual      CropMode = "visual"
	CropDestructive CropMode = "destructive"
)

// ParamWriter encodes one semantic value into a grammar's concrete
// parameters, possibly with auxiliary fragments for structural rewrites.
// Writers are pure: same value in, same output out.
type ParamWriter func(value any) (Params, []Fragment)

// Entry is one row of the capability table: how a single semantic style key
// lands in one grammar for one chart kind.
type Entry struct {
	// Write produces the concrete parameters. A nil Write means the grammar
	// knows the key but maps it to nothing; translation logs an Unsupported
	// diagnostic and continues.
	Write ParamWriter

	// Rewrite marks entries whose output changes the shape of the document
	// rather than substituting a parameter. Translation emits an Explained
	// diagnostic carrying Note.
	Rewrite bool

	// Note explains the rewrite, or why the key maps to nothing.
	Note string

	// Crop is set on axis-limit entries only.
	Crop CropMode
}

// RoleRule declares that binding If requires binding Then as well.
// The parametric boxplot's response~group form is the motivating case.
type RoleRule struct {
	If   chart.Role
	Then chart.Role
}

// FacetCap describes how a grammar facets one chart kind. A nil FacetCap on
// KindCaps means the grammar cannot facet that kind at all.
type FacetCap struct {
	// Param is the concrete parameter receiving the facet column, when the
	// grammar has a direct construct.
	Param string

	// Rewrite produces a fragment when faceting needs restructuring instead
	// of a parameter. Note explains the rewrite.
	Rewrite func(column string) Fragment
	Note    string
}

// KindCaps is everything a grammar knows about one chart kind.
type KindCaps struct {
	// Call is the grammar's mandatory chart-type selector.
	Call Params

	// CallFragments and CallNote describe a kind-level structural rewrite,
	// for kinds the grammar can only express as a composition.
	CallFragments []Fragment
	CallNote      string

	// Roles maps binding roles to concrete parameter names. A bound role
	// absent from this map fails translation.
	Roles map[chart.Role]string

	// Requires lists conditional role requirements checked before emission.
	Requires []RoleRule

	// Style maps semantic style keys to capability entries.
	Style map[chart.StyleKey]Entry

	// Facet is nil when the kind cannot be faceted in this grammar.
	Facet *FacetCap
}

// Table is one grammar's complete capability table. Tables are built once in
// a grammar package's init, registered, and never mutated afterwards.
type Table struct {
	Grammar string
	Kinds   map[chart.Kind]KindCaps
}

// labelKeys are the mappings every grammar/kind pair must define: every
// chart needs a title and axis labels, whatever the grammar.
var labelKeys = []chart.StyleKey{chart.KeyTitle, chart.KeyXLabel, chart.KeyYLabel}

// validate checks the every-chart-needs-these-three rule for each kind.
func (t *Table) validate() error {
	if t.Grammar == "" {
		return fmt.Errorf("%w: table has no grammar name", ErrIncompleteCapabilityTable)
	}
	for kind, caps := range t.Kinds {
		for _, key := range labelKeys {
			entry, ok := caps.Style[key]
			if !ok || entry.Write == nil {
				return fmt.Errorf("%w: grammar %q, kind %q missing %s",
					ErrIncompleteCapabilityTable, t.Grammar, kind, key)
			}
		}
		if len(caps.Call) == 0 {
			return fmt.Errorf("%w: grammar %q, kind %q has no chart-type selector",
				ErrIncompleteCapabilityTable, t.Grammar, kind)
		}
	}
	return nil
}

// Scalar is a ParamWriter writing the value under a single concrete name.
func Scalar(name string) ParamWriter {
	return func(value any) (Params, []Fragment) {
		return Params{{Name: name, Value: value}}, nil
	}
}

// Mapped is a ParamWriter that encodes the value through a lookup before
// writing it, for grammars that spell an option in their own vocabulary
// (e.g. line styles as numeric codes).
func Mapped[T any](name string, encoding map[string]T) ParamWriter {
	return func(value any) (Params, []Fragment) {
		s, ok := value.(string)
		if !ok {
			return Params{{Name: name, Value: value}}, nil
		}
		encoded, ok := encoding[s]
		if !ok {
			return Params{{Name: name, Value: value}}, nil
		}
		return Params{{Name: name, Value: encoded}}, nil
	}
}

// Pair is a ParamWriter for axis limits, writing a chart.Limit as an ordered
// two-element sequence.
func Pair(name string) ParamWriter {
	return func(value any) (Params, []Fragment) {
		lim, ok := value.(chart.Limit)
		if !ok {
			return Params{{Name: name, Value: value}}, nil
		}
		return Params{{Name: name, Value: []float64{lim.Lo, lim.Hi}}}, nil
	}
}
