// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package translate compiles a grammar-neutral chart spec into the concrete
// parameter document of a target visualization grammar. Each grammar
// contributes a declarative capability table; the engine itself is
// grammar-agnostic and walks the spec in a fixed canonical order.
package translate

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownGrammar indicates no capability table is registered under
	// the requested name.
	ErrUnknownGrammar = errors.New("unknown grammar")

	// ErrIncompleteCapabilityTable indicates a table missing one of the
	// mandatory title/xLabel/yLabel mappings for some chart kind.
	ErrIncompleteCapabilityTable = errors.New("incomplete capability table")

	// ErrKindNotSupportedByGrammar indicates the grammar has no row for the
	// spec's chart kind.
	ErrKindNotSupportedByGrammar = errors.New("chart kind not supported by grammar")

	// ErrMissingRequiredBinding indicates a grammar-specific required role
	// is absent.
	ErrMissingRequiredBinding = errors.New("missing required binding")

	// ErrRoleNotSupportedByGrammar indicates a bound role the grammar has
	// no parameter for.
	ErrRoleNotSupportedByGrammar = errors.New("role not supported by grammar")

	// ErrFacetNotSupportedByKind indicates the grammar cannot facet this
	// chart kind.
	ErrFacetNotSupportedByKind = errors.New("faceting not supported for chart kind")
)

// tables is the process-wide grammar registry. Grammar packages populate it
// from init; after startup it is read-only, so Translate is safe to call
// concurrently without coordination.
var tables = make(map[string]*Table)

// Register adds a grammar's capability table to the registry.
// It panics on an invalid table: registration runs from init and a broken
// table is a programming error, not an input error.
func Register(t *Table) {
	if err := t.validate(); err != nil {
		panic(err)
	}
	tables[t.Grammar] = t
}

// Get retrieves a capability table by grammar name.
func Get(name string) (*Table, error) {
	t, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGrammar, name)
	}
	return t, nil
}

// Available returns all registered grammar names, sorted.
func Available() []string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
