// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package translate

import (
	"fmt"

	"github.com/plotlabs/plotc/internal/chart"
)

// Translate resolves every field of spec through grammar's capability table
// and returns the concrete parameter document plus collected diagnostics.
//
// The walk order is fixed: chart-type selector, bindings in canonical role
// order, style keys in canonical key order, facet variable last. Repeated
// translation of an identical spec therefore yields an identical Result.
func Translate(spec *chart.Spec, grammar string) (*Result, error) {
	table, err := Get(grammar)
	if err != nil {
		return nil, err
	}

	caps, ok := table.Kinds[spec.Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrKindNotSupportedByGrammar, spec.Kind(), grammar)
	}

	if err := checkRequiredRoles(spec, caps); err != nil {
		return nil, err
	}

	rep := &reporter{}
	doc := newParamDoc()
	var layers []Fragment

	// Soft construction warnings travel with every translation of the spec.
	for _, w := range spec.Warnings() {
		rep.warn(CodeFacetCardinality, "%s", w)
	}

	// Chart-type selector.
	for _, p := range caps.Call {
		doc.set("chartKind", p.Name, p.Value, rep)
	}
	if caps.CallNote != "" {
		layers = append(layers, caps.CallFragments...)
		rep.info(CodeExplained, "%s: %s", spec.Kind(), caps.CallNote)
	}

	// Data bindings.
	for _, role := range chart.RoleOrder() {
		source, bound := spec.Binding(role)
		if !bound {
			continue
		}
		name, ok := caps.Roles[role]
		if !ok {
			return nil, fmt.Errorf("%w: %s for %s in %s",
				ErrRoleNotSupportedByGrammar, role, spec.Kind(), grammar)
		}
		value := any(source.Column)
		if source.IsLiteral() {
			value = source.Literal
		}
		doc.set(string(role), name, value, rep)
	}

	// Style options.
	for _, key := range chart.StyleKeyOrder() {
		value, set := spec.Style(key)
		if !set {
			continue
		}
		entry, ok := caps.Style[key]
		if !ok {
			rep.warn(CodeUnknownToGrammar, "%s has no equivalent in %s for %s charts; skipped",
				key, grammar, spec.Kind())
			continue
		}
		if entry.Write == nil {
			rep.info(CodeUnsupported, "%s is not expressible in %s: %s", key, grammar, entry.Note)
			continue
		}

		params, fragments := entry.Write(value)
		for _, p := range params {
			doc.set(string(key), p.Name, p.Value, rep)
		}
		if len(fragments) > 0 {
			layers = append(layers, fragments...)
		}
		if entry.Rewrite {
			rep.info(CodeExplained, "%s in %s: %s", key, grammar, entry.Note)
		}
		if entry.Crop != CropNone {
			reportCropMismatch(rep, table, spec.Kind(), key, entry.Crop)
		}
	}

	// Facet variable.
	if column, set := spec.Facet(); set {
		if caps.Facet == nil {
			return nil, fmt.Errorf("%w: %s in %s", ErrFacetNotSupportedByKind, spec.Kind(), grammar)
		}
		switch {
		case caps.Facet.Param != "":
			doc.set("facet", caps.Facet.Param, column, rep)
		case caps.Facet.Rewrite != nil:
			layers = append(layers, caps.Facet.Rewrite(column))
			rep.info(CodeExplained, "facet in %s: %s", grammar, caps.Facet.Note)
		}
	}

	return &Result{
		Grammar:     grammar,
		Chart:       spec.Kind(),
		Params:      doc.params,
		Layers:      layers,
		Diagnostics: rep.list,
	}, nil
}

// checkRequiredRoles enforces grammar-specific conditional role requirements.
func checkRequiredRoles(spec *chart.Spec, caps KindCaps) error {
	for _, rule := range caps.Requires {
		if _, bound := spec.Binding(rule.If); !bound {
			continue
		}
		if _, bound := spec.Binding(rule.Then); !bound {
			return fmt.Errorf("%w: %s requires %s when %s is bound",
				ErrMissingRequiredBinding, spec.Kind(), rule.Then, rule.If)
		}
	}
	return nil
}

// reportCropMismatch warns when another registered grammar gives the same
// axis-limit key different cropping semantics. Grammars are visited in
// sorted order so the diagnostic sequence is deterministic.
func reportCropMismatch(rep *reporter, own *Table, kind chart.Kind, key chart.StyleKey, mode CropMode) {
	for _, name := range Available() {
		if name == own.Grammar {
			continue
		}
		other := tables[name]
		otherCaps, ok := other.Kinds[kind]
		if !ok {
			continue
		}
		entry, ok := otherCaps.Style[key]
		if !ok || entry.Crop == CropNone || entry.Crop == mode {
			continue
		}
		rep.warn(CodeCropMismatch,
			"%s crops %sly in %s but %sly in %s; results differ when data falls outside the range",
			key, mode, own.Grammar, entry.Crop, name)
	}
}
