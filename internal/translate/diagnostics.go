// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package translate

import "fmt"

// Severity classifies a diagnostic. The engine never fails on a diagnostic;
// strict callers may treat Warning as fatal themselves.
type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
)

// Code identifies the class of a diagnostic.
type Code string

const (
	// CodeUnknownToGrammar — the style key has no registry row for this
	// grammar/kind pair; the option was skipped.
	CodeUnknownToGrammar Code = "unknown-to-grammar"

	// CodeUnsupported — the grammar knows the key and deliberately maps it
	// to nothing.
	CodeUnsupported Code = "unsupported"

	// CodeExplained — a structural rewrite was applied instead of a 1:1
	// parameter substitution.
	CodeExplained Code = "structural-rewrite"

	// CodeConflict — two semantic keys wrote the same concrete parameter
	// with different values; the later-processed key won.
	CodeConflict Code = "parameter-conflict"

	// CodeFacetCardinality — the facet variable is numeric and presumed
	// high-cardinality.
	CodeFacetCardinality Code = "facet-cardinality"

	// CodeCropMismatch — registered grammars disagree on whether this axis
	// limit crops visually or drops data before aggregation.
	CodeCropMismatch Code = "crop-semantics-mismatch"
)

// Diagnostic is a non-fatal notice attached to a successful translation.
type Diagnostic struct {
	Severity Severity `yaml:"severity"`
	Code     Code     `yaml:"code"`
	Message  string   `yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s]: %s", d.Severity, d.Code, d.Message)
}

// reporter collects diagnostics in emission order.
type reporter struct {
	list []Diagnostic
}

func (r *reporter) add(sev Severity, code Code, format string, args ...any) {
	r.list = append(r.list, Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *reporter) info(code Code, format string, args ...any) {
	r.add(Info, code, format, args...)
}

func (r *reporter) warn(code Code, format string, args ...any) {
	r.add(Warning, code, format, args...)
}
