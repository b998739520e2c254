// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package chartfile reads the charts.yaml document: a dataset schema plus a
// list of named chart definitions. Parsing drives the chart builder
// operations, so every construction error surfaces with the chart name
// attached.
package chartfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plotlabs/plotc/internal/chart"
	"github.com/plotlabs/plotc/internal/dataset"
)

// CurrentVersion is the current chart document format version.
const CurrentVersion = 1

var (
	// ErrUnsupportedVersion indicates a document version this build can't read.
	ErrUnsupportedVersion = errors.New("unsupported chart document version")

	// ErrDuplicateChart indicates two charts with the same name.
	ErrDuplicateChart = errors.New("duplicate chart name")

	// ErrUnknownChart indicates a chart name not present in the document.
	ErrUnknownChart = errors.New("unknown chart")
)

// Document is the parsed charts.yaml file.
type Document struct {
	Version int        `yaml:"version"`
	Dataset DatasetDoc `yaml:"dataset"`
	Charts  []ChartDoc `yaml:"charts"`
}

// DatasetDoc declares the dataset schema.
type DatasetDoc struct {
	Columns []ColumnDoc `yaml:"columns"`
}

// ColumnDoc declares one column.
type ColumnDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ChartDoc declares one chart.
type ChartDoc struct {
	Name     string                `yaml:"name"`
	Kind     string                `yaml:"kind"`
	Bindings map[string]BindingDoc `yaml:"bindings,omitempty"`
	Style    map[string]any        `yaml:"style,omitempty"`
	Facet    string                `yaml:"facet,omitempty"`
}

// BindingDoc is a binding source: a bare string is a column reference, a
// mapping with a "literal" key is a constant.
type BindingDoc struct {
	Column  string
	Literal any
}

// UnmarshalYAML accepts either form.
func (b *BindingDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&b.Column)
	case yaml.MappingNode:
		var wrapper struct {
			Literal any `yaml:"literal"`
		}
		if err := node.Decode(&wrapper); err != nil {
			return err
		}
		if wrapper.Literal == nil {
			return fmt.Errorf("binding mapping needs a literal key (line %d)", node.Line)
		}
		b.Literal = wrapper.Literal
		return nil
	}
	return fmt.Errorf("binding must be a column name or a literal mapping (line %d)", node.Line)
}

// Load reads and parses a chart document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a chart document from raw YAML.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid chart document: %w", err)
	}
	if doc.Version != CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	seen := make(map[string]bool, len(doc.Charts))
	for _, c := range doc.Charts {
		if c.Name == "" {
			return nil, fmt.Errorf("%w: chart with empty name", ErrUnknownChart)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChart, c.Name)
		}
		seen[c.Name] = true
	}
	return &doc, nil
}

// Schema builds the dataset schema declared by the document.
func (d *Document) Schema() (*dataset.Schema, error) {
	schema := dataset.NewSchema()
	for _, col := range d.Dataset.Columns {
		typ, err := dataset.ParseColumnType(col.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		if err := schema.DefineColumn(col.Name, typ); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

// Chart returns the chart declaration named name.
func (d *Document) Chart(name string) (ChartDoc, error) {
	for _, c := range d.Charts {
		if c.Name == name {
			return c, nil
		}
	}
	return ChartDoc{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
}

// Names returns the chart names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Charts))
	for i, c := range d.Charts {
		names[i] = c.Name
	}
	return names
}

// Build constructs the chart IR for declaration c against schema. Bindings
// and style keys are applied in canonical order so a document always builds
// the same spec.
func (c ChartDoc) Build(schema *dataset.Schema) (*chart.Spec, error) {
	kind, err := chart.ParseKind(c.Kind)
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", c.Name, err)
	}
	spec, err := chart.New(kind, schema)
	if err != nil {
		return nil, fmt.Errorf("chart %q: %w", c.Name, err)
	}

	for _, role := range append(chart.RoleOrder(), chart.RoleFacet) {
		doc, ok := c.Bindings[string(role)]
		if !ok {
			continue
		}
		source := chart.ColumnRef(doc.Column)
		if doc.Column == "" {
			source = chart.LiteralValue(doc.Literal)
		}
		if err := spec.Bind(role, source); err != nil {
			return nil, fmt.Errorf("chart %q: binding %s: %w", c.Name, role, err)
		}
	}
	for role := range c.Bindings {
		if _, err := chart.ParseRole(role); err != nil {
			return nil, fmt.Errorf("chart %q: %w", c.Name, err)
		}
	}

	for _, key := range chart.StyleKeyOrder() {
		value, ok := c.Style[string(key)]
		if !ok {
			continue
		}
		if err := spec.SetStyle(key, value); err != nil {
			return nil, fmt.Errorf("chart %q: %w", c.Name, err)
		}
	}
	for key := range c.Style {
		if _, err := chart.ParseStyleKey(key); err != nil {
			return nil, fmt.Errorf("chart %q: %w", c.Name, err)
		}
	}

	if c.Facet != "" {
		if err := spec.SetFacet(c.Facet); err != nil {
			return nil, fmt.Errorf("chart %q: facet: %w", c.Name, err)
		}
	}

	return spec, nil
}
