// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package translate

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/plotlabs/plotc/internal/chart"
)

// Param is a single concrete parameter in a grammar's own vocabulary.
// Values are strings, numbers, booleans, ordered pairs ([]float64), or
// nested documents.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered parameter document. Iteration order equals the
// canonical processing order (chart call, then bindings, then style, then
// facet), so identical specs translate to byte-identical output.
type Params []Param

// Get returns the value written under name.
func (p Params) Get(name string) (any, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// Names returns parameter names in document order.
func (p Params) Names() []string {
	names := make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}

// MarshalYAML renders Params as a mapping that preserves document order.
func (p Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, param := range p {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: param.Name}
		val := &yaml.Node{}
		if err := val.Encode(param.Value); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", param.Name, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// Fragment is an auxiliary document produced by a structural rewrite: a
// rendering step that cannot be expressed as a flat parameter, such as an
// extra layer or a data restructure the renderer must perform first.
type Fragment struct {
	Kind   string `yaml:"kind"`
	Params Params `yaml:"params,omitempty"`
}

// Result is the outcome of one translation call. It is created fresh per
// call, owned by the caller, and never mutated after return.
type Result struct {
	Grammar     string       `yaml:"grammar"`
	Chart       chart.Kind   `yaml:"chart"`
	Params      Params       `yaml:"params"`
	Layers      []Fragment   `yaml:"layers,omitempty"`
	Diagnostics []Diagnostic `yaml:"diagnostics,omitempty"`
}

// paramDoc accumulates parameters during translation, detecting writes of
// the same concrete name by different semantic keys.
type paramDoc struct {
	params Params
	index  map[string]int
	origin map[string]string // concrete name -> semantic key that wrote it
}

func newParamDoc() *paramDoc {
	return &paramDoc{
		index:  make(map[string]int),
		origin: make(map[string]string),
	}
}

// set writes value under name on behalf of the semantic key from. When a
// different key already wrote name with a different value, the later write
// wins and a Conflict diagnostic is recorded.
func (d *paramDoc) set(from, name string, value any, rep *reporter) {
	if i, exists := d.index[name]; exists {
		prev := d.params[i]
		if d.origin[name] != from && fmt.Sprint(prev.Value) != fmt.Sprint(value) {
			rep.warn(CodeConflict,
				"%s and %s both write parameter %q; %s wins (%v over %v)",
				d.origin[name], from, name, from, value, prev.Value)
		}
		d.params[i].Value = value
		d.origin[name] = from
		return
	}
	d.index[name] = len(d.params)
	d.origin[name] = from
	d.params = append(d.params, Param{Name: name, Value: value})
}
