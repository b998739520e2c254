// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package dataset describes the shape of a tabular dataset: column names and
// declared types, never values. The translator validates chart bindings
// against it; actual data stays with the rendering side.
package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateColumn indicates a column name was defined twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrUnknownColumn indicates a referenced column does not exist.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownColumnType indicates a column type outside the closed set.
	ErrUnknownColumnType = errors.New("unknown column type")
)

// ColumnType is the declared type of a dataset column.
type ColumnType string

const (
	Categorical ColumnType = "categorical"
	Numeric     ColumnType = "numeric"
	Temporal    ColumnType = "temporal"
	Logical     ColumnType = "logical"
)

// ParseColumnType converts a string to a ColumnType.
func ParseColumnType(s string) (ColumnType, error) {
	switch ColumnType(s) {
	case Categorical, Numeric, Temporal, Logical:
		return ColumnType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumnType, s)
}

// Column is a single dataset column. Immutable once defined.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is an ordered, name-unique set of columns.
// It is read-only after construction; the translator never mutates it.
type Schema struct {
	columns []Column
	index   map[string]int
}

// NewSchema returns an empty schema.
func NewSchema() *Schema {
	return &Schema{index: make(map[string]int)}
}

// DefineColumn appends a column to the schema.
func (s *Schema) DefineColumn(name string, typ ColumnType) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownColumn)
	}
	if _, exists := s.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	if _, err := ParseColumnType(string(typ)); err != nil {
		return err
	}
	s.index[name] = len(s.columns)
	s.columns = append(s.columns, Column{Name: name, Type: typ})
	return nil
}

// Resolve looks up a column by name.
func (s *Schema) Resolve(name string) (Column, error) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return s.columns[i], nil
}

// Columns returns the columns in definition order.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of defined columns.
func (s *Schema) Len() int {
	return len(s.columns)
}
