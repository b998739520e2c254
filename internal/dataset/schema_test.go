// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package dataset

import (
	"errors"
	"testing"
)

func TestSchema_DefineColumn(t *testing.T) {
	s := NewSchema()

	if err := s.DefineColumn("age", Numeric); err != nil {
		t.Fatalf("DefineColumn() error = %v", err)
	}
	if err := s.DefineColumn("sex", Categorical); err != nil {
		t.Fatalf("DefineColumn() error = %v", err)
	}

	err := s.DefineColumn("age", Temporal)
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Errorf("DefineColumn() error = %v, want ErrDuplicateColumn", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSchema_DefineColumn_BadType(t *testing.T) {
	s := NewSchema()
	err := s.DefineColumn("x", ColumnType("complex"))
	if !errors.Is(err, ErrUnknownColumnType) {
		t.Errorf("DefineColumn() error = %v, want ErrUnknownColumnType", err)
	}
}

func TestSchema_Resolve(t *testing.T) {
	s := NewSchema()
	if err := s.DefineColumn("occupation", Categorical); err != nil {
		t.Fatalf("DefineColumn() error = %v", err)
	}

	col, err := s.Resolve("occupation")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if col.Type != Categorical {
		t.Errorf("Resolve() type = %v, want Categorical", col.Type)
	}

	if _, err := s.Resolve("salary"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("Resolve() error = %v, want ErrUnknownColumn", err)
	}
}

func TestSchema_ColumnsOrder(t *testing.T) {
	s := NewSchema()
	names := []string{"c", "a", "b"}
	for _, n := range names {
		if err := s.DefineColumn(n, Numeric); err != nil {
			t.Fatalf("DefineColumn(%q) error = %v", n, err)
		}
	}

	cols := s.Columns()
	for i, n := range names {
		if cols[i].Name != n {
			t.Errorf("Columns()[%d] = %q, want %q", i, cols[i].Name, n)
		}
	}
}
