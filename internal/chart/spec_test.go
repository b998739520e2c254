// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotlabs/plotc/internal/dataset"
)

func testSchema(t *testing.T) *dataset.Schema {
	t.Helper()
	s := dataset.NewSchema()
	require.NoError(t, s.DefineColumn("occupation", dataset.Categorical))
	require.NoError(t, s.DefineColumn("sex", dataset.Categorical))
	require.NoError(t, s.DefineColumn("age", dataset.Numeric))
	require.NoError(t, s.DefineColumn("joined", dataset.Temporal))
	require.NoError(t, s.DefineColumn("active", dataset.Logical))
	return s
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New(Kind("heatmap"), testSchema(t))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBind(t *testing.T) {
	schema := testSchema(t)

	tests := []struct {
		name    string
		kind    Kind
		role    Role
		source  Source
		wantErr error
	}{
		{
			name:   "bar x categorical",
			kind:   Bar,
			role:   RoleX,
			source: ColumnRef("occupation"),
		},
		{
			name:   "histogram x numeric",
			kind:   Histogram,
			role:   RoleX,
			source: ColumnRef("age"),
		},
		{
			name:   "line x temporal",
			kind:   Line,
			role:   RoleX,
			source: ColumnRef("joined"),
		},
		{
			name:   "scatter fill literal",
			kind:   Scatter,
			role:   RoleShape,
			source: LiteralValue("circle"),
		},
		{
			name:    "histogram rejects y",
			kind:    Histogram,
			role:    RoleY,
			source:  ColumnRef("age"),
			wantErr: ErrUnsupportedRole,
		},
		{
			name:    "pie rejects facet-only roles",
			kind:    Pie,
			role:    RoleSize,
			source:  ColumnRef("age"),
			wantErr: ErrUnsupportedRole,
		},
		{
			name:    "histogram x categorical mismatch",
			kind:    Histogram,
			role:    RoleX,
			source:  ColumnRef("occupation"),
			wantErr: ErrTypeMismatch,
		},
		{
			name:    "boxplot y temporal mismatch",
			kind:    Boxplot,
			role:    RoleY,
			source:  ColumnRef("joined"),
			wantErr: ErrTypeMismatch,
		},
		{
			name:    "scatter size categorical mismatch",
			kind:    Scatter,
			role:    RoleSize,
			source:  ColumnRef("sex"),
			wantErr: ErrTypeMismatch,
		},
		{
			name:    "unknown column",
			kind:    Bar,
			role:    RoleX,
			source:  ColumnRef("salary"),
			wantErr: dataset.ErrUnknownColumn,
		},
		{
			name:    "literal not allowed on axis",
			kind:    Scatter,
			role:    RoleX,
			source:  LiteralValue(3),
			wantErr: ErrLiteralNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := New(tt.kind, schema)
			require.NoError(t, err)

			err = spec.Bind(tt.role, tt.source)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			_, bound := spec.Binding(tt.role)
			assert.True(t, bound)
		})
	}
}

func TestBind_DuplicateRole(t *testing.T) {
	spec, err := New(Bar, testSchema(t))
	require.NoError(t, err)

	require.NoError(t, spec.Bind(RoleX, ColumnRef("occupation")))
	err = spec.Bind(RoleX, ColumnRef("sex"))
	assert.ErrorIs(t, err, ErrDuplicateRole)
}

func TestSetStyle_Validation(t *testing.T) {
	schema := testSchema(t)

	tests := []struct {
		name    string
		key     StyleKey
		value   any
		wantErr error
	}{
		{name: "title", key: KeyTitle, value: "Ages"},
		{name: "opacity in range", key: KeyOpacity, value: 0.5},
		{name: "opacity out of range", key: KeyOpacity, value: 1.5, wantErr: ErrInvalidStyleValue},
		{name: "empty title", key: KeyTitle, value: "", wantErr: ErrInvalidStyleValue},
		{name: "line style enum", key: KeyLineStyle, value: "dashed"},
		{name: "line style bad", key: KeyLineStyle, value: "wavy", wantErr: ErrInvalidStyleValue},
		{name: "bin count integral", key: KeyBinCount, value: 10},
		{name: "bin count fractional", key: KeyBinCount, value: 2.5, wantErr: ErrInvalidStyleValue},
		{name: "limit ordered", key: KeyAxisLimitX, value: []float64{0, 10}},
		{name: "limit inverted", key: KeyAxisLimitX, value: []float64{10, 0}, wantErr: ErrInvalidStyleValue},
		{name: "limit wrong shape", key: KeyAxisLimitY, value: "0..10", wantErr: ErrInvalidStyleValue},
		{name: "legend bool", key: KeyLegendVisible, value: true},
		{name: "legend non-bool", key: KeyLegendVisible, value: "yes", wantErr: ErrInvalidStyleValue},
		{name: "unknown key", key: StyleKey("gridColor"), value: "gray", wantErr: ErrUnknownStyleKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := New(Histogram, schema)
			require.NoError(t, err)

			err = spec.SetStyle(tt.key, tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSetStyle_BinExclusivity(t *testing.T) {
	spec, err := New(Histogram, testSchema(t))
	require.NoError(t, err)

	require.NoError(t, spec.SetStyle(KeyBinWidth, 2.5))
	require.NoError(t, spec.SetStyle(KeyBinCount, 12))

	_, widthSet := spec.Style(KeyBinWidth)
	count, countSet := spec.Style(KeyBinCount)
	assert.False(t, widthSet, "binCount should clear binWidth")
	require.True(t, countSet)
	assert.Equal(t, 12, count)

	// And the other direction.
	require.NoError(t, spec.SetStyle(KeyBinWidth, 1.0))
	_, countSet = spec.Style(KeyBinCount)
	assert.False(t, countSet, "binWidth should clear binCount")
}

func TestSetFacet(t *testing.T) {
	spec, err := New(Bar, testSchema(t))
	require.NoError(t, err)

	require.NoError(t, spec.SetFacet("sex"))
	facet, ok := spec.Facet()
	require.True(t, ok)
	assert.Equal(t, "sex", facet)
	assert.Empty(t, spec.Warnings())

	err = spec.SetFacet("salary")
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

func TestSetFacet_NumericWarns(t *testing.T) {
	spec, err := New(Bar, testSchema(t))
	require.NoError(t, err)

	require.NoError(t, spec.SetFacet("age"))
	_, ok := spec.Facet()
	assert.True(t, ok, "numeric facet is allowed")
	require.Len(t, spec.Warnings(), 1)
	assert.Contains(t, spec.Warnings()[0], "numeric")
}

func TestBind_FacetDelegates(t *testing.T) {
	spec, err := New(Scatter, testSchema(t))
	require.NoError(t, err)

	require.NoError(t, spec.Bind(RoleFacet, ColumnRef("sex")))
	facet, ok := spec.Facet()
	require.True(t, ok)
	assert.Equal(t, "sex", facet)
}
