// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package chartfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotlabs/plotc/internal/chart"
	"github.com/plotlabs/plotc/internal/dataset"
)

const sampleDoc = `version: 1
dataset:
  columns:
    - name: Occupation
      type: categorical
    - name: Sex
      type: categorical
    - name: Age
      type: numeric
charts:
  - name: occupation-dist
    kind: bar
    bindings:
      x: Occupation
    style:
      title: Occupation Distribution
      xLabel: Occupation
      yLabel: Count
      fillColor: skyblue
  - name: age-hist
    kind: histogram
    bindings:
      x: Age
      fill:
        literal: grey
    style:
      binCount: 12
    facet: Sex
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, []string{"occupation-dist", "age-hist"}, doc.Names())

	schema, err := doc.Schema()
	require.NoError(t, err)
	col, err := schema.Resolve("Age")
	require.NoError(t, err)
	assert.Equal(t, dataset.Numeric, col.Type)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "unsupported version",
			input:   "version: 99\ncharts: []\n",
			wantErr: ErrUnsupportedVersion,
		},
		{
			name: "duplicate chart name",
			input: `version: 1
charts:
  - name: twice
    kind: bar
  - name: twice
    kind: pie
`,
			wantErr: ErrDuplicateChart,
		},
		{
			name: "empty chart name",
			input: `version: 1
charts:
  - name: ""
    kind: bar
`,
			wantErr: ErrUnknownChart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Charts, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDocument_Chart(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	c, err := doc.Chart("age-hist")
	require.NoError(t, err)
	assert.Equal(t, "histogram", c.Kind)

	_, err = doc.Chart("nope")
	assert.ErrorIs(t, err, ErrUnknownChart)
}

func TestChartDoc_Build(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	schema, err := doc.Schema()
	require.NoError(t, err)

	c, err := doc.Chart("age-hist")
	require.NoError(t, err)
	spec, err := c.Build(schema)
	require.NoError(t, err)

	assert.Equal(t, chart.Histogram, spec.Kind())

	x, ok := spec.Binding(chart.RoleX)
	require.True(t, ok)
	assert.Equal(t, "Age", x.Column)

	fill, ok := spec.Binding(chart.RoleFill)
	require.True(t, ok)
	assert.True(t, fill.IsLiteral())
	assert.Equal(t, "grey", fill.Literal)

	bins, ok := spec.Style(chart.KeyBinCount)
	require.True(t, ok)
	assert.Equal(t, 12, bins)

	facet, ok := spec.Facet()
	require.True(t, ok)
	assert.Equal(t, "Sex", facet)
}

func TestChartDoc_Build_Errors(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)
	schema, err := doc.Schema()
	require.NoError(t, err)

	tests := []struct {
		name    string
		chart   ChartDoc
		wantErr error
	}{
		{
			name:    "unknown kind",
			chart:   ChartDoc{Name: "c", Kind: "sunburst"},
			wantErr: chart.ErrUnknownKind,
		},
		{
			name: "unknown role",
			chart: ChartDoc{Name: "c", Kind: "bar", Bindings: map[string]BindingDoc{
				"x":     {Column: "Occupation"},
				"angle": {Column: "Age"},
			}},
			wantErr: chart.ErrUnsupportedRole,
		},
		{
			name: "unknown column",
			chart: ChartDoc{Name: "c", Kind: "bar", Bindings: map[string]BindingDoc{
				"x": {Column: "Salary"},
			}},
			wantErr: dataset.ErrUnknownColumn,
		},
		{
			name: "type mismatch",
			chart: ChartDoc{Name: "c", Kind: "boxplot", Bindings: map[string]BindingDoc{
				"y": {Column: "Sex"},
			}},
			wantErr: chart.ErrTypeMismatch,
		},
		{
			name: "unknown style key",
			chart: ChartDoc{Name: "c", Kind: "bar",
				Bindings: map[string]BindingDoc{"x": {Column: "Occupation"}},
				Style:    map[string]any{"gradient": true}},
			wantErr: chart.ErrUnknownStyleKey,
		},
		{
			name: "invalid style value",
			chart: ChartDoc{Name: "c", Kind: "bar",
				Bindings: map[string]BindingDoc{"x": {Column: "Occupation"}},
				Style:    map[string]any{"opacity": 3}},
			wantErr: chart.ErrInvalidStyleValue,
		},
		{
			name: "facet column missing",
			chart: ChartDoc{Name: "c", Kind: "bar",
				Bindings: map[string]BindingDoc{"x": {Column: "Occupation"}},
				Facet:    "Region"},
			wantErr: dataset.ErrUnknownColumn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.chart.Build(schema)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), `"c"`)
		})
	}
}

func TestBindingDoc_UnmarshalYAML_Invalid(t *testing.T) {
	_, err := Parse([]byte(`version: 1
charts:
  - name: c
    kind: bar
    bindings:
      x: [not, valid]
`))
	assert.Error(t, err)
}
