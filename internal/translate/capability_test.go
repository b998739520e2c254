// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotlabs/plotc/internal/chart"
)

func TestTableValidate_MissingLabelKey(t *testing.T) {
	table := &Table{
		Grammar: "broken",
		Kinds: map[chart.Kind]KindCaps{
			chart.Bar: {
				Call: Params{{Name: "call", Value: "bars"}},
				Style: map[chart.StyleKey]Entry{
					chart.KeyTitle:  {Write: Scalar("heading")},
					chart.KeyXLabel: {Write: Scalar("xname")},
					// yLabel missing
				},
			},
		},
	}

	err := table.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteCapabilityTable)
}

func TestTableValidate_NilWriterDoesNotCount(t *testing.T) {
	table := &Table{
		Grammar: "broken",
		Kinds: map[chart.Kind]KindCaps{
			chart.Bar: {
				Call: Params{{Name: "call", Value: "bars"}},
				Style: map[chart.StyleKey]Entry{
					chart.KeyTitle:  {Write: Scalar("heading")},
					chart.KeyXLabel: {Write: Scalar("xname")},
					chart.KeyYLabel: {Note: "mapped to nothing"},
				},
			},
		},
	}

	assert.ErrorIs(t, table.validate(), ErrIncompleteCapabilityTable)
}

func TestTableValidate_MissingCall(t *testing.T) {
	table := &Table{
		Grammar: "broken",
		Kinds: map[chart.Kind]KindCaps{
			chart.Bar: {
				Style: map[chart.StyleKey]Entry{
					chart.KeyTitle:  {Write: Scalar("heading")},
					chart.KeyXLabel: {Write: Scalar("xname")},
					chart.KeyYLabel: {Write: Scalar("yname")},
				},
			},
		},
	}

	assert.ErrorIs(t, table.validate(), ErrIncompleteCapabilityTable)
}

func TestRegister_PanicsOnInvalidTable(t *testing.T) {
	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		err, ok := recovered.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrIncompleteCapabilityTable)
	}()

	Register(&Table{Grammar: "broken", Kinds: map[chart.Kind]KindCaps{chart.Bar: {}}})
}

func TestParamWriters(t *testing.T) {
	params, fragments := Scalar("main")("Ages")
	require.Nil(t, fragments)
	require.Len(t, params, 1)
	assert.Equal(t, Param{Name: "main", Value: "Ages"}, params[0])

	params, _ = Mapped("lty", map[string]int{"dashed": 2})("dashed")
	assert.Equal(t, Param{Name: "lty", Value: 2}, params[0])

	// Unknown encoding falls through to the raw value.
	params, _ = Mapped("lty", map[string]int{"dashed": 2})("dotted")
	assert.Equal(t, Param{Name: "lty", Value: "dotted"}, params[0])

	params, _ = Pair("xlim")(chart.Limit{Lo: 0, Hi: 10})
	assert.Equal(t, Param{Name: "xlim", Value: []float64{0, 10}}, params[0])
}
