// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package chart

import (
	"fmt"
	"math"
)

// StyleKey names a semantic style or layout option, independent of how either
// target grammar spells it.
type StyleKey string

const (
	KeyTitle         StyleKey = "title"
	KeyXLabel        StyleKey = "xLabel"
	KeyYLabel        StyleKey = "yLabel"
	KeyFillColor     StyleKey = "fillColor"
	KeyOutlineColor  StyleKey = "outlineColor"
	KeyOpacity       StyleKey = "opacity"
	KeyPointShape    StyleKey = "pointShape"
	KeyLineWidth     StyleKey = "lineWidth"
	KeyLineStyle     StyleKey = "lineStyle"
	KeyBinWidth      StyleKey = "binWidth"
	KeyBinCount      StyleKey = "binCount"
	KeyGroupLayout   StyleKey = "groupLayout"
	KeyThemeTone     StyleKey = "themeTone"
	KeyLegendVisible StyleKey = "legendVisible"
	KeyAxisLimitX    StyleKey = "axisLimitX"
	KeyAxisLimitY    StyleKey = "axisLimitY"
	KeyFlipAxes      StyleKey = "flipAxes"
)

// styleKeyOrder is the canonical processing order for style keys. Translation
// walks them in this order, after bindings and before the facet variable.
var styleKeyOrder = []StyleKey{
	KeyTitle, KeyXLabel, KeyYLabel,
	KeyFillColor, KeyOutlineColor, KeyOpacity,
	KeyPointShape, KeyLineWidth, KeyLineStyle,
	KeyBinWidth, KeyBinCount,
	KeyGroupLayout, KeyThemeTone, KeyLegendVisible,
	KeyAxisLimitX, KeyAxisLimitY, KeyFlipAxes,
}

// StyleKeyOrder returns the canonical style processing order.
func StyleKeyOrder() []StyleKey {
	out := make([]StyleKey, len(styleKeyOrder))
	copy(out, styleKeyOrder)
	return out
}

// ParseStyleKey converts a string to a StyleKey.
func ParseStyleKey(s string) (StyleKey, error) {
	for _, k := range styleKeyOrder {
		if StyleKey(s) == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyleKey, s)
}

// Limit is an inclusive axis range, lo ≤ hi.
type Limit struct {
	Lo float64
	Hi float64
}

// GroupLayout values.
const (
	LayoutDodge = "dodge"
	LayoutStack = "stack"
	LayoutFill  = "fill"
)

// LineStyle values.
const (
	LineSolid  = "solid"
	LineDashed = "dashed"
	LineDotted = "dotted"
)

// PointShape values.
const (
	ShapeCircle   = "circle"
	ShapeSquare   = "square"
	ShapeTriangle = "triangle"
	ShapeDiamond  = "diamond"
	ShapeCross    = "cross"
)

// ThemeTone values.
const (
	ToneLight   = "light"
	ToneDark    = "dark"
	ToneMinimal = "minimal"
)

// normalizeStyleValue checks that value's shape matches what key expects and
// returns the canonical in-memory form (float64 for measures, int for counts,
// Limit for axis ranges). The value never escapes unvalidated into a Spec.
func normalizeStyleValue(key StyleKey, value any) (any, error) {
	switch key {
	case KeyTitle, KeyXLabel, KeyYLabel, KeyFillColor, KeyOutlineColor:
		s, ok := value.(string)
		if !ok || s == "" {
			return nil, invalidValue(key, value, "non-empty string")
		}
		return s, nil

	case KeyOpacity:
		f, ok := toFloat(value)
		if !ok || f < 0 || f > 1 {
			return nil, invalidValue(key, value, "number in [0,1]")
		}
		return f, nil

	case KeyPointShape:
		return oneOf(key, value, ShapeCircle, ShapeSquare, ShapeTriangle, ShapeDiamond, ShapeCross)

	case KeyLineWidth:
		f, ok := toFloat(value)
		if !ok || f <= 0 {
			return nil, invalidValue(key, value, "positive number")
		}
		return f, nil

	case KeyLineStyle:
		return oneOf(key, value, LineSolid, LineDashed, LineDotted)

	case KeyBinWidth:
		f, ok := toFloat(value)
		if !ok || f <= 0 {
			return nil, invalidValue(key, value, "positive number")
		}
		return f, nil

	case KeyBinCount:
		f, ok := toFloat(value)
		if !ok || f <= 0 || f != math.Trunc(f) {
			return nil, invalidValue(key, value, "positive integer")
		}
		return int(f), nil

	case KeyGroupLayout:
		return oneOf(key, value, LayoutDodge, LayoutStack, LayoutFill)

	case KeyThemeTone:
		return oneOf(key, value, ToneLight, ToneDark, ToneMinimal)

	case KeyLegendVisible, KeyFlipAxes:
		b, ok := value.(bool)
		if !ok {
			return nil, invalidValue(key, value, "boolean")
		}
		return b, nil

	case KeyAxisLimitX, KeyAxisLimitY:
		lim, ok := toLimit(value)
		if !ok {
			return nil, invalidValue(key, value, "ordered pair of numbers")
		}
		if lim.Lo > lim.Hi {
			return nil, invalidValue(key, value, "pair with lower <= upper")
		}
		return lim, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStyleKey, key)
}

func invalidValue(key StyleKey, value any, want string) error {
	return fmt.Errorf("%w: %s = %v, want %s", ErrInvalidStyleValue, key, value, want)
}

func oneOf(key StyleKey, value any, allowed ...string) (any, error) {
	s, ok := value.(string)
	if ok {
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
	}
	return nil, invalidValue(key, value, fmt.Sprintf("one of %v", allowed))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toLimit(v any) (Limit, bool) {
	switch p := v.(type) {
	case Limit:
		return p, true
	case [2]float64:
		return Limit{Lo: p[0], Hi: p[1]}, true
	case []float64:
		if len(p) == 2 {
			return Limit{Lo: p[0], Hi: p[1]}, true
		}
	case []any:
		if len(p) == 2 {
			lo, okLo := toFloat(p[0])
			hi, okHi := toFloat(p[1])
			if okLo && okHi {
				return Limit{Lo: lo, Hi: hi}, true
			}
		}
	}
	return Limit{}, false
}
