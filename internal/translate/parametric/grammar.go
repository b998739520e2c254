// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package parametric defines the capability table for the parametric target
// grammar: one drawing call per chart kind, options as flat keyword
// arguments. Interior color is spelled "col" and border color "border";
// there is no theme system, no alpha channel, and grouped or faceted charts
// need the data restructured before drawing.
package parametric

import (
	"github.com/plotlabs/plotc/internal/chart"
	"github.com/plotlabs/plotc/internal/translate"
)

// Name is the grammar identifier used with translate.Translate.
const Name = "parametric"

func init() {
	// Auto-register on import
	translate.Register(Table())
}

// Point shape and line style encodings. The grammar addresses both by
// numeric code, not by name.
var (
	shapeCodes = map[string]int{
		chart.ShapeCircle:   19,
		chart.ShapeSquare:   15,
		chart.ShapeTriangle: 17,
		chart.ShapeDiamond:  18,
		chart.ShapeCross:    4,
	}

	lineCodes = map[string]int{
		chart.LineSolid:  1,
		chart.LineDashed: 2,
		chart.LineDotted: 3,
	}
)

// Table builds the parametric capability table.
func Table() *translate.Table {
	return &translate.Table{
		Grammar: Name,
		Kinds: map[chart.Kind]translate.KindCaps{
			chart.Bar: {
				Call: translate.Params{{Name: "call", Value: "barplot"}},
				Roles: map[chart.Role]string{
					chart.RoleX:       "height",
					chart.RoleGroup:   "groups",
					chart.RoleFill:    "col",
					chart.RoleOutline: "border",
				},
				Style: merge(labels(), fillBorder(), axisLimits(), map[chart.StyleKey]translate.Entry{
					chart.KeyGroupLayout: {
						Write:   writeGroupLayout,
						Rewrite: true,
						Note:    "grouped bars are drawn from a category-by-group matrix; cross-tabulate the data before the call",
					},
					chart.KeyFlipAxes:      {Write: translate.Scalar("horiz")},
					chart.KeyLegendVisible: {Write: translate.Scalar("legend")},
					chart.KeyOpacity:       noAlpha(),
					chart.KeyThemeTone:     noTheme(),
				}),
				Facet: panelFacet(),
			},
			chart.Pie: {
				Call: translate.Params{{Name: "call", Value: "pie"}},
				Roles: map[chart.Role]string{
					chart.RoleX:    "x",
					chart.RoleFill: "col",
				},
				Style: merge(labels(), fillBorder(), map[chart.StyleKey]translate.Entry{
					chart.KeyLegendVisible: legendCall(),
					chart.KeyOpacity:       noAlpha(),
					chart.KeyThemeTone:     noTheme(),
				}),
			},
			chart.Histogram: {
				Call: translate.Params{{Name: "call", Value: "hist"}},
				Roles: map[chart.Role]string{
					chart.RoleX:    "x",
					chart.RoleFill: "col",
				},
				Style: merge(labels(), fillBorder(), axisLimits(), map[chart.StyleKey]translate.Entry{
					chart.KeyBinCount: {Write: translate.Scalar("breaks")},
					chart.KeyBinWidth: {
						Note: "width-based binning needs break positions computed from data; only a bin count can be passed",
					},
					chart.KeyLegendVisible: legendCall(),
					chart.KeyOpacity:       noAlpha(),
					chart.KeyThemeTone:     noTheme(),
				}),
				Facet: panelFacet(),
			},
			chart.Boxplot: {
				Call: translate.Params{{Name: "call", Value: "boxplot"}},
				Roles: map[chart.Role]string{
					chart.RoleY:       "response",
					chart.RoleGroup:   "by",
					chart.RoleFill:    "col",
					chart.RoleOutline: "border",
				},
				// The grammar draws grouped boxes from a response~group
				// formula; a bare response has no formula form here.
				Requires: []translate.RoleRule{
					{If: chart.RoleY, Then: chart.RoleGroup},
				},
				Style: merge(labels(), fillBorder(), axisLimits(), map[chart.StyleKey]translate.Entry{
					chart.KeyFlipAxes:      {Write: translate.Scalar("horizontal")},
					chart.KeyLegendVisible: legendCall(),
					chart.KeyOpacity:       noAlpha(),
					chart.KeyThemeTone:     noTheme(),
				}),
				Facet: panelFacet(),
			},
			chart.Line: {
				Call: translate.Params{
					{Name: "call", Value: "plot"},
					{Name: "type", Value: "l"},
				},
				Roles: map[chart.Role]string{
					chart.RoleX:       "x",
					chart.RoleY:       "y",
					chart.RoleOutline: "col",
				},
				Style: merge(labels(), axisLimits(), map[chart.StyleKey]translate.Entry{
					chart.KeyOutlineColor: {Write: translate.Scalar("col")},
					chart.KeyFillColor: {
						Note: "a line has no interior to fill",
					},
					chart.KeyLineWidth:     {Write: translate.Scalar("lwd")},
					chart.KeyLineStyle:     {Write: translate.Mapped("lty", lineCodes)},
					chart.KeyLegendVisible: legendCall(),
					chart.KeyOpacity:       noAlpha(),
					chart.KeyThemeTone:     noTheme(),
				}),
				Facet: panelFacet(),
			},
			chart.Scatter: {
				Call: translate.Params{{Name: "call", Value: "plot"}},
				Roles: map[chart.Role]string{
					chart.RoleX:     "x",
					chart.RoleY:     "y",
					chart.RoleGroup: "col",
					chart.RoleSize:  "cex",
					chart.RoleShape: "pch",
				},
				Style: merge(labels(), axisLimits(), map[chart.StyleKey]translate.Entry{
					// Filled point markers split color in two: "bg" fills the
					// interior, "col" draws the outline.
					chart.KeyFillColor:     {Write: translate.Scalar("bg")},
					chart.KeyOutlineColor:  {Write: translate.Scalar("col")},
					chart.KeyPointShape:    {Write: translate.Mapped("pch", shapeCodes)},
					chart.KeyLegendVisible: legendCall(),
					chart.KeyOpacity:       noAlpha(),
					chart.KeyThemeTone:     noTheme(),
				}),
			},
		},
	}
}

// labels maps the three mandatory keys to main/xlab/ylab.
func labels() map[chart.StyleKey]translate.Entry {
	return map[chart.StyleKey]translate.Entry{
		chart.KeyTitle:  {Write: translate.Scalar("main")},
		chart.KeyXLabel: {Write: translate.Scalar("xlab")},
		chart.KeyYLabel: {Write: translate.Scalar("ylab")},
	}
}

// fillBorder maps interior color to "col" and border color to "border".
func fillBorder() map[chart.StyleKey]translate.Entry {
	return map[chart.StyleKey]translate.Entry{
		chart.KeyFillColor:    {Write: translate.Scalar("col")},
		chart.KeyOutlineColor: {Write: translate.Scalar("border")},
	}
}

// axisLimits maps the limit keys to xlim/ylim. The grammar crops the view
// only; statistics are computed on the full data first.
func axisLimits() map[chart.StyleKey]translate.Entry {
	return map[chart.StyleKey]translate.Entry{
		chart.KeyAxisLimitX: {Write: translate.Pair("xlim"), Crop: translate.CropVisual},
		chart.KeyAxisLimitY: {Write: translate.Pair("ylim"), Crop: translate.CropVisual},
	}
}

func noAlpha() translate.Entry {
	return translate.Entry{Note: "flat keyword calls carry no alpha channel"}
}

func noTheme() translate.Entry {
	return translate.Entry{Note: "the grammar has no theme system"}
}

// legendCall marks kinds whose legend is a separate drawing step, not a
// chart parameter.
func legendCall() translate.Entry {
	return translate.Entry{Note: "the legend is a separate draw call, not a chart parameter"}
}

// panelFacet realizes faceting as one draw call per level on a panel grid.
func panelFacet() *translate.FacetCap {
	return &translate.FacetCap{
		Rewrite: func(column string) translate.Fragment {
			return translate.Fragment{
				Kind: "panel-grid",
				Params: translate.Params{
					{Name: "by", Value: column},
				},
			}
		},
		Note: "one draw call per facet level, arranged on a panel grid",
	}
}

// writeGroupLayout realizes grouped bars. The grammar has no positioning
// concept; bars come from a category-by-group matrix and a beside flag, and
// proportional stacking additionally rescales each column.
func writeGroupLayout(value any) (translate.Params, []translate.Fragment) {
	layout, _ := value.(string)

	restructure := translate.Fragment{
		Kind: "restructure",
		Params: translate.Params{
			{Name: "shape", Value: "category-by-group matrix"},
		},
	}

	switch layout {
	case chart.LayoutDodge:
		return translate.Params{{Name: "beside", Value: true}}, []translate.Fragment{restructure}
	case chart.LayoutFill:
		restructure.Params = append(restructure.Params,
			translate.Param{Name: "rescale", Value: "column-proportions"})
		return translate.Params{{Name: "beside", Value: false}}, []translate.Fragment{restructure}
	default: // stack
		return translate.Params{{Name: "beside", Value: false}}, []translate.Fragment{restructure}
	}
}

// merge combines per-kind entry maps; later maps win on duplicate keys.
func merge(maps ...map[chart.StyleKey]translate.Entry) map[chart.StyleKey]translate.Entry {
	out := make(map[chart.StyleKey]translate.Entry)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
