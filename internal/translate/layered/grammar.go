// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package layered defines the capability table for the layered target
// grammar: a base object plus composable layers for aesthetics, geometry,
// scales, coordinates, facets and themes. The bare color names swap meaning
// against the parametric grammar: "fill" is the interior and "colour" the
// outline. Scale limits here are destructive — data outside the range is
// dropped before any statistic is computed.
package layered

import (
	"github.com/plotlabs/plotc/internal/chart"
	"github.com/plotlabs/plotc/internal/translate"
)

// Name is the grammar identifier used with translate.Translate.
const Name = "layered"

func init() {
	// Auto-register on import
	translate.Register(Table())
}

var themeNames = map[string]string{
	chart.ToneLight:   "theme_light",
	chart.ToneDark:    "theme_dark",
	chart.ToneMinimal: "theme_minimal",
}

// Table builds the layered capability table.
func Table() *translate.Table {
	return &translate.Table{
		Grammar: Name,
		Kinds: map[chart.Kind]translate.KindCaps{
			chart.Bar: {
				Call:  geom("bar"),
				Roles: aes(),
				Style: merge(common(), map[chart.StyleKey]translate.Entry{
					chart.KeyGroupLayout: {Write: translate.Scalar("position")},
					chart.KeyFlipAxes:    {Write: writeFlip},
				}),
				Facet: facet(),
			},
			chart.Pie: {
				// The grammar has no pie geometry; a pie is a stacked bar
				// wrapped onto polar coordinates.
				Call: geom("bar"),
				CallFragments: []translate.Fragment{{
					Kind: "coord",
					Params: translate.Params{
						{Name: "coord", Value: "polar"},
						{Name: "theta", Value: "y"},
					},
				}},
				CallNote: "a pie is a stacked bar in polar coordinates",
				Roles:    aes(),
				Style:    common(),
			},
			chart.Histogram: {
				Call:  geom("histogram"),
				Roles: aes(),
				Style: merge(common(), map[chart.StyleKey]translate.Entry{
					chart.KeyBinWidth: {Write: translate.Scalar("binwidth")},
					chart.KeyBinCount: {Write: translate.Scalar("bins")},
					chart.KeyFlipAxes: {Write: writeFlip},
				}),
				Facet: facet(),
			},
			chart.Boxplot: {
				Call:  geom("boxplot"),
				Roles: aes(),
				Style: merge(common(), map[chart.StyleKey]translate.Entry{
					chart.KeyFlipAxes: {Write: writeFlip},
				}),
				Facet: facet(),
			},
			chart.Line: {
				Call:  geom("line"),
				Roles: aes(),
				Style: merge(common(), map[chart.StyleKey]translate.Entry{
					chart.KeyLineWidth: {Write: translate.Scalar("linewidth")},
					chart.KeyLineStyle: {Write: translate.Scalar("linetype")},
					chart.KeyFlipAxes:  {Write: writeFlip},
				}),
				Facet: facet(),
			},
			chart.Scatter: {
				Call:  geom("point"),
				Roles: aes(),
				Style: merge(common(), map[chart.StyleKey]translate.Entry{
					chart.KeyPointShape: {Write: translate.Scalar("shape")},
					chart.KeyFlipAxes:   {Write: writeFlip},
				}),
				Facet: facet(),
			},
		},
	}
}

func geom(name string) translate.Params {
	return translate.Params{{Name: "geom", Value: name}}
}

// aes maps every binding role to its aesthetic slot. The same map serves all
// kinds: the chart IR already restricts which roles a kind accepts.
func aes() map[chart.Role]string {
	return map[chart.Role]string{
		chart.RoleX:       "aes.x",
		chart.RoleY:       "aes.y",
		chart.RoleGroup:   "aes.group",
		chart.RoleFill:    "aes.fill",
		chart.RoleOutline: "aes.colour",
		chart.RoleSize:    "aes.size",
		chart.RoleShape:   "aes.shape",
	}
}

// common holds the style entries shared by every kind. Note the color
// naming: "fill" is interior, "colour" is outline — the reverse reading of
// the parametric grammar's bare "col".
func common() map[chart.StyleKey]translate.Entry {
	return map[chart.StyleKey]translate.Entry{
		chart.KeyTitle:        {Write: translate.Scalar("labs.title")},
		chart.KeyXLabel:       {Write: translate.Scalar("labs.x")},
		chart.KeyYLabel:       {Write: translate.Scalar("labs.y")},
		chart.KeyFillColor:    {Write: translate.Scalar("fill")},
		chart.KeyOutlineColor: {Write: translate.Scalar("colour")},
		chart.KeyOpacity:      {Write: translate.Scalar("alpha")},
		chart.KeyThemeTone:    {Write: translate.Mapped("theme", themeNames)},
		chart.KeyLegendVisible: {Write: func(value any) (translate.Params, []translate.Fragment) {
			position := "right"
			if visible, ok := value.(bool); ok && !visible {
				position = "none"
			}
			return translate.Params{{Name: "legend.position", Value: position}}, nil
		}},
		chart.KeyAxisLimitX: {Write: translate.Pair("scale.x.limits"), Crop: translate.CropDestructive},
		chart.KeyAxisLimitY: {Write: translate.Pair("scale.y.limits"), Crop: translate.CropDestructive},
	}
}

// writeFlip adds the flipped coordinate system; an explicit false writes
// nothing, the default orientation needs no layer.
func writeFlip(value any) (translate.Params, []translate.Fragment) {
	if flipped, ok := value.(bool); ok && flipped {
		return translate.Params{{Name: "coord", Value: "flip"}}, nil
	}
	return nil, nil
}

func facet() *translate.FacetCap {
	return &translate.FacetCap{Param: "facet.by"}
}

// merge combines style entry maps; later maps win on duplicate keys.
func merge(maps ...map[chart.StyleKey]translate.Entry) map[chart.StyleKey]translate.Entry {
	out := make(map[chart.StyleKey]translate.Entry)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
