// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plotlabs/plotc/internal/chart"
	"github.com/plotlabs/plotc/internal/prompts"
	"github.com/plotlabs/plotc/internal/session"
)

func registerChartsDescribeCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Show a chart's bindings and style options",
		Args:  cobra.ExactArgs(1),
		Example: `  # Describe a chart
  plotc charts describe occupation-dist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runChartsDescribe(ctx, args[0])
		},
	}

	parent.AddCommand(cmd)
}

func runChartsDescribe(ctx *session.Context, name string) error {
	doc, err := ctx.Doc.Chart(name)
	if err != nil {
		return err
	}

	// Build the spec so describe reports the same validation the translator
	// would apply.
	spec, err := doc.Build(ctx.Schema)
	if err != nil {
		return err
	}

	fields := []prompts.ResultField{
		{Label: "Name", Value: doc.Name},
		{Label: "Kind", Value: string(spec.Kind())},
	}
	for _, role := range append(chart.RoleOrder(), chart.RoleFacet) {
		if b, ok := doc.Bindings[string(role)]; ok {
			source := b.Column
			if source == "" {
				source = fmt.Sprintf("%v (literal)", b.Literal)
			}
			fields = append(fields, prompts.ResultField{Label: string(role), Value: source})
		}
	}
	for _, key := range chart.StyleKeyOrder() {
		if v, ok := spec.Style(key); ok {
			fields = append(fields, prompts.ResultField{Label: string(key), Value: fmt.Sprintf("%v", v)})
		}
	}
	if facet, ok := spec.Facet(); ok {
		fields = append(fields, prompts.ResultField{Label: "facet", Value: facet})
	}

	prompts.PrintResult(fields, "")

	for _, w := range spec.Warnings() {
		prompts.PrintWarning(w)
	}

	return nil
}
