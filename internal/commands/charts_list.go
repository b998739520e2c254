// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plotlabs/plotc/internal/chart"
	"github.com/plotlabs/plotc/internal/session"
)

func registerChartsListCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all charts in the chart document",
		Example: `  # List charts
  plotc charts list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runChartsList(ctx)
		},
	}

	parent.AddCommand(cmd)
}

func runChartsList(ctx *session.Context) error {
	if len(ctx.Doc.Charts) == 0 {
		fmt.Println("No charts defined.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tKIND\tBINDINGS\tFACET")

	for _, c := range ctx.Doc.Charts {
		bindings := make([]string, 0, len(c.Bindings))
		for _, role := range append(chart.RoleOrder(), chart.RoleFacet) {
			if b, ok := c.Bindings[string(role)]; ok {
				source := b.Column
				if source == "" {
					source = fmt.Sprintf("%v", b.Literal)
				}
				bindings = append(bindings, fmt.Sprintf("%s=%s", role, source))
			}
		}
		bindingsDisplay := "-"
		if len(bindings) > 0 {
			bindingsDisplay = strings.Join(bindings, ", ")
		}

		facet := c.Facet
		if facet == "" {
			facet = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Kind, bindingsDisplay, facet)
	}

	return w.Flush()
}
