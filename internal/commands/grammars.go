// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plotlabs/plotc/internal/chart"
	"github.com/plotlabs/plotc/internal/translate"
)

func registerGrammarsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "grammars",
		Short: "List the available target grammars",
		Example: `  # List grammars
  plotc grammars`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrammars()
		},
	}

	parent.AddCommand(cmd)
}

func runGrammars() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "GRAMMAR\tCHART KINDS")

	for _, name := range translate.Available() {
		table, err := translate.Get(name)
		if err != nil {
			return err
		}
		count := 0
		for _, kind := range chart.Kinds() {
			if _, ok := table.Kinds[kind]; ok {
				count++
			}
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\n", name, count)
	}

	return w.Flush()
}
