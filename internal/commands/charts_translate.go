// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/plotlabs/plotc/internal/prompts"
	"github.com/plotlabs/plotc/internal/session"
	"github.com/plotlabs/plotc/internal/translate"
)

type chartsTranslateOptions struct {
	name    string
	grammar string
	output  string
	all     bool
}

func registerChartsTranslateCmd(parent *cobra.Command) {
	opts := &chartsTranslateOptions{}

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate charts into a target grammar's parameters",
		Long: fmt.Sprintf(`Translate chart definitions into the concrete parameter document of a
target grammar.

Available grammars: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode
  plotc charts translate

  # Translate a specific chart
  plotc charts translate --name occupation-dist --grammar layered

  # Translate multiple charts
  plotc charts translate --name chart-a,chart-b --grammar parametric

  # Translate all charts into a custom output directory
  plotc charts translate --all --grammar layered --output build`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChartsTranslate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Chart name(s), comma-separated")
	cmd.Flags().StringVarP(&opts.grammar, "grammar", "g", "", fmt.Sprintf("Target grammar (%s)", strings.Join(translate.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (default \"params\")")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Translate all charts")

	parent.AddCommand(cmd)
}

func runChartsTranslate(cmd *cobra.Command, opts *chartsTranslateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	logger := loggerFromCommand(cmd)

	if len(ctx.Doc.Charts) == 0 {
		return fmt.Errorf("no charts defined")
	}
	if opts.all && opts.name != "" {
		return fmt.Errorf("--all and --name are mutually exclusive")
	}

	grammar := opts.grammar
	if grammar == "" {
		grammar = ctx.Config.Grammar
	}

	var selected []string
	switch {
	case opts.all:
		selected = ctx.Doc.Names()
	case opts.name != "":
		for _, name := range strings.Split(opts.name, ",") {
			selected = append(selected, strings.TrimSpace(name))
		}
	}

	// Anything still missing is asked for interactively.
	if err := prompts.RunTranslateForm(&selected, &grammar, ctx.Doc.Names(), translate.Available()); err != nil {
		return err
	}
	if len(selected) == 0 {
		return fmt.Errorf("no charts selected")
	}
	if _, err := translate.Get(grammar); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = ctx.Config.Output
	}
	if output == "" {
		output = "params"
	}
	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var fields []prompts.ResultField
	var warnings []string

	for _, name := range selected {
		doc, err := ctx.Doc.Chart(name)
		if err != nil {
			return err
		}
		spec, err := doc.Build(ctx.Schema)
		if err != nil {
			return err
		}
		logger.Debug("built chart IR", "chart", name, "spec", spew.Sdump(spec))

		result, err := translate.Translate(spec, grammar)
		if err != nil {
			return fmt.Errorf("chart %q: %w", name, err)
		}

		outPath := filepath.Join(output, fmt.Sprintf("%s_%s.yaml", name, grammar))
		if err := writeResult(outPath, result); err != nil {
			return fmt.Errorf("chart %q: %w", name, err)
		}

		fields = append(fields, prompts.ResultField{Label: name, Value: outPath})
		for _, d := range result.Diagnostics {
			warnings = append(warnings, fmt.Sprintf("%s: %s", name, d))
		}
	}

	prompts.PrintResult(fields, fmt.Sprintf("Translated %d chart(s) to %s", len(fields), grammar))
	for _, w := range warnings {
		prompts.PrintWarning(w)
	}

	return nil
}

func writeResult(path string, result *translate.Result) error {
	f, err := os.Create(path) //nolint:gosec // path is derived from output flag
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}
