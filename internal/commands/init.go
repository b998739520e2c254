// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plotlabs/plotc/internal/config"
	"github.com/plotlabs/plotc/internal/prompts"
	"github.com/plotlabs/plotc/internal/session"
	"github.com/plotlabs/plotc/internal/translate"
)

// starterCharts is the chart document written by init: a schema and one
// working bar chart to edit from.
const starterCharts = `version: 1
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
`

type initOptions struct {
	charts         string
	grammar        string
	createCharts   bool
	nonInteractive bool
}

func registerInitCmd(parent *cobra.Command) {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new plotc project",
		Long: `Initialize a new plotc project with a plotc.yaml configuration file
and, optionally, a starter chart document.`,
		Example: `  # Interactive mode
  plotc init

  # Non-interactive
  plotc init --charts charts.yaml --grammar layered --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.charts, "charts", "c", config.DefaultChartsFile, "Path to the chart document")
	cmd.Flags().StringVarP(&opts.grammar, "grammar", "g", "", "Default target grammar")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	parent.AddCommand(cmd)
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("plotc.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.grammar != "" {
			if _, err := translate.Get(opts.grammar); err != nil {
				return err
			}
		}
		opts.createCharts = true
	} else {
		if err := prompts.RunInitForm(&opts.charts, &opts.grammar, &opts.createCharts, translate.Available()); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Charts:  opts.charts,
		Grammar: opts.grammar,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	chartsPath := opts.charts
	if !filepath.IsAbs(chartsPath) {
		chartsPath = filepath.Join(cwd, chartsPath)
	}
	if opts.createCharts {
		if _, err := os.Stat(chartsPath); err == nil {
			return fmt.Errorf("chart document already exists: %s", opts.charts)
		}
		if err := os.MkdirAll(filepath.Dir(chartsPath), 0o750); err != nil {
			return fmt.Errorf("failed to create chart document directory: %w", err)
		}
		if err := os.WriteFile(chartsPath, []byte(starterCharts), 0o600); err != nil {
			return fmt.Errorf("failed to write chart document: %w", err)
		}
	} else if _, err := os.Stat(chartsPath); os.IsNotExist(err) {
		return fmt.Errorf("chart document not found: %s", opts.charts)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Charts", Value: opts.charts},
	}, "Initialization completed")

	return nil
}
