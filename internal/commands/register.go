// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/plotlabs/plotc/internal/session"

	// Import grammars to auto-register their capability tables.
	_ "github.com/plotlabs/plotc/internal/translate/layered"
	_ "github.com/plotlabs/plotc/internal/translate/parametric"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plotc",
		Short: "Compile chart specs into target grammar parameters",
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	registerInitCmd(rootCmd)
	registerChartsCmd(rootCmd)
	registerGrammarsCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerChartsCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Work with the project's chart definitions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applyLogger(cmd)
			return session.PreRunLoad(cmd, args)
		},
	}

	registerChartsListCmd(cmd)
	registerChartsDescribeCmd(cmd)
	registerChartsTranslateCmd(cmd)

	parent.AddCommand(cmd)
}
