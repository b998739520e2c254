// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(chartsPath, grammar *string, createCharts *bool, grammars []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to chart document").
				Placeholder("charts.yaml").
				Validate(requiredValidator("chart document path")).
				Value(chartsPath),
		),
		huh.NewGroup(
			RunGrammarSelect(grammar, grammars).
				Title("Default target grammar"),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create a starter chart document?").
				Affirmative("Yes").
				Negative("No").
				Value(createCharts),
		),
	).WithTheme(Theme()).Run()
}
