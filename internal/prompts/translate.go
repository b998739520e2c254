// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

package prompts

import "github.com/charmbracelet/huh"

// RunGrammarSelect returns a select field for choosing the target grammar.
func RunGrammarSelect(value *string, grammars []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(grammars))
	for i, g := range grammars {
		options[i] = huh.NewOption(g, g)
	}
	return huh.NewSelect[string]().
		Title("Target grammar").
		Options(options...).
		Value(value)
}

// RunChartSelect returns a multi-select field for choosing charts to translate.
func RunChartSelect(value *[]string, charts []string) *huh.MultiSelect[string] {
	options := make([]huh.Option[string], len(charts))
	for i, c := range charts {
		options[i] = huh.NewOption(c, c)
	}
	return huh.NewMultiSelect[string]().
		Title("Charts to translate").
		Options(options...).
		Value(value)
}

// RunTranslateForm runs the interactive form for the charts translate
// command, filling in whichever of the chart and grammar selections the
// caller left empty.
func RunTranslateForm(charts *[]string, grammar *string, chartNames, grammars []string) error {
	var groups []*huh.Group
	if len(*charts) == 0 {
		groups = append(groups, huh.NewGroup(RunChartSelect(charts, chartNames)))
	}
	if *grammar == "" {
		groups = append(groups, huh.NewGroup(RunGrammarSelect(grammar, grammars)))
	}
	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
