// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Plot Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plotlabs/plotc/internal/chartfile"
	"github.com/plotlabs/plotc/internal/config"
	"github.com/plotlabs/plotc/internal/dataset"
)

var (
	// ErrNotInitialized indicates no plotc.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a plotc project (plotc.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrChartsNotFound indicates the chart document referenced by config doesn't exist.
	ErrChartsNotFound = errors.New("chart document not found")

	// ErrInvalidCharts indicates the chart document exists but couldn't be parsed.
	ErrInvalidCharts = errors.New("invalid chart document")
)

// ConfigFileName is the name of the plotc configuration file.
const ConfigFileName = "plotc.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration, the parsed chart
// document, and the dataset schema built from it.
type Context struct {
	Config *config.Config
	Doc    *chartfile.Document
	Schema *dataset.Schema
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the plotc Context stored in it.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	chartsPath := cfg.ChartsFile()
	if !filepath.IsAbs(chartsPath) {
		chartsPath = filepath.Join(cwd, chartsPath)
	}
	if _, statErr := os.Stat(chartsPath); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("%w: %s", ErrChartsNotFound, chartsPath)
	}

	doc, err := chartfile.Load(chartsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharts, err)
	}

	schema, err := doc.Schema()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCharts, err)
	}

	return context.WithValue(ctx, contextKey{}, &Context{
		Config: cfg,
		Doc:    doc,
		Schema: schema,
	}), nil
}

// From extracts the plotc Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	c, _ := ctx.Value(contextKey{}).(*Context)
	return c
}
