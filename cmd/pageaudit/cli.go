package main

import (
	"context"
	"io"

	"github.com/fwojciec/pageaudit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Loader  pageaudit.PageLoader
	Auditor pageaudit.Auditor

	// NewWriter returns an artifact writer for an output directory.
	NewWriter func(dir string) pageaudit.ArtifactWriter

	// History is nil when no database is configured.
	History pageaudit.AuditService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log each step to stderr"`
	DB      string `name:"db" env:"PAGEAUDIT_DB" help:"SQLite database recording audit history"`

	Audit   AuditCmd   `cmd:"" help:"Audit a single HTML page"`
	Batch   BatchCmd   `cmd:"" help:"Audit every page listed in a YAML manifest"`
	History HistoryCmd `cmd:"" help:"List recorded audits, newest first"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	Input          string `required:"" help:"Path to HTML file"`
	Slug           string `required:"" help:"Slug prefix for output files"`
	Output         string `default:"docs/audits" env:"PAGEAUDIT_OUTPUT" help:"Output directory"`
	DefaultBase    string `default:"https://thetankguide.com/" env:"PAGEAUDIT_DEFAULT_BASE" help:"Fallback absolute base URL when canonical and og:url are missing"`
	PreserveBreaks bool   `help:"Keep <br> line breaks in flattened text blocks"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Manifest       string `arg:"" help:"YAML manifest listing pages"`
	Output         string `default:"docs/audits" env:"PAGEAUDIT_OUTPUT" help:"Output directory when the manifest sets none"`
	DefaultBase    string `default:"https://thetankguide.com/" env:"PAGEAUDIT_DEFAULT_BASE" help:"Fallback base URL when the manifest sets none"`
	Concurrency    int    `short:"c" default:"4" help:"Pages audited at once"`
	PreserveBreaks bool   `help:"Keep <br> line breaks in flattened text blocks"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Slug  string `arg:"" optional:"" help:"Only show audits of this page"`
	Limit int    `short:"n" default:"20" help:"Maximum number of audits to show"`
}
