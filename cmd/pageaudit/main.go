package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pageaudit"
	"github.com/fwojciec/pageaudit/audit"
	"github.com/fwojciec/pageaudit/fs"
	"github.com/fwojciec/pageaudit/git"
	"github.com/fwojciec/pageaudit/goquery"
	"github.com/fwojciec/pageaudit/html"
	"github.com/fwojciec/pageaudit/markdown"
	pslog "github.com/fwojciec/pageaudit/slog"
	"github.com/fwojciec/pageaudit/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding audit history. Opened only when a database
	// path is configured.
	DB *sqlite.DB

	// Revisions replaces the git lookup when set. Used by end-to-end tests.
	Revisions pageaudit.RevisionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageaudit"),
		kong.Description("Audit static HTML pages for ad-network readiness"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pageaudit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	revisions := m.Revisions
	if revisions == nil {
		revisions = git.NewRevisionService()
	}
	if logger != nil {
		revisions = pslog.NewLoggingRevisionService(revisions, logger)
	}

	var auditor pageaudit.Auditor = &audit.Auditor{
		Parser:        html.NewParser(),
		Revisions:     revisions,
		Accessibility: goquery.NewChecker(),
		Flatten: pageaudit.FlattenOptions{
			PreserveLineBreaks: cli.Audit.PreserveBreaks || cli.Batch.PreserveBreaks,
		},
	}
	if logger != nil {
		auditor = pslog.NewLoggingAuditor(auditor, logger)
	}

	summary := markdown.NewRenderer()
	deps.Loader = fs.NewLoader()
	deps.Auditor = auditor
	deps.NewWriter = func(dir string) pageaudit.ArtifactWriter {
		var w pageaudit.ArtifactWriter = fs.NewWriter(dir, summary)
		if logger != nil {
			w = pslog.NewLoggingArtifactWriter(w, logger)
		}
		return w
	}

	if cli.DB != "" {
		if dir := filepath.Dir(cli.DB); dir != "." {
			_ = os.MkdirAll(dir, 0755)
		}
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGEAUDIT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.History = sqlite.NewAuditService(m.DB)
	}

	return kongCtx.Run(deps)
}

// errorText returns the user-facing text of err. Application errors show
// their message; anything else is shown in full.
func errorText(err error) string {
	if pageaudit.ErrorCode(err) == pageaudit.EINTERNAL {
		return err.Error()
	}
	return pageaudit.ErrorMessage(err)
}
