package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wbhart/proofdroid/pkg/logic"
	"github.com/wbhart/proofdroid/pkg/notation"
	"github.com/wbhart/proofdroid/pkg/problems"
	"github.com/wbhart/proofdroid/pkg/proof"
)

// app carries what every command needs once flags and config are resolved.
type app struct {
	cfg     Config
	logger  *slog.Logger
	printer *notation.Printer
	format  notation.Format
	reading logic.IffReading
}

func newApp(cfg Config, stdout, stderr io.Writer) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := parseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	table := notation.DefaultTable()
	if cfg.Operators != "" {
		f, err := os.Open(cfg.Operators)
		if err != nil {
			return nil, fmt.Errorf("failed to open the operator table: %w", err)
		}
		defer f.Close()
		user, err := notation.LoadTable(f)
		if err != nil {
			return nil, err
		}
		table = table.Merge(user)
		logger.Debug("cli: operator table loaded", slog.String("path", cfg.Operators), slog.Int("entries", len(user)))
	}

	var opts []notation.Option
	if useColor(cfg.Color, stdout) {
		color.NoColor = false
		opts = append(opts, notation.WithColors(notation.NewColors()))
	}

	format, _ := notation.ParseFormat(cfg.Format)
	reading, _ := logic.ParseIffReading(cfg.Iff)
	return &app{
		cfg:     cfg,
		logger:  logger,
		printer: notation.NewPrinter(table, opts...),
		format:  format,
		reading: reading,
	}, nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) lister() *problems.Lister {
	return &problems.Lister{
		BaseURL:   a.cfg.Listing.BaseURL,
		Owner:     a.cfg.Listing.Owner,
		Repo:      a.cfg.Listing.Repo,
		Extension: a.cfg.Listing.Extension,
		Limit:     a.cfg.Listing.Limit,
		Logger:    a.logger,
	}
}

func (a *app) newContext() *proof.Context {
	return proof.NewContext(proof.WithLogger(a.logger), proof.WithWorkers(a.cfg.Workers))
}

func (a *app) render(n logic.Node) (string, error) {
	return a.printer.Format(n, a.format)
}

// readProblemSet reads a problem set from path, or from stdin for "-".
func readProblemSet(path string, stdin io.Reader) (proof.ProblemSet, error) {
	if path == "-" {
		return proof.ReadProblemSet(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return proof.ProblemSet{}, err
	}
	defer f.Close()
	return proof.ReadProblemSet(f)
}

// writeLines prints proof lines as
//
//	  3  P(c) → Q(c)    [specification 0] {0}
func (a *app) writeLines(w io.Writer, lines []proof.Line) error {
	for i, l := range lines {
		s, err := a.render(l.Formula)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		status := ""
		switch {
		case l.Target && l.Proved:
			status = "  (proved)"
		case l.Target:
			status = "  (open)"
		}
		if _, err := fmt.Fprintf(w, "%3d  %s  [%s] %s%s\n", i, s, justification(l.Justification),
			assumptions(l.Assumptions), status); err != nil {
			return err
		}
	}
	return nil
}

func justification(j proof.Justification) string {
	if len(j.Args) == 0 {
		return j.Rule
	}
	args := make([]string, len(j.Args))
	for i, a := range j.Args {
		args[i] = fmt.Sprint(a)
	}
	return j.Rule + " " + strings.Join(args, ",")
}

func assumptions(as []int) string {
	parts := make([]string, len(as))
	for i, a := range as {
		parts[i] = fmt.Sprint(a)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
