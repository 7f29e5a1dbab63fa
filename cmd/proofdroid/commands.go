package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wbhart/proofdroid/pkg/logic"
	"github.com/wbhart/proofdroid/pkg/proof"
)

type rootFlags struct {
	config    string
	format    string
	color     string
	logLevel  string
	iff       string
	operators string
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     *app
	)
	root := &cobra.Command{
		Use:          "proofdroid",
		Short:        "Render problem sets and apply inference rules to them",
		Version:      logic.GetVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			a, err = newApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return err
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "config file (default ~/.proofdroid.yaml)")
	pf.StringVar(&flags.format, "format", "", "output notation: identifier, unicode, polish or mathjax")
	pf.StringVar(&flags.color, "color", "", "color output: auto, always or never")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&flags.iff, "iff", "", "biconditional reading for modus ponens: reject, forward or nested-right")
	pf.StringVar(&flags.operators, "operators", "", "YAML operator table overlaid on the default one")

	getApp := func() *app { return a }
	root.AddCommand(
		newRenderCmd(getApp),
		newProveCmd(getApp),
		newSearchCmd(getApp),
		newListCmd(getApp),
		newFetchCmd(getApp),
		newVersionCmd(),
	)
	return root
}

func resolveConfig(cmd *cobra.Command, flags rootFlags) (Config, error) {
	path, required := flags.config, true
	if path == "" {
		path, required = defaultConfigPath(), false
	}
	cfg, err := LoadConfig(path, required)
	if err != nil {
		return Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("format") {
		cfg.Format = flags.format
	}
	if f.Changed("color") {
		cfg.Color = flags.color
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if f.Changed("iff") {
		cfg.Iff = flags.iff
	}
	if f.Changed("operators") {
		cfg.Operators = flags.operators
	}
	return cfg, nil
}

func newRenderCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Print the hypotheses and targets of a problem set (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			ps, err := readProblemSet(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			c := a.newContext()
			c.Load(ps)
			return a.writeLines(cmd.OutOrStdout(), c.Lines())
		},
	}
}

func newProveCmd(getApp func() *app) *cobra.Command {
	var steps []string
	cmd := &cobra.Command{
		Use:   "prove FILE",
		Short: "Apply inference steps to a problem set and print the proof",
		Long: `Apply inference steps to a problem set and print the proof.

Each --step names a rule and the lines it uses:

  spec I     strip the universal quantifier of line I
  mp I J     modus ponens with implication I and premise J
  neg I      push the negation of line I one level inwards`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			ps, err := readProblemSet(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			c := a.newContext()
			c.Load(ps)
			for _, step := range steps {
				if _, err := applyStep(c, step, a.reading); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if err := a.writeLines(out, c.Lines()); err != nil {
				return err
			}
			if c.Done() {
				_, err = fmt.Fprintln(out, "all targets proved")
			}
			return err
		},
	}
	cmd.Flags().StringArrayVar(&steps, "step", nil, "inference step, e.g. \"mp 3 1\" (repeatable)")
	return cmd
}

var errBadStep = errors.New("bad step")

// applyStep parses and applies one step such as "mp 3 1".
func applyStep(c *proof.Context, step string, reading logic.IffReading) (int, error) {
	fields := strings.Fields(step)
	if len(fields) == 0 {
		return -1, fmt.Errorf("%w: empty step", errBadStep)
	}
	idx := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return -1, fmt.Errorf("%w: %q: line %q is not a number", errBadStep, step, f)
		}
		idx[i] = n
	}
	arity := map[string]int{"spec": 1, "mp": 2, "neg": 1}
	want, ok := arity[fields[0]]
	if !ok {
		return -1, fmt.Errorf("%w: %q: unknown rule %q", errBadStep, step, fields[0])
	}
	if len(idx) != want {
		return -1, fmt.Errorf("%w: %q: %s takes %d line(s)", errBadStep, step, fields[0], want)
	}

	var (
		line int
		err  error
	)
	switch fields[0] {
	case "spec":
		line, err = c.ApplySpecification(idx[0])
	case "mp":
		line, err = c.ApplyModusPonens(idx[0], idx[1], reading)
	case "neg":
		line, err = c.ApplyNegation(idx[0])
	}
	if err != nil {
		return -1, fmt.Errorf("step %q: %w", step, err)
	}
	return line, nil
}

func newSearchCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search FILE",
		Short: "List every conclusion modus ponens can draw from a problem set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()
			ps, err := readProblemSet(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			c := a.newContext()
			c.Load(ps)
			found, err := c.SearchModusPonens(cmd.Context(), a.reading)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, cand := range found {
				s, err := a.render(cand.Formula)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "mp %d %d  %s  %s\n", cand.Implication, cand.Premise, s, assumptions(cand.Assumptions)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newListCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list DIR",
		Short: "List the problem sets in a directory of the problem repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := getApp().lister().List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFetchCmd(getApp func() *app) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "fetch DIR [NAME...]",
		Short: "Download problem sets; with no names, every listed one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := getApp().lister()
			names := args[1:]
			if len(names) == 0 {
				var err error
				if names, err = l.List(cmd.Context(), args[0]); err != nil {
					return err
				}
			}
			files, err := l.Fetch(cmd.Context(), args[0], names...)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			for _, name := range names {
				dst := filepath.Join(outDir, filepath.Base(name))
				if err := os.WriteFile(dst, files[name], 0o644); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), dst)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the files to")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := logic.GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "proofdroid %s (%s)\n", info.Version, info.GoVersion)
		},
	}
}
