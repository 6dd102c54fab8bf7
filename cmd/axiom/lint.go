package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dshills/axiom/internal/catalog"
	"github.com/dshills/axiom/internal/lint"
	"github.com/dshills/axiom/internal/review"
	"github.com/dshills/axiom/internal/schema"
	"github.com/dshills/axiom/internal/watch"
)

// lintFlags holds the parsed flags for the lint command.
type lintFlags struct {
	builtin           bool
	failOn            string
	severityThreshold string
	watch             bool
}

func newLintCmd(a *app) *cobra.Command {
	var flags lintFlags
	cmd := &cobra.Command{
		Use:   "lint [pattern...]",
		Short: "Validate catalog files and report defects",
		Long: "Lint checks catalog files (YAML or JSON, as written by export) for structural errors, " +
			"broken references and weak content. Patterns support ** globs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("fail-on") {
				flags.failOn = a.cfg.Lint.FailOn
			}
			if !cmd.Flags().Changed("severity-threshold") {
				flags.severityThreshold = a.cfg.Lint.SeverityThreshold
			}
			return runLint(cmd.Context(), a, args, flags)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&flags.builtin, "builtin", false, "Also lint the compiled-in catalog")
	f.StringVar(&flags.failOn, "fail-on", "", "Exit 2 if verdict >= this level (VALID_WITH_GAPS or INVALID)")
	f.StringVar(&flags.severityThreshold, "severity-threshold", "info", "Minimum severity to emit: info, warn, or critical")
	f.BoolVar(&flags.watch, "watch", false, "Re-run when matching files change, until interrupted")
	return cmd
}

// validateLintFlags returns an error if any flag value is invalid.
func validateLintFlags(patterns []string, flags lintFlags) error {
	if len(patterns) == 0 && !flags.builtin {
		return fmt.Errorf("give at least one file pattern or --builtin")
	}
	if flags.watch && len(patterns) == 0 {
		return fmt.Errorf("--watch needs at least one file pattern")
	}
	if flags.failOn != "" {
		switch schema.Verdict(flags.failOn) {
		case schema.VerdictValidWithGaps, schema.VerdictInvalid:
		default:
			return fmt.Errorf("--fail-on must be VALID_WITH_GAPS or INVALID, got %q", flags.failOn)
		}
	}
	if _, ok := review.ParseSeverity(flags.severityThreshold); !ok {
		return fmt.Errorf("--severity-threshold must be info, warn, or critical, got %q", flags.severityThreshold)
	}
	return nil
}

func runLint(ctx context.Context, a *app, patterns []string, flags lintFlags) error {
	if err := validateLintFlags(patterns, flags); err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}

	report, err := lintOnce(a, patterns, flags)
	if err != nil {
		return err
	}
	if err := a.emitLint(report); err != nil {
		return err
	}

	if flags.watch {
		return watchLint(ctx, a, patterns, flags)
	}

	if flags.failOn != "" {
		threshold := schema.Verdict(flags.failOn)
		if schema.VerdictOrdinal(report.Summary.Verdict) >= schema.VerdictOrdinal(threshold) {
			return codeError(exitFailOn, "verdict %s meets or exceeds --fail-on threshold %s", report.Summary.Verdict, threshold)
		}
	}
	return nil
}

// lintOnce expands patterns, lints every file and the optional builtin
// catalog, and builds the filtered report.
func lintOnce(a *app, patterns []string, flags lintFlags) (*schema.LintReport, error) {
	var paths []string
	if len(patterns) > 0 {
		expanded, err := lint.Expand(patterns)
		if err != nil {
			return nil, codeError(exitInput, "expanding patterns: %s", err)
		}
		paths = expanded
	}
	a.logger.Debug("linting", "files", len(paths), "builtin", flags.builtin)

	linter := lint.New(a.logger)
	res, err := linter.LintFiles(paths)
	if err != nil {
		return nil, codeError(exitInput, "loading catalog: %s", err)
	}
	if flags.builtin {
		res.Merge(linter.LintStore(catalog.Default()))
	}

	threshold, _ := review.ParseSeverity(flags.severityThreshold)
	input := schema.LintInput{Patterns: patterns, Builtin: flags.builtin}
	if input.Patterns == nil {
		input.Patterns = []string{}
	}
	return lint.BuildReport(res, input, threshold, version), nil
}

func (a *app) emitLint(report *schema.LintReport) error {
	r, err := a.renderer()
	if err != nil {
		return err
	}
	out, err := r.Lint(report)
	if err != nil {
		return codeError(exitInput, "rendering output: %s", err)
	}
	return a.write(out)
}

// watchLint re-runs lint on every debounced batch of changes until SIGINT
// or SIGTERM. Errors during a re-run are logged and watching continues.
func watchLint(ctx context.Context, a *app, patterns []string, flags lintFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	include := make([]string, 0, len(patterns))
	for _, p := range patterns {
		abs, err := filepath.Abs(p)
		if err != nil {
			return codeError(exitInput, "resolving pattern %s: %s", p, err)
		}
		include = append(include, abs)
	}
	filter := watch.NewPatternFilter(include, []string{"*.swp", "*~", ".#*"})

	w, err := watch.NewFSWatcher(filter, a.cfg.Lint.Debounce, func(changed []string) {
		a.logger.Info("change detected, re-linting", "files", changed)
		report, err := lintOnce(a, patterns, flags)
		if err != nil {
			a.logger.Error("lint failed", "error", err)
			return
		}
		if err := a.emitLint(report); err != nil {
			a.logger.Error("writing report failed", "error", err)
		}
	}, a.logger)
	if err != nil {
		return codeError(exitInput, "starting watcher: %s", err)
	}
	defer w.Close()

	if err := watchPatterns(w, include); err != nil {
		return codeError(exitInput, "%s", err)
	}
	if paths, err := lint.Expand(patterns); err == nil {
		if err := w.WatchFiles(paths); err != nil {
			return codeError(exitInput, "%s", err)
		}
	}

	a.logger.Info("watching for changes", "patterns", patterns)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return codeError(exitInput, "%s", err)
	}
	return nil
}

// watchPatterns watches the fixed base directory of each pattern. Patterns
// that can match below their base, such as "catalogs/**/*.yaml", watch the
// whole tree.
func watchPatterns(w *watch.FSWatcher, include []string) error {
	for _, p := range include {
		base, rest := doublestar.SplitPattern(filepath.ToSlash(p))
		dir := filepath.FromSlash(base)
		var err error
		if strings.Contains(rest, "/") || strings.Contains(rest, "**") {
			err = w.WatchTree(dir)
		} else {
			err = w.WatchDir(dir)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
