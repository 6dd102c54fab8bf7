package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/axiom/internal/config"
	"github.com/dshills/axiom/internal/contrast"
	"github.com/dshills/axiom/internal/query"
	"github.com/dshills/axiom/internal/render"
	"github.com/dshills/axiom/internal/schema"
	"github.com/dshills/axiom/internal/site"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 1
	exitFailOn   = 2
	exitInput    = 3
	exitNotFound = 4
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	format     string
	out        string
	configPath string
	baseURL    string
	color      string
	verbose    bool
}

// app is the state resolved once per invocation: flags layered over config.
type app struct {
	flags  globalFlags
	cfg    *config.Config
	logger *slog.Logger
	engine *query.Engine
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, now: time.Now}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(stderr, "Error:", ee.msg)
			return ee.code
		}
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
	return exitOK
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "axiom",
		Short:         "Browse and validate a catalog of UI design rules",
		Long:          "Axiom is a catalog of UI design rules. Search it, read a rule's deep dive, publish site metadata and lint catalog files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.format, "format", "", "Output format: json, yaml, md or term (default from config, else json)")
	pf.StringVar(&a.flags.out, "out", "", "Write output to file instead of stdout")
	pf.StringVar(&a.flags.configPath, "config", "", "Config file layered over user and project config")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "Site root used for links, metadata and sitemaps")
	pf.StringVar(&a.flags.color, "color", "", "Term colors: auto, always or never")
	pf.BoolVar(&a.flags.verbose, "verbose", false, "Log processing steps to stderr")

	root.AddCommand(
		newCategoriesCmd(a),
		newRulesCmd(a),
		newShowCmd(a),
		newMetaCmd(a),
		newLinkCmd(a),
		newSitemapCmd(a),
		newExportCmd(a),
		newLintCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the engine.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = newLogger(a.stderr, level)

	cfg, err := config.NewLoader(a.logger).Load(a.flags.configPath)
	if err != nil {
		return codeError(exitInput, "loading config: %s", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = a.flags.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.flags.color
	}
	if flags.Changed("base-url") {
		cfg.Site.BaseURL = strings.TrimRight(a.flags.baseURL, "/")
	}
	if a.flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return codeError(exitInput, "invalid flags: %s", err)
	}
	a.cfg = cfg

	if !a.flags.verbose {
		a.logger = newLogger(a.stderr, parseLevel(cfg.Log.Level))
	}
	a.engine = query.NewEngine(nil, query.WithBaseURL(cfg.Site.BaseURL))
	a.logger.Debug("configured", "format", cfg.Output.Format, "base_url", cfg.Site.BaseURL)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// renderer returns the renderer for the configured format.
func (a *app) renderer() (render.Renderer, error) {
	r, err := render.NewRenderer(a.cfg.Output.Format, render.Options{Color: a.cfg.Output.Color, Output: a.destination()})
	if err != nil {
		return nil, codeError(exitInput, "invalid format: %s", err)
	}
	return r, nil
}

// destination is the writer rendered output ends up on, used for terminal
// color detection. A file named by --out is never a terminal.
func (a *app) destination() io.Writer {
	if a.flags.out != "" {
		return io.Discard
	}
	return a.stdout
}

// dataFormat returns the configured format for commands that only emit
// data documents.
func (a *app) dataFormat() (string, error) {
	switch a.cfg.Output.Format {
	case "json", "yaml":
		return a.cfg.Output.Format, nil
	}
	return "", codeError(exitInput, "--format must be json or yaml for this command, got %q", a.cfg.Output.Format)
}

// write sends output to --out or stdout. Stdout output always ends with a
// newline for terminal friendliness.
func (a *app) write(data []byte) error {
	if a.flags.out != "" {
		if err := os.WriteFile(a.flags.out, data, 0o644); err != nil {
			return codeError(exitInput, "writing output file: %s", err)
		}
		a.logger.Debug("output written", "path", a.flags.out, "bytes", len(data))
		return nil
	}
	if _, err := a.stdout.Write(data); err != nil {
		return codeError(exitInput, "writing output: %s", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(a.stdout)
	}
	return nil
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List rule categories with icons and rule counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer()
			if err != nil {
				return err
			}
			out, err := r.Categories(&schema.CategoryList{
				Tool:       "axiom",
				Version:    version,
				Categories: a.engine.Summaries(),
			})
			if err != nil {
				return codeError(exitInput, "rendering output: %s", err)
			}
			return a.write(out)
		},
	}
}

// viewFlags selects the optional parts of a rule view.
type viewFlags struct {
	contrast bool
	preview  bool
}

func (v viewFlags) options() query.ViewOptions {
	return query.ViewOptions{Contrast: v.contrast, Previews: v.preview}
}

func (v *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&v.contrast, "contrast", false, "Include the do/don't character diff")
	cmd.Flags().BoolVar(&v.preview, "preview", false, "Include do/don't illustrations")
}

func newRulesCmd(a *app) *cobra.Command {
	var (
		ruleID string
		state  string
		view   viewFlags
	)
	cmd := &cobra.Command{
		Use:   "rules [query...]",
		Short: "Search rules and group matches by category",
		Long: "Search rules by title, description and tags. Words are joined into one query. " +
			"--state accepts a shared link or its query string (q=...&rule=...); arguments and --rule override it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var st site.State
			if state != "" {
				parsed, err := site.ParseState(state)
				if err != nil {
					return codeError(exitInput, "invalid --state: %s", err)
				}
				st = parsed
			}
			if len(args) > 0 {
				st.Query = strings.Join(args, " ")
			}
			if ruleID != "" {
				st.RuleID = ruleID
			}

			res := a.engine.Resolve(st, view.options())
			res.Tool = "axiom"
			res.Version = version
			if st.RuleID != "" && res.Selected == nil {
				a.logger.Warn("selected rule not found", "rule", st.RuleID)
			}
			a.logger.Debug("rules resolved", "query", st.Query, "total", res.Total, "groups", len(res.Groups))

			r, err := a.renderer()
			if err != nil {
				return err
			}
			out, err := r.Results(&res)
			if err != nil {
				return codeError(exitInput, "rendering output: %s", err)
			}
			return a.write(out)
		},
	}
	cmd.Flags().StringVar(&ruleID, "rule", "", "Select a rule to expand with its deep dive")
	cmd.Flags().StringVar(&state, "state", "", "Restore a shared link or query string")
	view.register(cmd)
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var (
		view     viewFlags
		patchOut string
	)
	cmd := &cobra.Command{
		Use:   "show <rule-id>",
		Short: "Show one rule with its deep dive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, ok := a.engine.FindRuleByID(args[0])
			if !ok {
				return codeError(exitNotFound, "rule %q not found", args[0])
			}
			v := a.engine.View(rule, view.options())
			if v.Contrast != nil {
				a.logger.Debug("contrast", "rule", rule.ID, "similarity", contrast.Similarity(v.Contrast))
			}

			if patchOut != "" {
				a.logger.Debug("writing patch", "path", patchOut)
				if err := os.WriteFile(patchOut, []byte(contrast.Patch(rule.Do, rule.Dont)), 0o644); err != nil {
					a.logger.Warn("patch write failed", "path", patchOut, "error", err)
				}
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			out, err := r.Rule(&v)
			if err != nil {
				return codeError(exitInput, "rendering output: %s", err)
			}
			return a.write(out)
		},
	}
	view.register(cmd)
	cmd.Flags().StringVar(&patchOut, "patch-out", "", "Write the do-to-don't edit in diff-match-patch format to this file")
	return cmd
}

func newMetaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "meta <rule-id>",
		Short: "Print page metadata and JSON-LD for a rule page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.dataFormat()
			if err != nil {
				return err
			}
			rule, ok := a.engine.FindRuleByID(args[0])
			if !ok {
				return codeError(exitNotFound, "rule %q not found", args[0])
			}
			category := ""
			if c, ok := a.engine.Category(rule.Category); ok {
				category = c.Name
			}
			out, err := render.Data(format, site.Meta(rule, category, a.cfg.Site.BaseURL))
			if err != nil {
				return codeError(exitInput, "rendering output: %s", err)
			}
			return a.write(out)
		},
	}
}

func newLinkCmd(a *app) *cobra.Command {
	var st site.State
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print a shareable link for a search and selected rule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if st.RuleID != "" {
				if _, ok := a.engine.FindRuleByID(st.RuleID); !ok {
					return codeError(exitNotFound, "rule %q not found", st.RuleID)
				}
			}
			return a.write([]byte(site.Link(a.cfg.Site.BaseURL, st) + "\n"))
		},
	}
	cmd.Flags().StringVar(&st.Query, "query", "", "Search text")
	cmd.Flags().StringVar(&st.RuleID, "rule", "", "Selected rule id")
	return cmd
}

func newSitemapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sitemap",
		Short: "Generate sitemap XML for the catalog site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := site.Sitemap(a.cfg.Site.BaseURL, a.engine.ListRules(), a.now())
			if err != nil {
				return codeError(exitInput, "rendering sitemap: %s", err)
			}
			return a.write(out)
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the compiled-in catalog as a catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.dataFormat()
			if err != nil {
				return err
			}
			out, err := render.Data(format, schema.CatalogFile{
				Categories: a.engine.ListCategories(),
				Rules:      a.engine.ListRules(),
			})
			if err != nil {
				return codeError(exitInput, "rendering output: %s", err)
			}
			return a.write(out)
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and write axiom configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a file (default ./" + config.ProjectConfigFile + ")",
		Long: "Write the configuration in effect, after config files and flags are applied, " +
			"as YAML. The result is picked up as project config when named " + config.ProjectConfigFile + ".",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ProjectConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return codeError(exitInput, "%s already exists: use --force to overwrite", path)
			}
			if err := a.cfg.SaveToFile(path); err != nil {
				return codeError(exitInput, "writing config: %s", err)
			}
			a.logger.Info("config written", "path", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
