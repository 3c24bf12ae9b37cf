package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surveyform/internal/config"
	"github.com/goliatone/go-surveyform/internal/logger"
	"github.com/goliatone/go-surveyform/internal/printer"
	"github.com/goliatone/go-surveyform/pkg/renderers/tui"
)

var versionString = "dev"

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	versionString = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

// App carries the process streams and the collaborators tests replace.
type App struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Driver overrides the survey/v2 prompt driver.
	Driver tui.PromptDriver
	// IsTerminal overrides the terminal check of the tui mount.
	IsTerminal func(fd int) bool
}

// DefaultApp wires the process standard streams.
func DefaultApp() *App {
	return &App{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// flagValues holds every root and persistent flag.
type flagValues struct {
	configPath   string
	renderer     string
	mount        string
	page         string
	output       string
	themeVariant string
	logLevel     string
	logFormat    string
	noColor      bool
	confirm      bool
}

// runtime is resolved once per invocation in PersistentPreRunE.
type runtime struct {
	app     *App
	flags   flagValues
	cfg     config.Config
	printer *printer.Printer
	logger  *slog.Logger
}

// Execute runs the root command on the process streams.
func Execute(ctx context.Context) error {
	app := DefaultApp()
	cmd := NewRootCommand(app)
	err := cmd.ExecuteContext(ctx)
	if err != nil && !printer.IsReported(err) {
		// flag and argument errors never reach a command's printer
		_ = printer.New(app.Out, app.Err).Error("Command failed", err.Error(), []string{"Run 'surveyform --help' for usage"})
	}
	return err
}

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	if app == nil {
		app = DefaultApp()
	}
	rt := &runtime{app: app}

	root := &cobra.Command{
		Use:   "surveyform",
		Short: "Render and submit the Project Requirements Survey",
		Long: `surveyform renders the Project Requirements Survey and validates
submissions against its required and pattern rules.

The HTML renderer mounts the form into the element with the configured id of a
host page. The terminal renderer prompts each field on the controlling
terminal and re-prompts invalid fields until the submission succeeds.`,
		Version:       versionString,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.runMount(cmd.Context())
		},
	}
	root.SetIn(app.In)
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	persistent := root.PersistentFlags()
	persistent.StringVar(&rt.flags.configPath, "config", "", "path to a YAML config file (default ./"+config.DefaultPath+" when present)")
	persistent.StringVar(&rt.flags.logLevel, "log-level", "", "log level: debug, info, warn or error")
	persistent.StringVar(&rt.flags.logFormat, "log-format", "", "log format: text, json or pretty")
	persistent.BoolVar(&rt.flags.noColor, "no-color", false, "disable coloured output")

	flags := root.Flags()
	flags.StringVar(&rt.flags.renderer, "renderer", "", "renderer to mount: tui or vanilla")
	flags.StringVar(&rt.flags.mount, "mount", "", "id of the mount element in the host page")
	flags.StringVar(&rt.flags.page, "page", "", "host page HTML file (a built-in page is used when empty)")
	flags.StringVarP(&rt.flags.output, "output", "o", "", "output file for the vanilla renderer (stdout if empty)")
	flags.StringVar(&rt.flags.themeVariant, "theme-variant", "", "theme variant: light or dark")
	flags.BoolVar(&rt.flags.confirm, "confirm", false, "ask for confirmation before submitting in the terminal")

	root.AddCommand(
		newValidateCommand(rt),
		newSchemaCommand(rt),
		newContractCommand(rt),
	)
	return root
}

// resolve loads the config file, applies flag overrides and sets up logging
// and terminal output.
func (rt *runtime) resolve(cmd *cobra.Command) error {
	rt.printer = printer.New(rt.app.Out, rt.app.Err)
	if rt.flags.noColor {
		rt.printer.DisableColor()
	}

	cfg, err := config.Load(rt.flags.configPath)
	if err != nil {
		return rt.printer.Error("Invalid configuration", err.Error(), []string{
			"Fix the file passed with --config or ./" + config.DefaultPath,
		})
	}
	rt.applyOverrides(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return rt.printer.Error("Invalid flags", err.Error(), []string{"Run 'surveyform --help' for accepted values"})
	}
	rt.cfg = cfg

	l, err := logger.Initialize(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: rt.app.Err})
	if err != nil {
		return rt.printer.Error("Invalid log settings", err.Error(), nil)
	}
	rt.logger = l
	cmd.SetContext(logger.WithLogger(cmd.Context(), l))
	logger.Debug(cmd.Context(), "configuration resolved",
		"renderer", cfg.Renderer, "mount", cfg.Mount, "variant", cfg.Theme.Variant)
	return nil
}

func (rt *runtime) applyOverrides(cmd *cobra.Command, cfg *config.Config) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("renderer") {
		cfg.Renderer = rt.flags.renderer
	}
	if changed("mount") {
		cfg.Mount = rt.flags.mount
	}
	if changed("page") {
		cfg.Page = rt.flags.page
	}
	if changed("output") {
		cfg.Output = rt.flags.output
	}
	if changed("theme-variant") {
		cfg.Theme.Variant = rt.flags.themeVariant
	}
	if changed("log-level") {
		cfg.Log.Level = rt.flags.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = rt.flags.logFormat
	}
}
