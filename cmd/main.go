package cmd

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ngld/knossos/packages/make-help/pkg"
	"github.com/ngld/knossos/packages/make-help/pkg/config"
	"github.com/ngld/knossos/packages/make-help/pkg/helpsys"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "make-help [files or patterns...]",
		Short: "Lists the documented targets and variables of Makefiles",
		Long: `This command scans the passed Makefiles for lines of the form

    ## <group>:<command>:<description>

and prints them grouped by <group>. Glob patterns (including **) are expanded.
Without arguments, the closest Makefile in the current directory or one of its
parents is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := rootCmd.Flags()
	flags.StringP("config", "c", "", "config file (default \""+config.DefaultFile+"\" if present)")
	flags.Bool("plain", false, "disable colors")
	flags.Bool("color", false, "force colors even if stdout is not a terminal")
	flags.StringP("order", "o", "sorted", "listing order: sorted or file")
	flags.StringP("format", "f", "text", "output format: text, yaml or json")
	flags.IntP("width", "w", 32, "width of the command column, 0 picks the width automatically")
	flags.String("title", "", "heading printed above the listing")
	flags.String("log-level", "info", "minimum level of log messages: debug, info, warn or error (diagnostics are always printed)")

	return rootCmd
}

// loadConfig reads the config file and environment, then applies every flag the user explicitly passed
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfgFile, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if flags.Changed("plain") {
		if cfg.Plain, err = flags.GetBool("plain"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("order") {
		if cfg.Order, err = flags.GetString("order"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("width") {
		if cfg.Width, err = flags.GetInt("width"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("title") {
		if cfg.Title, err = flags.GetString("title"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return nil, err
		}
	}

	return cfg, cfg.Validate()
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// usePlain decides whether colors are disabled for the given writer
func usePlain(cmd *cobra.Command, cfg *config.Config, w io.Writer) bool {
	if forced, _ := cmd.Flags().GetBool("color"); forced {
		return false
	}
	if cfg.Plain || os.Getenv("NO_COLOR") != "" {
		return true
	}

	return !isTerminal(w)
}

// reportDiagnostics logs every diagnostic. They are printed even if the configured level is above warn.
func reportDiagnostics(logger zerolog.Logger, level zerolog.Level, diags []helpsys.Diagnostic) {
	if level > zerolog.WarnLevel {
		logger = logger.Level(zerolog.WarnLevel)
	}

	for _, diag := range diags {
		var evt *zerolog.Event
		switch diag.Kind {
		case helpsys.FileMissing, helpsys.ReadFailed:
			evt = logger.Error()
		default:
			evt = logger.Warn()
		}

		evt = evt.Str("path", diag.Path).Str("kind", diag.Kind.String())
		if diag.Line > 0 {
			evt = evt.Int("line", diag.Line)
		}
		evt.Msg(diag.Error())
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	style := cfg.Style()
	style.Plain = usePlain(cmd, cfg, out)

	zerolog.ErrorMarshalFunc = func(err error) interface{} {
		return eris.ToString(err, cfg.Log.Verbose)
	}
	logger := zerolog.New(NewConsoleWriter(cmd.ErrOrStderr(), usePlain(cmd, cfg, cmd.ErrOrStderr()), cfg.Log.Verbose)).
		Level(cfg.LogLevel())
	ctx := helpsys.WithLogger(context.Background(), &logger)

	var paths []string
	var diags []helpsys.Diagnostic
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return eris.Wrap(err, "failed to retrieve the current working directory")
		}

		makefile, err := pkg.FindMakefile(wd)
		if err != nil {
			if !eris.Is(err, pkg.ErrNoMakefile) {
				return err
			}
			logger.Warn().Msgf("No Makefile found in %s or its parents", wd)
		} else {
			logger.Debug().Str("path", makefile).Msgf("Using %s", makefile)
			paths = []string{makefile}
		}
	} else {
		paths, diags = helpsys.ExpandPatterns(ctx, args)
	}

	result := helpsys.Collect(ctx, paths)
	reportDiagnostics(logger, cfg.LogLevel(), append(diags, result.Diagnostics...))

	if format := cfg.OutputFormat(); format != helpsys.FormatText {
		return helpsys.Export(out, result.Table, format, style.Order)
	}
	return helpsys.Render(out, result.Table, style)
}

// Execute runs the root command and exits with a non-zero status if it fails
func Execute() {
	cobra.CheckErr(newRootCmd().Execute())
}
