package config

import (
	"os"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/ngld/knossos/packages/make-help/pkg/helpsys"
)

// DefaultFile is loaded from the working directory if it exists
const DefaultFile = ".makehelp.toml"

// Config describes all configuration options
type Config struct {
	Width  int    `default:"32" usage:"Width of the command column, 0 picks the width automatically"`
	Order  string `default:"sorted" usage:"Listing order (sorted or file)"`
	Format string `default:"text" usage:"Output format (text, yaml or json)"`
	Title  string `default:"A list of available targets and variables" usage:"Heading printed above the listing"`
	Plain  bool   `default:"false" usage:"Disable colors"`
	Styles struct {
		Group string `default:"[yellow]" usage:"colorstring markup for group headers"`
		Entry string `default:"[blue]" usage:"colorstring markup for descriptions"`
	}
	Log struct {
		Level   string `default:"info"`
		Verbose bool   `default:"false" usage:"Print all fields of every log message"`
	}
}

var logLevels = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

// Loader initializes an empty config object and returns a new Loader for this object.
// Flags are handled by the CLI so the loader only reads defaults, the config file and MAKEHELP_* env vars.
func Loader(file string) (*Config, *aconfig.Loader) {
	cfg := Config{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		EnvPrefix: "MAKEHELP",
		Files:     []string{file},
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// Load reads the config from file (or DefaultFile if file is empty) and the environment, then validates it.
// An explicitly passed file has to exist, the default file is optional.
func Load(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	} else if _, err := os.Stat(file); err != nil {
		return nil, eris.Wrapf(err, "failed to open config file %s", file)
	}

	cfg, loader := Loader(file)
	if err := loader.Load(); err != nil {
		return nil, eris.Wrapf(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	if _, err := helpsys.ParseOrder(cfg.Order); err != nil {
		return eris.Wrap(err, "Invalid value for order")
	}

	if _, err := helpsys.ParseFormat(cfg.Format); err != nil {
		return eris.Wrap(err, "Invalid value for format")
	}

	if cfg.Width < 0 {
		return eris.Errorf("Invalid value for width: %d (must not be negative)", cfg.Width)
	}

	_, ok := logLevels[cfg.Log.Level]
	if !ok {
		return eris.Errorf("Invalid value for log.level: %s", cfg.Log.Level)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Config) LogLevel() zerolog.Level {
	return logLevels[cfg.Log.Level]
}

// OutputFormat converts the .Format field. Call Validate first.
func (cfg *Config) OutputFormat() helpsys.Format {
	format, _ := helpsys.ParseFormat(cfg.Format)
	return format
}

// Style builds the renderer style described by this config. Call Validate first.
func (cfg *Config) Style() helpsys.Style {
	order, _ := helpsys.ParseOrder(cfg.Order)

	style := helpsys.DefaultStyle()
	style.Group = cfg.Styles.Group
	style.Entry = cfg.Styles.Entry
	style.Plain = cfg.Plain
	style.Order = order
	style.Width = cfg.Width
	style.Title = cfg.Title
	return style
}
