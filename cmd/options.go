package cmd

import (
	"fmt"

	"github.com/smazurov/ledlut/internal/config"
	"github.com/smazurov/ledlut/internal/logging"
	"github.com/smazurov/ledlut/internal/lut"
	"github.com/smazurov/ledlut/internal/matrix"
	"github.com/spf13/cobra"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"ledlut.toml"`

	// Matrix settings
	Height      int    `help:"Matrix height in rows (0 derives it from --count)" default:"32" toml:"matrix.height" env:"MATRIX_HEIGHT"`
	Width       int    `help:"Matrix width in columns" default:"8" toml:"matrix.width" env:"MATRIX_WIDTH"`
	Count       int    `help:"Total LED count (0 means height*width)" default:"0" toml:"matrix.count" env:"MATRIX_COUNT"`
	Start       string `help:"Corner holding LED 0 (top-right, top-left, bottom-right, bottom-left)" default:"top-right" toml:"matrix.start" env:"MATRIX_START"`
	Axis        string `help:"Direction the strip runs (rows, columns)" default:"rows" toml:"matrix.axis" env:"MATRIX_AXIS"`
	Progressive bool   `help:"Run every strip segment the same way instead of zig-zagging" default:"false" toml:"matrix.progressive" env:"MATRIX_PROGRESSIVE"`

	// Output settings
	Format  string `help:"Output format (c, go, toml)" short:"f" default:"c" toml:"output.format" env:"OUTPUT_FORMAT"`
	Name    string `help:"Array or variable name (empty uses the format default)" default:"" toml:"output.name" env:"OUTPUT_NAME"`
	Package string `help:"Package clause for Go output" default:"leds" toml:"output.package" env:"OUTPUT_PACKAGE"`

	// Logging settings
	LoggingLevel   string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingJournal bool   `help:"Also send logs to the systemd journal" default:"false" toml:"logging.journal" env:"LOGGING_JOURNAL"`
	LoggingMatrix  string `help:"Matrix logging level (empty inherits the global level)" default:"" toml:"logging.modules.matrix" env:"LOGGING_MATRIX"`
	LoggingConfig  string `help:"Config logging level (empty inherits the global level)" default:"" toml:"logging.modules.config" env:"LOGGING_CONFIG"`
}

// flagOptions holds options as parsed from flags, before the config file
// and environment were applied. The watch command reloads from it.
var flagOptions Options

// Setup loads .env files and the config file into opts, then initializes logging.
func Setup(opts *Options, root *cobra.Command) error {
	flagOptions = *opts

	dotEnv, envErr := config.LoadDotEnv(".env.local", ".env")
	loadErr := config.LoadConfig(opts, root)

	logging.Initialize(opts.LoggingSettings())
	logger := logging.GetLogger("config")

	if envErr != nil {
		return envErr
	}
	if loadErr != nil {
		return loadErr
	}
	if dotEnv != "" {
		logger.Debug("Loaded environment file", "path", dotEnv)
	}
	logger.Debug("Configuration loaded", "config", opts.Config, "format", opts.Format)
	return nil
}

// LoggingSettings returns the logging configuration selected by opts.
func (o *Options) LoggingSettings() logging.Config {
	modules := make(map[string]string)
	for module, level := range map[string]string{
		"matrix": o.LoggingMatrix,
		"config": o.LoggingConfig,
	} {
		if level != "" {
			modules[module] = level
		}
	}

	return logging.Config{
		Level:   o.LoggingLevel,
		Format:  o.LoggingFormat,
		Journal: o.LoggingJournal,
		Modules: modules,
	}
}

// Layout builds the matrix layout selected by opts.
func (o *Options) Layout() (matrix.Layout, error) {
	start, err := matrix.ParseCorner(o.Start)
	if err != nil {
		return matrix.Layout{}, err
	}
	axis, err := matrix.ParseAxis(o.Axis)
	if err != nil {
		return matrix.Layout{}, err
	}
	return matrix.Layout{
		Height:      o.Height,
		Width:       o.Width,
		Count:       o.Count,
		Start:       start,
		Axis:        axis,
		Progressive: o.Progressive,
	}, nil
}

// Output returns the emitter options selected by opts.
func (o *Options) Output() (lut.Options, error) {
	format, err := lut.ParseFormat(o.Format)
	if err != nil {
		return lut.Options{}, err
	}
	return lut.Options{Format: format, Name: o.Name, Package: o.Package}, nil
}

// buildTable generates the table for opts.
func buildTable(opts *Options) (*matrix.Table, error) {
	layout, err := opts.Layout()
	if err != nil {
		return nil, err
	}
	table, err := matrix.Generate(layout)
	if err != nil {
		return nil, fmt.Errorf("failed to generate table: %w", err)
	}
	return table, nil
}
