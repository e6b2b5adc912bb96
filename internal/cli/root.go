// Package cli wires the engine into the kairos command-line tool.
//
// Commands never compute calendar fields themselves: each one reduces its
// input to a micropulse coordinate through the assembler and prints the
// assembled response. The CLI layer owns everything the pure core refuses
// to: config files, the persistent sunrise cache, process exit codes.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaiklok/kairos/internal/config"
	"github.com/kaiklok/kairos/internal/solar"
	"github.com/kaiklok/kairos/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the kairos CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kairos",
		Short: "Kairos - deterministic pulse calendar",
		Long:  "Converts conventional timestamps to the fixed-cadence pulse clock and its eternal and solar calendars.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a kairos config file")

	cmd.AddCommand(NewNowCommand(opts))
	cmd.AddCommand(NewMomentCommand(opts))
	cmd.AddCommand(NewPulseCommand(opts))
	cmd.AddCommand(NewSunriseCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// environment bundles what every command needs: validated config and a
// solar calculator, warmed from the persistent cache when one is
// configured.
type environment struct {
	cfg   *config.Config
	calc  *solar.Calculator
	cache *store.SunriseStore // nil without a configured cache path
}

func buildEnvironment(opts *RootOptions) (*environment, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	obs := cfg.SolarObserver()
	env := &environment{cfg: cfg}
	if cfg.SunriseCachePath == "" {
		env.calc = solar.NewCalculator(obs)
		return env, nil
	}

	cache, err := store.Open(cfg.SunriseCachePath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open sunrise cache", err)
	}
	seed, err := cache.Load(obs)
	if err != nil {
		cache.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load sunrise cache", err)
	}
	env.cache = cache
	env.calc = solar.NewCalculatorWithCache(obs, seed)
	return env, nil
}

// close persists newly computed sunrises and releases the cache.
func (e *environment) close() {
	if e.cache == nil {
		return
	}
	// Best effort: a failed save only costs a recomputation next run.
	_ = e.cache.Save(e.calc.Observer(), e.calc.Snapshot())
	_ = e.cache.Close()
}

func (e *environment) formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	format := opts.Format
	// The config default applies only when the flag was left untouched.
	if f := cmd.Flag("format"); (f == nil || !f.Changed) && e.cfg.Format != "" {
		format = e.cfg.Format
	}
	return &OutputFormatter{Format: format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
}
