package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/msto63/rechenwerk/pkg/core/config"
	rwlog "github.com/msto63/rechenwerk/pkg/core/log"
	"github.com/msto63/rechenwerk/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rechenwerk",
	Short: "Rechenwerk - Taschenrechner fürs Terminal",
	Long: `Rechenwerk ist ein Taschenrechner für das Terminal mit
Kreditrechner und Zinseszins-Berechnung.

Ohne Unterbefehl startet die interaktive Oberfläche.

Befehle:
  tui       - Interaktive Oberfläche
  eval      - Tastenfolge auswerten
  loan      - Kreditrate berechnen
  compound  - Zinseszins berechnen
  version   - Version anzeigen`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./rechenwerk.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// loadConfig resolves the configuration from --config, the environment or
// the default locations
func loadConfig() (*config.Config, error) {
	return config.LoadFromEnv(cfgFile)
}

// newLogger writes to the configured log file. With stderrToo the entries
// are mirrored to stderr when --verbose is set. The returned function closes
// the log file.
func newLogger(cfg *config.Config, stderrToo bool) (*rwlog.Logger, func()) {
	lc := logging.DefaultLoggerConfig("rechenwerk")
	lc.Level = cfg.General.LogLevel
	lc.Format = cfg.General.LogFormat
	if verbose {
		lc.Level = "debug"
	}

	closeFn := func() {}
	if f, err := logging.OpenLogFile(cfg.General.LogFile); err == nil {
		lc.Output = f
		closeFn = func() { f.Close() }
	} else if verbose {
		printError("Log-Datei nicht verfügbar", err)
	}

	if stderrToo && verbose {
		lc.AdditionalOutputs = []io.Writer{os.Stderr}
	}

	return logging.NewLogger(lc), closeFn
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
