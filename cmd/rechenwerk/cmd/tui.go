package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/msto63/rechenwerk/internal/tui"
	"github.com/msto63/rechenwerk/pkg/core/config"
	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
	rwlog "github.com/msto63/rechenwerk/pkg/core/log"
	"github.com/msto63/rechenwerk/pkg/core/version"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive Oberfläche",
	Long: `Startet den Taschenrechner im Terminal.

Tasten:
  0-9 . ,   - Ziffern und Dezimalpunkt
  + - * /   - Rechenarten
  Enter =   - Ergebnis
  Backspace - Letzte Ziffer löschen
  Esc       - Alles löschen (C)
  Entf      - Eingabe löschen (CE)
  n, F9     - Vorzeichen wechseln
  l         - Kreditrechner
  t         - Rechenstreifen ein/aus
  q, Ctrl+C - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// isTerminal reports whether stdin and stdout are attached to a terminal
var isTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !isTerminal() {
		return rwerror.New("Rechenwerk benötigt ein interaktives Terminal (stdin/stdout sind keine TTY); für Skripte: rechenwerk eval").
			WithCode(rwerror.CodeEnvironmentError).
			WithOperation("cmd.tui")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg, false)
	defer closeLog()

	logger.Info("Rechenwerk gestartet", rwlog.Fields{
		"version": version.App,
		"config":  cfg.Path(),
	})

	p := tea.NewProgram(
		tui.NewModel(cfg, logger),
		tea.WithAltScreen(),
	)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.Path() != "" {
		err := config.Watch(ctx, cfg.Path(),
			func(c *config.Config) { p.Send(tui.ConfigChangedMsg{Config: c}) },
			func(err error) { p.Send(tui.ConfigErrorMsg{Err: err}) },
		)
		if err != nil {
			logger.WarnWithErr("Config-Überwachung nicht möglich", err)
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI Fehler: %v\n", err)
		logger.ErrorWithErr("TUI beendet", err)
		return err
	}

	logger.Info("Rechenwerk beendet")
	return nil
}
