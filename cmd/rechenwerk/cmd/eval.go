package cmd

import (
	"fmt"

	"github.com/msto63/rechenwerk/internal/calculator"
	rwerror "github.com/msto63/rechenwerk/pkg/core/error"
	rwlog "github.com/msto63/rechenwerk/pkg/core/log"
	"github.com/spf13/cobra"
)

var evalShowTape bool

var evalCmd = &cobra.Command{
	Use:   "eval [tasten...]",
	Short: "Wertet eine Tastenfolge aus",
	Long: `Spielt Tasten wie in der Oberfläche ab und gibt die Anzeige aus.
Gerechnet wird strikt von links nach rechts (2+3*4 = 20).

Tasten:
  0-9 . ,        Ziffern und Dezimalpunkt
  + - * / × ÷    Rechenarten
  =              Ergebnis
  C, CE, BS      Alles löschen, Eingabe löschen, Rücktaste
  NEG, ±         Vorzeichen wechseln

Beispiele:
  rechenwerk eval 5+3=
  rechenwerk eval 12.5 '*' 4 =
  rechenwerk eval --tape -- 100 - 7 - 3 =`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalShowTape, "tape", false, "Rechenstreifen ausgeben")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg, true)
	defer closeLog()

	events, err := calculator.ParseTokens(args)
	if err != nil {
		logger.LogError(err)
		return err
	}

	calc := calculator.New(
		calculator.WithPrecision(cfg.Display.Precision),
		calculator.WithTapeSize(cfg.Display.TapeSize),
	)
	display := calc.Run(events)

	logger.Debug("Tastenfolge ausgewertet", rwlog.Fields{
		"events":  len(events),
		"display": display,
	})

	out := cmd.OutOrStdout()
	if evalShowTape {
		for _, e := range calc.Tape() {
			fmt.Fprintln(out, e.String())
		}
	}
	fmt.Fprintln(out, display)

	if err := calc.LastError(); err != nil {
		logger.LogError(err)
		return rwerror.Wrap(err, "Auswertung fehlgeschlagen")
	}
	return nil
}
