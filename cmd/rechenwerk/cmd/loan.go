package cmd

import (
	"fmt"

	rwlog "github.com/msto63/rechenwerk/pkg/core/log"
	"github.com/msto63/rechenwerk/pkg/mathx"
	"github.com/spf13/cobra"
)

var (
	loanPrincipal       float64
	loanRatePercent     float64
	loanYears           float64
	loanPaymentsPerYear int
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Berechnet die Rate eines Annuitätendarlehens",
	Long: `Berechnet Rate pro Periode, Zinsen gesamt und Gesamtbetrag.
Nicht angegebene Werte kommen aus der [loan]-Sektion der Config.

Beispiele:
  rechenwerk loan
  rechenwerk loan --principal 250000 --rate 3.8 --years 25
  rechenwerk loan --payments-per-year 4`,
	Args: cobra.NoArgs,
	RunE: runLoan,
}

func init() {
	rootCmd.AddCommand(loanCmd)

	loanCmd.Flags().Float64Var(&loanPrincipal, "principal", 200000, "Darlehensbetrag")
	loanCmd.Flags().Float64Var(&loanRatePercent, "rate", 5.0, "Jahreszins in Prozent")
	loanCmd.Flags().Float64Var(&loanYears, "years", 30, "Laufzeit in Jahren")
	loanCmd.Flags().IntVar(&loanPaymentsPerYear, "payments-per-year", mathx.DefaultPeriodsPerYear, "Raten pro Jahr")
}

func runLoan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg, true)
	defer closeLog()

	flags := cmd.Flags()
	if !flags.Changed("principal") {
		loanPrincipal = cfg.Loan.Principal
	}
	if !flags.Changed("rate") {
		loanRatePercent = cfg.Loan.RatePercent
	}
	if !flags.Changed("years") {
		loanYears = cfg.Loan.Years
	}
	if !flags.Changed("payments-per-year") {
		loanPaymentsPerYear = cfg.Loan.PaymentsPerYear
	}

	summary, err := mathx.SummarizeLoan(loanPrincipal, loanRatePercent/100, loanYears, loanPaymentsPerYear)
	if err != nil {
		logger.LogError(err)
		return err
	}

	logger.Debug("Darlehen berechnet", rwlog.Fields{
		"principal":    loanPrincipal,
		"rate_percent": loanRatePercent,
		"years":        loanYears,
		"payment":      summary.Payment,
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rate pro Periode: %15s\n", mathx.FormatMoney(summary.Payment))
	fmt.Fprintf(out, "Zinsen gesamt:    %15s\n", mathx.FormatMoney(summary.TotalInterest))
	fmt.Fprintf(out, "Gesamtbetrag:     %15s\n", mathx.FormatMoney(summary.TotalPaid))
	return nil
}
