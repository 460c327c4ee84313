package cmd

import (
	"fmt"

	"github.com/msto63/rechenwerk/pkg/mathx"
	"github.com/spf13/cobra"
)

var (
	compoundPrincipal      float64
	compoundRatePercent    float64
	compoundYears          float64
	compoundPeriodsPerYear int
)

var compoundCmd = &cobra.Command{
	Use:   "compound",
	Short: "Berechnet den Endbetrag mit Zinseszins",
	Long: `Berechnet A = P × (1 + r/n)^(n×t).

Beispiele:
  rechenwerk compound --principal 1000 --rate 5 --years 1 --periods-per-year 1
  rechenwerk compound --principal 1500 --rate 4.3 --years 6 --periods-per-year 4`,
	Args: cobra.NoArgs,
	RunE: runCompound,
}

func init() {
	rootCmd.AddCommand(compoundCmd)

	compoundCmd.Flags().Float64Var(&compoundPrincipal, "principal", 1000, "Anfangskapital")
	compoundCmd.Flags().Float64Var(&compoundRatePercent, "rate", 5.0, "Jahreszins in Prozent")
	compoundCmd.Flags().Float64Var(&compoundYears, "years", 10, "Anlagedauer in Jahren")
	compoundCmd.Flags().IntVar(&compoundPeriodsPerYear, "periods-per-year", mathx.DefaultPeriodsPerYear, "Zinsperioden pro Jahr")
}

func runCompound(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg, true)
	defer closeLog()

	amount, err := mathx.CompoundAmount(compoundPrincipal, compoundRatePercent/100, compoundYears, compoundPeriodsPerYear)
	if err != nil {
		logger.LogError(err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Endbetrag:  %15s\n", mathx.FormatMoney(amount))
	fmt.Fprintf(out, "Zinsertrag: %15s\n", mathx.FormatMoney(amount-compoundPrincipal))
	return nil
}
