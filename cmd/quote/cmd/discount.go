package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"towquote/internal/pricing"
	"towquote/internal/services"
)

var discountRate float64

var discountCmd = &cobra.Command{
	Use:   "discount <amount>",
	Short: "Apply the online discount to an amount",
	Long: `Apply the online discount to an amount.

Without --rate the configured rate is read from Firestore.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}

		if cmd.Flags().Changed("rate") {
			return printDiscount(cmd, amount, discountRate)
		}

		return withQuoteService(cmd, func(svc services.QuoteService) error {
			rate, err := svc.DiscountRate(cmd.Context())
			if err != nil {
				return err
			}
			return printDiscount(cmd, amount, rate)
		})
	},
}

func printDiscount(cmd *cobra.Command, amount, rate float64) error {
	discounted := pricing.ApplyDiscount(amount, rate)
	if asJSON {
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"amount":     amount,
			"rate":       rate,
			"discounted": discounted,
		})
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s at %.0f%% off = $%d\n", money(amount), rate*100, discounted)
	return err
}

func init() {
	discountCmd.Flags().Float64Var(&discountRate, "rate", pricing.DefaultOnlineDiscountRate, "discount rate between 0 and 1")
}
