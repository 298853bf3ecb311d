package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"towquote/internal/models"
	"towquote/internal/services"
)

var (
	towMiles    float64
	travelMiles float64
)

var priceCmd = &cobra.Command{
	Use:   "price <service>",
	Short: "Print an itemized quote for one service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuoteService(cmd, func(svc services.QuoteService) error {
			quote, err := svc.Quote(cmd.Context(), &models.QuoteRequest{
				Service:     args[0],
				TowMiles:    towMiles,
				TravelMiles: travelMiles,
			})
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), quote)
			}

			out := cmd.OutOrStdout()
			if quote.CallForPricing {
				fmt.Fprintf(out, "%s: call %s for pricing\n", quote.Service, quote.Phone)
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
			for _, item := range quote.Breakdown.Items {
				fmt.Fprintf(w, "%s\t%s\t\n", item.Label, money(item.Amount))
			}
			fmt.Fprintf(w, "Total\t%s\t\n", money(quote.Total))
			fmt.Fprintf(w, "Online (%.0f%% off)\t$%d\t\n", quote.DiscountRate*100, quote.OnlinePrice)
			return w.Flush()
		})
	},
}

func init() {
	priceCmd.Flags().Float64Var(&towMiles, "tow-miles", 0, "towing distance, rounded up to whole miles")
	priceCmd.Flags().Float64Var(&travelMiles, "travel-miles", 0, "distance from the yard to the pickup")
}
