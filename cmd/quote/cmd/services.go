package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"towquote/internal/services"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the service catalog with starting and online prices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuoteService(cmd, func(svc services.QuoteService) error {
			summaries, err := svc.ListServices(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), summaries)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SERVICE\tKIND\tFROM\tONLINE\tPER MILE")
			for _, s := range summaries {
				from, online := money(s.StartingPrice), fmt.Sprintf("$%d", s.OnlinePrice)
				if s.CallForPricing {
					from, online = "call", "call"
				}
				perMile := "-"
				if s.PerMileRate > 0 {
					perMile = money(s.PerMileRate)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Name, s.Kind, from, online, perMile)
			}
			return w.Flush()
		})
	},
}
