package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"towquote/internal/services"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Show the company document and support phone",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuoteService(cmd, func(svc services.QuoteService) error {
			company, err := svc.Company(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), company)
			}

			out := cmd.OutOrStdout()
			if company.Name != "" {
				fmt.Fprintln(out, company.Name)
			}
			fmt.Fprintf(out, "Phone: %s\n", company.Phone)
			if company.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", company.Email)
			}
			if company.BaseAddress != "" {
				fmt.Fprintf(out, "Yard:  %s\n", company.BaseAddress)
			}
			return nil
		})
	},
}
