// Package cmd provides the operator commands for the quote CLI.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"towquote/internal/app"
	"towquote/internal/config"
	"towquote/internal/services"
	"towquote/pkg/logger"
)

var (
	verbose bool
	asJSON  bool

	// newQuoteService is replaced in tests.
	newQuoteService = defaultQuoteService
)

var rootCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price towing and roadside services",
	Long: `quote reads the live pricing configuration from Firestore and prints
itemized quotes exactly as the booking API would compute them.

Examples:
  quote services
  quote price "Local Towing" --tow-miles 15 --travel-miles 6
  quote discount 195
  quote company`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log configuration fetches and retries")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(discountCmd)
	rootCmd.AddCommand(companyCmd)
}

func defaultQuoteService(ctx context.Context) (services.QuoteService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logger.Discard()
	if verbose {
		if log, err = app.NewLogger(cfg); err != nil {
			return nil, nil, err
		}
	}

	engine, store, err := app.NewPricingEngine(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	svc := services.NewQuoteService(engine, nil, nil, nil, cfg.Payment, log)
	return svc, func() { store.Close() }, nil
}

// withQuoteService runs fn against a freshly built service and closes it.
func withQuoteService(cmd *cobra.Command, fn func(svc services.QuoteService) error) error {
	svc, closeFn, err := newQuoteService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(svc)
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
