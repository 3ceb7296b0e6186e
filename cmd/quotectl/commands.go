package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"tradequote_backend/internal/quotes/domain"
	"tradequote_backend/internal/quotes/repository"
	"tradequote_backend/internal/quotes/service"
	"tradequote_backend/internal/trades"
	"tradequote_backend/platform/ai/provider"
	"tradequote_backend/platform/config"
	"tradequote_backend/platform/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quotectl",
		Short:         "Draft and price tradie quotes from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newClassifyCmd(), newPriceCmd(), newGenerateCmd())
	return root
}

// =============================================================================
// classify
// =============================================================================

func newClassifyCmd() *cobra.Command {
	var location string
	cmd := &cobra.Command{
		Use:   "classify <job description...>",
		Short: "Detect the trade for a job description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			trade := trades.Detect(description)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "trade: %s (%s)\n", trade, trade.Title())
			fmt.Fprintf(out, "confidence: %.2f\n", trades.Confidence(description, trade))
			if trade != trades.Other {
				fmt.Fprintf(out, "default rate: %s/hr\n", service.FormatCurrency(trades.DefaultRate(trade, location)))
			}

			scores := trades.Scores(description)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, t := range trades.All {
				if score, ok := scores[t]; ok {
					fmt.Fprintf(w, "  %s\t%d\n", t, score)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "job location for the regional rate adjustment")
	return cmd
}

// =============================================================================
// price
// =============================================================================

type priceOptions struct {
	file        string
	description string
	trade       string
	location    string
}

func newPriceCmd() *cobra.Command {
	opts := &priceOptions{}
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Validate an items file and print its totals",
		Long: "Reads a JSON array of {label, qty, unit, unitPrice} items, fills zero prices from the\n" +
			"trade's default rate when --trade is given, and prints subtotal, GST and total.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrice(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "items JSON file, - for stdin")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "job description, used for the green-waste fee")
	cmd.Flags().StringVar(&opts.trade, "trade", "", "trade whose default rate fills zero prices")
	cmd.Flags().StringVar(&opts.location, "location", "", "job location for the regional rate adjustment")
	return cmd
}

func runPrice(stdin io.Reader, out io.Writer, opts *priceOptions) error {
	raw, err := readInput(stdin, opts.file)
	if err != nil {
		return err
	}
	decoded, err := service.DecodeItems(raw)
	if err != nil {
		return fmt.Errorf("decode items: %w", err)
	}
	items, verr := service.ValidateSavedItems(decoded)
	if verr != nil {
		return fmt.Errorf("%s: %w", verr.Message(), verr)
	}

	if opts.trade != "" {
		trade, ok := trades.Parse(opts.trade)
		if !ok {
			return fmt.Errorf("unknown trade %q", opts.trade)
		}
		items = service.ApplyDefaultPricing(items, trade, opts.location)
	}

	printItems(out, items, service.CalculateTotals(items, opts.description))
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return data, nil
}

// =============================================================================
// generate
// =============================================================================

type generateOptions struct {
	customerName string
	location     string
	propertyType string
	urgency      string
	table        bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate <job description...>",
		Short: "Draft a quote with the configured generator",
		Long:  "Uses the same configuration as the API server. Without a credential the fallback quote is printed.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			gen, err := provider.New(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			svc := service.New(repository.NewMemoryStore(), logger.Discard())
			svc.SetGenerator(gen, cfg.GetGenerationTimeout())

			result, err := svc.Generate(cmd.Context(), service.GenerateInput{
				JobDescription: strings.Join(args, " "),
				QuoteContext: service.QuoteContext{
					CustomerName: opts.customerName,
					Location:     opts.location,
					PropertyType: domain.PropertyType(opts.propertyType),
					Urgency:      domain.Urgency(opts.urgency),
				},
			})
			if err != nil {
				return err
			}
			return printGenerated(cmd.OutOrStdout(), result, opts.table)
		},
	}
	cmd.Flags().StringVar(&opts.customerName, "customer", "", "customer name")
	cmd.Flags().StringVar(&opts.location, "location", "", "job location")
	cmd.Flags().StringVar(&opts.propertyType, "property-type", "", "residential-house, residential-unit, commercial, industrial or other")
	cmd.Flags().StringVar(&opts.urgency, "urgency", "", "asap, this-week, next-week, this-month or flexible")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print a table instead of JSON")
	return cmd
}

func printGenerated(out io.Writer, result *service.GenerateOutput, table bool) error {
	if !table {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Items    []domain.QuoteItem `json:"items"`
			Notes    string             `json:"notes,omitempty"`
			Trade    string             `json:"trade"`
			Source   string             `json:"source"`
			Subtotal int                `json:"subtotal"`
			GST      int                `json:"gst"`
			Total    int                `json:"total"`
		}{result.Items, result.Notes, result.Trade, string(result.Source), result.Totals.Subtotal, result.Totals.GST, result.Totals.Total})
	}

	fmt.Fprintf(out, "trade: %s  source: %s\n", result.Trade, result.Source)
	printItems(out, result.Items, result.Totals)
	if result.Notes != "" {
		fmt.Fprintf(out, "notes: %s\n", result.Notes)
	}
	return nil
}

func printItems(out io.Writer, items []domain.QuoteItem, totals service.Totals) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "item\tqty\tunit price\t")
	for _, item := range items {
		qty := strconv.FormatFloat(item.Qty, 'f', -1, 64) + " " + string(item.Unit)
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", item.Label, qty, service.FormatPrice(item.UnitPrice))
	}
	fmt.Fprintf(w, "subtotal\t\t%s\t\n", service.FormatCurrency(totals.Subtotal))
	fmt.Fprintf(w, "GST\t\t%s\t\n", service.FormatCurrency(totals.GST))
	fmt.Fprintf(w, "total\t\t%s\t\n", service.FormatCurrency(totals.Total))
	_ = w.Flush()
}
