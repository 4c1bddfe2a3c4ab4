package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bragi/internal/clix"
)

var (
	usageListLimit  int
	usageListOffset int
)

// usageCmd represents the base command for classifier usage reporting.
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "View classifier usage",
	Long: `Provides subcommands to list recorded classifier calls and summarize how
often the remote providers fell back to the local heuristic.`,
}

// usageListCmd lists recorded classifier calls.
var usageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded classifier calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return fmt.Errorf("invalid pagination flags: %w", err)
		}

		records, err := appInstance.UsageStore.ListClassifierUsage(cmd.Context(), pagination.Limit, pagination.Offset)
		if err != nil {
			return fmt.Errorf("failed to list classifier usage: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No classifier usage recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTimestamp\tProvider\tModel\tDeck\tIn Tokens\tOut Tokens\tFallback")
		fmt.Fprintln(w, "--\t---------\t--------\t-----\t----\t---------\t----------\t--------")
		for _, rec := range records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%t\n",
				rec.ID,
				rec.Timestamp.Format("2006-01-02 15:04:05"),
				rec.ProviderName,
				rec.ModelName,
				rec.DeckID,
				rec.InputTokens,
				rec.OutputTokens,
				rec.Fallback,
			)
		}
		w.Flush()

		fmt.Printf("\nDisplayed %d records.\n", len(records))
		return nil
	},
}

// usageSummaryCmd summarizes classification volume and fallback rate.
var usageSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize classifier calls and fallback rate",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		total, fallback, err := appInstance.Tracker.TotalRequests(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to summarize classifier usage: %w", err)
		}

		fmt.Println("Classifier Usage Summary:")
		fmt.Println("-------------------------")
		fmt.Printf("Total classifications: %d\n", total)
		fmt.Printf("Heuristic fallbacks:   %d\n", fallback)
		if total > 0 {
			fmt.Printf("Fallback rate:         %.1f%%\n", float64(fallback)/float64(total)*100)
		}
		fmt.Println("-------------------------")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
	usageCmd.AddCommand(usageListCmd)
	usageCmd.AddCommand(usageSummaryCmd)

	usageListCmd.Flags().IntVarP(&usageListLimit, "limit", "l", 50, "Number of records to display")
	usageListCmd.Flags().IntVarP(&usageListOffset, "offset", "o", 0, "Number of records to skip")
}
