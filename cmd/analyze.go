package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"bragi/internal/clix"
	"bragi/internal/extract"
)

// analyzeCmd classifies a deck without writing anything back.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <deck-id>",
	Short: "Classify a deck's content without styling it",
	Long: `Extracts the deck's text, runs the classifier chain on it, and prints
the resulting analysis. Nothing is persisted, and the cached analysis used
by 'style' is left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		deckID, err := clix.ParseDeckID(args[0])
		if err != nil {
			return err
		}

		deck, err := appInstance.DeckStore.GetDeck(cmd.Context(), deckID)
		if err != nil {
			return fmt.Errorf("failed to load deck: %w", err)
		}

		payload := extract.BuildPayload(deck)
		if payload.Empty() {
			fmt.Println("Deck has no usable text; expect default styling.")
		}

		analysis, err := appInstance.Classifier.Classify(cmd.Context(), deckID, payload)
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Field", "Value"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.Append([]string{"Industry", string(analysis.Industry)})
		table.Append([]string{"Tone", string(analysis.BusinessTone)})
		table.Append([]string{"Style", string(analysis.RecommendedStyle)})
		table.Append([]string{"Key Themes", strings.Join(analysis.KeyThemes, ", ")})
		table.Append([]string{"Colors", strings.Join(analysis.ColorSuggestions, ", ")})
		table.Render()

		// Yellow marks the deterministic fallback so remote outages stand out.
		sourceLabel := color.CyanString(analysis.Source)
		if analysis.Source == "heuristic" {
			sourceLabel = color.YellowString(analysis.Source)
		}
		fmt.Printf("\nAnalysis source: %s\n", sourceLabel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
