package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bragi/internal/clix"
	"bragi/internal/models"
)

var (
	styleForce bool
	styleAsync bool
)

// styleCmd applies content-aware styling to one deck.
var styleCmd = &cobra.Command{
	Use:   "style <deck-id>",
	Short: "Classify a deck and write styling onto its slides",
	Long: `Classifies the deck's content, resolves a visual style for every slide,
and persists the generated styling into each slide's content document. A
repeat run reuses the cached analysis; --force reclassifies from the current
content instead.`,
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

		if styleAsync {
			if err := appInstance.JobClient.EnqueueStylingJob(cmd.Context(), deckID, styleForce); err != nil {
				return fmt.Errorf("failed to enqueue styling job: %w", err)
			}
			fmt.Printf("%s styling job for deck %s\n", color.GreenString("Enqueued"), deckID)
			return nil
		}

		svc := appInstance.StylingService
		var styled *models.Deck
		if styleForce {
			styled, err = svc.Restyle(cmd.Context(), deckID)
		} else {
			styled, err = svc.ApplyStyling(cmd.Context(), deckID)
		}
		if err != nil {
			return fmt.Errorf("styling failed: %w", err)
		}

		fmt.Printf("%s %d slides on deck %s\n", color.GreenString("Styled"), len(styled.Slides), deckID)
		if analysis, ok := svc.Analysis(deckID); ok {
			fmt.Printf("  Industry: %s  Tone: %s  Style: %s  (source: %s)\n",
				analysis.Industry, analysis.BusinessTone, analysis.RecommendedStyle, analysis.Source)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(styleCmd)

	styleCmd.Flags().BoolVarP(&styleForce, "force", "f", false, "Reclassify and restyle even if the deck is already styled")
	styleCmd.Flags().BoolVar(&styleAsync, "async", false, "Enqueue a background styling job instead of styling inline")
}
