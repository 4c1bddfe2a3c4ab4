package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bragi/internal/clix"
	"bragi/internal/models"
)

// statusCmd reports a deck's styling status. Status is process state, so
// outside of 'serve' this reflects the current invocation only.
var statusCmd = &cobra.Command{
	Use:   "status <deck-id>",
	Short: "Show the styling status for a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		deckID, err := clix.ParseDeckID(args[0])
		if err != nil {
			return err
		}

		status := appInstance.StylingService.Status(deckID)
		label := string(status)
		switch status {
		case models.StylingComplete:
			label = color.GreenString(label)
		case models.StylingInProgress:
			label = color.YellowString(label)
		}
		fmt.Printf("Deck %s: %s\n", deckID, label)

		if analysis, ok := appInstance.StylingService.Analysis(deckID); ok {
			fmt.Printf("  Industry: %s  Tone: %s  Style: %s\n",
				analysis.Industry, analysis.BusinessTone, analysis.RecommendedStyle)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
