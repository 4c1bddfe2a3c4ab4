package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bragi/internal/models"
)

// seedCmd creates a bundled sample deck so styling can be tried without a
// deck wizard in front of the store.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a sample pitch deck and print its id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		deck := sampleDeck()
		if err := appInstance.DeckStore.CreateDeck(cmd.Context(), deck); err != nil {
			return fmt.Errorf("failed to create sample deck: %w", err)
		}

		fmt.Printf("%s sample deck %s (%d slides)\n", color.GreenString("Created"), deck.ID, len(deck.Slides))
		fmt.Printf("Try: bragi style %s\n", deck.ID)
		return nil
	},
}

// sampleDeck is a small fintech pitch. Its wording deliberately hits the
// finance keyword set so the offline heuristic classifies it.
func sampleDeck() *models.Deck {
	content := func(doc map[string]interface{}) json.RawMessage {
		raw, _ := json.Marshal(doc)
		return raw
	}
	return &models.Deck{
		Title: "Brightledger",
		Slides: []models.Slide{
			{Type: models.SlideCover, Content: content(map[string]interface{}{
				"title":    "Brightledger",
				"subtitle": "Payments and lending built for independent bookstores",
			})},
			{Type: models.SlideProblem, Content: content(map[string]interface{}{
				"headline": "Card fees erase the margin on every paperback",
				"paragraphs": []string{
					"Independent stores pay enterprise payment rates without enterprise volume. A $14 paperback loses a third of its margin to interchange and processor markups.",
				},
			})},
			{Type: models.SlideSolution, Content: content(map[string]interface{}{
				"headline": "One checkout, transparent rates, same-day settlement",
				"bullets": []string{
					"Flat per-transaction pricing negotiated across the whole network",
					"Working-capital lending against next month's receipts",
					"Settlement lands before the morning delivery",
				},
			})},
			{Type: models.SlideMarket, Content: content(map[string]interface{}{
				"headline": "2,400 member stores process $1.1B in card volume",
				"bullets": []string{
					"Average store runs $460k of payments a year",
					"Seasonal credit demand peaks at 4x in November",
				},
			})},
			{Type: models.SlideFinancials, Content: content(map[string]interface{}{
				"headline": "Revenue follows volume",
				"bullets": []string{
					"Take rate of 0.4% on processed payments",
					"Lending book yields 9% with sub-1% losses",
					"Break-even at 600 stores, reached in month 14",
				},
			})},
			{Type: models.SlideTeam, Content: content(map[string]interface{}{
				"headline": "Built by people who ran the registers",
				"paragraphs": []string{
					"Former co-op buyers and two payment-network veterans who priced interchange for a living.",
				},
			})},
			{Type: models.SlideClosing, Content: content(map[string]interface{}{
				"headline": "Raising $3M to onboard the next 800 stores",
			})},
		},
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
