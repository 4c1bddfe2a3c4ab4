package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"bragi/internal/clix"
)

var (
	deckListLimit  int
	deckListOffset int
)

// deckCmd groups deck inspection commands.
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect stored decks",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// listDecksCmd lists stored decks, newest first.
var listDecksCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored decks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return fmt.Errorf("invalid pagination flags: %w", err)
		}

		decks, err := appInstance.DeckStore.ListDecks(cmd.Context(), pagination.Limit, pagination.Offset)
		if err != nil {
			return fmt.Errorf("error listing decks: %w", err)
		}

		if len(decks) == 0 {
			fmt.Println("No decks found.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Title", "Created At", "Updated At"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, d := range decks {
			table.Append([]string{
				d.ID.String(),
				d.Title,
				d.CreatedAt.Format("2006-01-02 15:04:05"),
				d.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(listDecksCmd)

	listDecksCmd.Flags().IntVarP(&deckListLimit, "limit", "l", 50, "Number of decks to display")
	listDecksCmd.Flags().IntVarP(&deckListOffset, "offset", "o", 0, "Number of decks to skip")
}
