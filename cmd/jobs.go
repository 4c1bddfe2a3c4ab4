package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"bragi/internal/clix"
)

var (
	jobsListLimit  int
	jobsListOffset int
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect background styling jobs",
}

// jobsListCmd lists recorded background jobs with their current status.
var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded background styling jobs",
	Long:  `Lists the asynq jobs recorded at enqueue time, with the status the worker last reported for each.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		pagination, err := clix.ParsePagination(cmd.Flags())
		if err != nil {
			return err
		}
		jobs, err := appInstance.JobStore.ListJobs(cmd.Context(), pagination.Limit, pagination.Offset)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		if len(jobs) == 0 {
			fmt.Println("No jobs recorded.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Job ID", "Task Type", "Queue", "Status", "Deck", "Created At", "Updated At"})
		table.SetBorder(true)
		table.SetRowLine(true)

		for _, job := range jobs {
			deckID := "-"
			if job.DeckID != nil {
				deckID = job.DeckID.String()
			}
			table.Append([]string{
				job.JobID.String(),
				job.TaskType,
				job.Queue,
				job.Status,
				deckID,
				job.CreatedAt.Format(time.RFC3339),
				job.UpdatedAt.Format(time.RFC3339),
			})
		}

		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsListCmd)

	jobsListCmd.Flags().IntVarP(&jobsListLimit, "limit", "l", 50, "Maximum number of jobs to list")
	jobsListCmd.Flags().IntVarP(&jobsListOffset, "offset", "o", 0, "Number of jobs to skip")
}
