package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	debaterepo "github.com/heartmarshall/debate-backend/internal/adapter/postgres/debate"
)

func newRunningCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "running",
		Short: "List debates in progress with their turn cursor, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}

			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			debates, err := debaterepo.New(rt.pool).ListInProgress(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DEBATE\tTURN\tSIDE\tSTARTED\tTITLE")
			for _, d := range debates {
				started := "-"
				if d.StartedAt != nil {
					started = d.StartedAt.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(w, "%s\t%d/%d\t%s\t%s\t%s\n", d.ID, d.CurrentTurnNumber, d.TurnsPerSide, d.CurrentTurnSide, started, d.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of debates to list")
	return cmd
}
