package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

func newTallyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tally <debate-id>",
		Short: "Print vote totals, participants and the verdict of a debate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			debateID, err := parseID("debate id", args[0])
			if err != nil {
				return err
			}

			rt, err := openRuntime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			stack, err := rt.stack()
			if err != nil {
				return err
			}
			defer stack.Close()

			s, err := stack.Debates.GetStanding(cmd.Context(), debateID)
			if err != nil {
				return fmt.Errorf("standing: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s [%s]\n", s.Debate.Title, s.Debate.Status)
			fmt.Fprintf(out, "PROPOSER %d : %d OPPOSER (leader: %s)\n", s.Totals.Proposer, s.Totals.Opposer, roleOrTie(s.Leader))
			if s.WinCondition != nil {
				fmt.Fprintf(out, "verdict: %s by %s at %s\n",
					roleOrTie(s.WinCondition.WinningRole), s.WinCondition.Type, s.WinCondition.DecidedAt.Format("2006-01-02 15:04:05"))
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PARTICIPANT\tUSER\tROLE\tSTATUS")
			for _, p := range s.Participants {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.UserID, p.Role, p.Status)
			}
			return w.Flush()
		},
	}
}

func roleOrTie(r *domain.Role) string {
	if r == nil {
		return "tie"
	}
	return r.String()
}
