package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/debate-backend/internal/service/debate"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

func newForfeitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forfeit <debate-id> <participant-id>",
		Short: "Mark a participant FORFEITED and re-evaluate the current turn",
		Long: `Forfeit a participant whose time limit expired.

The current side is re-evaluated under the debate lock, so the forfeit may
switch the turn or complete the debate. Forfeiting twice is a no-op.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			debateID, err := parseID("debate id", args[0])
			if err != nil {
				return err
			}
			participantID, err := parseID("participant id", args[1])
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

			ctx := ctxutil.WithCaller(cmd.Context(), "debatectl")
			res, err := stack.Debates.ForfeitParticipant(ctx, debate.ForfeitInput{
				DebateID:      debateID,
				ParticipantID: participantID,
			})
			if err != nil {
				return fmt.Errorf("forfeit: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "participant %s: %s\n", res.Participant.ID, res.Participant.Status)
			fmt.Fprintf(out, "debate %s: %s", debateID, res.DebateStatus())
			if d := res.Debate; d != nil && d.IsInProgress() {
				fmt.Fprintf(out, " (turn %d, %s)", d.CurrentTurnNumber, d.CurrentTurnSide)
			}
			fmt.Fprintln(out)
			if res.Completed {
				fmt.Fprintf(out, "winner: %s\n", roleOrTie(res.WinningRole))
			}
			return nil
		},
	}
}
