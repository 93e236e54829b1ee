package event

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

// Notifier turns committed events into notification log lines. Delivery
// channels (email, push) subscribe next to it.
type Notifier struct {
	log *slog.Logger
}

// NewNotifier creates a Notifier.
func NewNotifier(log *slog.Logger) *Notifier {
	return &Notifier{log: log.With("component", "notifier")}
}

// Register subscribes the notifier to every event on bus.
func (n *Notifier) Register(bus *Bus) {
	bus.SubscribeAll(n.Handle)
}

// Handle logs the audience and subject of one event.
func (n *Notifier) Handle(ctx context.Context, e domain.Event) {
	attrs := []any{
		slog.String("event", e.Type.String()),
		slog.String("debate_id", e.DebateID.String()),
	}

	switch e.Type {
	case domain.EventSideSwitched, domain.EventTurnAdvanced, domain.EventDebateStarted:
		attrs = append(attrs,
			slog.String("notify_side", e.Side.String()),
			slog.Int("turn", e.TurnNumber))
	case domain.EventDebateCompleted:
		winner := "tie"
		if e.WinningRole != nil {
			winner = e.WinningRole.String()
		}
		attrs = append(attrs, slog.String("notify", "all_participants"), slog.String("winner", winner))
	case domain.EventParticipantForfeited:
		if e.ParticipantID != nil {
			attrs = append(attrs, slog.String("participant_id", e.ParticipantID.String()))
		}
	default:
		if e.DefinitionID != nil {
			attrs = append(attrs, slog.String("definition_id", e.DefinitionID.String()))
		}
		if e.ProposerID != nil {
			attrs = append(attrs, slog.String("notify_user", e.ProposerID.String()))
		}
		if e.Term != "" {
			attrs = append(attrs, slog.String("term", e.Term))
		}
	}

	n.log.InfoContext(ctx, "notification queued", attrs...)
}
