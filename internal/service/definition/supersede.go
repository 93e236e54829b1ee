package definition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// Supersede creates a new PROPOSED version of a definition and links the
// original to it. The original becomes DEPRECATED if it was ACCEPTED and
// CONTESTED otherwise. Both rows change in one transaction.
func (s *Service) Supersede(ctx context.Context, input SupersedeInput) (*SupersedeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target, err := s.getDefinition(ctx, input.DefinitionID)
	if err != nil {
		return nil, err
	}

	var result SupersedeResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lockActiveDebate(txCtx, target.DebateID); err != nil {
			return err
		}
		if err := s.requireParticipant(txCtx, target.DebateID, userID); err != nil {
			return err
		}

		original, err := s.definitions.GetForUpdate(txCtx, input.DefinitionID)
		if err != nil {
			return fmt.Errorf("lock definition: %w", err)
		}
		if original.IsSuperseded() {
			return domain.ErrInvalidTransition.WithMessage("definition is already superseded by %s", *original.SupersededByID)
		}
		if original.Status == domain.DefinitionStatusDeprecated {
			return domain.ErrInvalidTransition.WithMessage("deprecated definitions cannot be superseded")
		}

		term := input.Term
		if strings.TrimSpace(term) == "" {
			term = original.Term
		}
		if err := s.validatePayload(term, input.Definition, input.References); err != nil {
			return err
		}

		now := s.now()
		successor, err := s.definitions.Create(txCtx,
			s.newDefinition(original.DebateID, userID, term, input.Definition, input.Context, input.References))
		if err != nil {
			return fmt.Errorf("create successor: %w", err)
		}

		retired := original.Status.RetiredStatus()
		linked, err := s.definitions.LinkSuccessor(txCtx, original.ID, successor.ID, retired)
		if err != nil {
			return fmt.Errorf("link successor: %w", err)
		}

		result.Original = linked
		result.Successor = successor
		result.Events = append(result.Events,
			definitionEvent(domain.EventDefinitionSuperseded, linked, now),
			definitionEvent(domain.EventDefinitionProposed, successor, now),
		)
		if retired == domain.DefinitionStatusDeprecated {
			result.Events = append(result.Events, definitionEvent(domain.EventDefinitionDeprecated, linked, now))
		}
		return nil
	})
	if err != nil {
		return nil, surfaceConflict(err)
	}

	s.publish(ctx, result.Events)

	s.log.InfoContext(ctx, "definition superseded",
		slog.String("user_id", userID.String()),
		slog.String("original_id", result.Original.ID.String()),
		slog.String("successor_id", result.Successor.ID.String()),
		slog.String("original_status", result.Original.Status.String()),
	)

	return &result, nil
}
