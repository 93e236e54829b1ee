package definition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// Accept moves a PROPOSED definition to ACCEPTED. If the definition replaced
// an older version, that predecessor is forced to DEPRECATED in the same
// transaction.
func (s *Service) Accept(ctx context.Context, definitionID uuid.UUID) (*AcceptResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if definitionID == uuid.Nil {
		return nil, domain.NewValidationError("definition_id", "required")
	}

	target, err := s.getDefinition(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	var result AcceptResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.lockActiveDebate(txCtx, target.DebateID); err != nil {
			return err
		}
		if err := s.requireParticipant(txCtx, target.DebateID, userID); err != nil {
			return err
		}

		def, err := s.definitions.GetForUpdate(txCtx, definitionID)
		if err != nil {
			return fmt.Errorf("lock definition: %w", err)
		}
		if def.Status != domain.DefinitionStatusProposed {
			return domain.ErrInvalidTransition.WithMessage("definition is %s, only PROPOSED can be accepted", def.Status)
		}

		now := s.now()
		accepted, err := s.definitions.UpdateStatus(txCtx, def.ID, domain.DefinitionStatusAccepted, &now)
		if err != nil {
			return fmt.Errorf("accept definition: %w", err)
		}
		result.Definition = accepted
		result.Events = append(result.Events, definitionEvent(domain.EventDefinitionAccepted, accepted, now))

		prev, err := s.definitions.GetPredecessor(txCtx, def.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get predecessor: %w", err)
		}
		if prev.Status == domain.DefinitionStatusDeprecated {
			return nil
		}

		deprecated, err := s.definitions.UpdateStatus(txCtx, prev.ID, domain.DefinitionStatusDeprecated, nil)
		if err != nil {
			return fmt.Errorf("deprecate predecessor: %w", err)
		}
		result.Deprecated = deprecated
		result.Events = append(result.Events, definitionEvent(domain.EventDefinitionDeprecated, deprecated, now))
		return nil
	})
	if err != nil {
		return nil, surfaceConflict(err)
	}

	s.publish(ctx, result.Events)

	s.log.InfoContext(ctx, "definition accepted",
		slog.String("user_id", userID.String()),
		slog.String("definition_id", definitionID.String()),
		slog.Bool("deprecated_predecessor", result.Deprecated != nil),
	)

	return &result, nil
}
