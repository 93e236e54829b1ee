package definition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// Endorse records that the caller, an ACTIVE participant of the owning
// debate, backs the definition. Endorsing twice is a no-op; Created is false
// in that case.
func (s *Service) Endorse(ctx context.Context, definitionID uuid.UUID) (*EndorseResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if definitionID == uuid.Nil {
		return nil, domain.NewValidationError("definition_id", "required")
	}

	def, err := s.getDefinition(ctx, definitionID)
	if err != nil {
		return nil, err
	}

	if err := s.requireParticipant(ctx, def.DebateID, userID); err != nil {
		return nil, err
	}

	created, err := s.definitions.Endorse(ctx, def.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("endorse definition: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "definition endorsed",
			slog.String("user_id", userID.String()),
			slog.String("definition_id", def.ID.String()),
		)
	}

	return &EndorseResult{Definition: def, Created: created}, nil
}
