package definition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/content"
	"github.com/heartmarshall/debate-backend/pkg/ctxutil"
)

// Submit proposes a definition. Any ACTIVE participant may propose at any
// time while the debate is IN_PROGRESS; definitions are not turn-gated.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Definition, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	d, err := s.debates.GetByID(ctx, input.DebateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDebateNotFound.WithCause(err)
		}
		return nil, fmt.Errorf("get debate: %w", err)
	}
	if !d.IsInProgress() {
		return nil, domain.ErrDebateNotActive.WithMessage("debate is %s", d.Status)
	}

	if err := s.requireParticipant(ctx, d.ID, userID); err != nil {
		return nil, err
	}

	if err := s.validatePayload(input.Term, input.Definition, input.References); err != nil {
		return nil, err
	}

	now := s.now()
	def := s.newDefinition(d.ID, userID, input.Term, input.Definition, input.Context, input.References)

	var created *domain.Definition
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.definitions.Create(txCtx, def)
		if err != nil {
			return fmt.Errorf("create definition: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, []domain.Event{definitionEvent(domain.EventDefinitionProposed, created, now)})

	s.log.InfoContext(ctx, "definition proposed",
		slog.String("user_id", userID.String()),
		slog.String("debate_id", d.ID.String()),
		slog.String("definition_id", created.ID.String()),
		slog.String("term", created.Term),
	)

	return created, nil
}

func (s *Service) validatePayload(term, text string, refs []domain.Reference) error {
	if err := s.rules.ValidateDefinition(term, text); err != nil {
		return err
	}
	return s.rules.ValidateReferences(refs)
}

func (s *Service) newDefinition(debateID, proposerID uuid.UUID, term, text string, note *string, refs []domain.Reference) domain.Definition {
	now := s.now()
	id := uuid.New()
	term = strings.TrimSpace(term)
	return domain.Definition{
		ID:             id,
		DebateID:       debateID,
		ProposerID:     proposerID,
		Term:           term,
		TermNormalized: domain.NormalizeTerm(term),
		Text:           strings.TrimSpace(text),
		Context:        trimOrNil(note),
		Status:         domain.DefinitionStatusProposed,
		CreatedAt:      now,
		UpdatedAt:      now,
		References:     domain.AttachToDefinition(content.NormalizeReferences(refs), id, now),
	}
}
