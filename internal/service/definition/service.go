package definition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/content"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type definitionRepo interface {
	Create(ctx context.Context, d domain.Definition) (*domain.Definition, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Definition, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Definition, error)
	GetPredecessor(ctx context.Context, id uuid.UUID) (*domain.Definition, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.DefinitionStatus, acceptedAt *time.Time) (*domain.Definition, error)
	LinkSuccessor(ctx context.Context, originalID, successorID uuid.UUID, status domain.DefinitionStatus) (*domain.Definition, error)
	ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Definition, error)
	Endorse(ctx context.Context, definitionID, userID uuid.UUID) (bool, error)
	CountEndorsements(ctx context.Context, debateID uuid.UUID) (map[uuid.UUID]int, error)
}

type debateRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
}

type participantRepo interface {
	GetActiveByUser(ctx context.Context, debateID, userID uuid.UUID) (*domain.Participant, error)
}

type voteRepo interface {
	UpsertDefinitionVote(ctx context.Context, definitionID, userID uuid.UUID, support bool) (domain.Vote, error)
	ListDefinitionVotes(ctx context.Context, definitionID uuid.UUID) ([]domain.Vote, error)
	ListDefinitionVotesByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Vote, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages the lifecycle of shared term definitions within a debate.
type Service struct {
	log          *slog.Logger
	rules        content.Rules
	definitions  definitionRepo
	debates      debateRepo
	participants participantRepo
	votes        voteRepo
	tx           txManager
	events       eventPublisher
	now          func() time.Time
}

// NewService creates a new definition service.
func NewService(
	log *slog.Logger,
	rules content.Rules,
	definitions definitionRepo,
	debates debateRepo,
	participants participantRepo,
	votes voteRepo,
	tx txManager,
	events eventPublisher,
) *Service {
	if rules == (content.Rules{}) {
		rules = content.DefaultRules()
	}
	return &Service{
		log:          log.With("service", "definition"),
		rules:        rules,
		definitions:  definitions,
		debates:      debates,
		participants: participants,
		votes:        votes,
		tx:           tx,
		events:       events,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) publish(ctx context.Context, events []domain.Event) {
	if s.events == nil || len(events) == 0 {
		return
	}
	s.events.Publish(ctx, events...)
}

func (s *Service) getDefinition(ctx context.Context, id uuid.UUID) (*domain.Definition, error) {
	d, err := s.definitions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDefinitionNotFound.WithCause(err)
		}
		return nil, fmt.Errorf("get definition: %w", err)
	}
	return d, nil
}

// requireParticipant fails with ErrNotParticipant unless userID is an ACTIVE
// participant of the debate.
func (s *Service) requireParticipant(ctx context.Context, debateID, userID uuid.UUID) error {
	if _, err := s.participants.GetActiveByUser(ctx, debateID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotParticipant
		}
		return fmt.Errorf("get participant: %w", err)
	}
	return nil
}

// lockActiveDebate locks the debate row and fails with ErrDebateNotActive
// unless the debate is IN_PROGRESS.
func (s *Service) lockActiveDebate(ctx context.Context, debateID uuid.UUID) (*domain.Debate, error) {
	d, err := s.debates.GetForUpdate(ctx, debateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDebateNotFound.WithCause(err)
		}
		return nil, fmt.Errorf("lock debate: %w", err)
	}
	if !d.IsInProgress() {
		return nil, domain.ErrDebateNotActive.WithMessage("debate is %s", d.Status)
	}
	return d, nil
}

// surfaceConflict turns a storage write conflict into ErrConcurrentModification.
// Definition operations are not retried.
func surfaceConflict(err error) error {
	var de *domain.Error
	if errors.Is(err, domain.ErrConflict) && !errors.As(err, &de) {
		return domain.ErrConcurrentModification.WithCause(err)
	}
	return err
}

func definitionEvent(t domain.EventType, d *domain.Definition, now time.Time) domain.Event {
	id, proposer := d.ID, d.ProposerID
	return domain.Event{
		Type:         t,
		DebateID:     d.DebateID,
		OccurredAt:   now,
		DefinitionID: &id,
		Term:         d.Term,
		ProposerID:   &proposer,
	}
}
