package debate

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

type debateRepo interface {
	Create(ctx context.Context, d domain.Debate) (*domain.Debate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	UpdateState(ctx context.Context, d domain.Debate) (*domain.Debate, error)
}

type participantRepo interface {
	Create(ctx context.Context, p domain.Participant) (*domain.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Participant, error)
	GetActiveByUser(ctx context.Context, debateID, userID uuid.UUID) (*domain.Participant, error)
	ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Participant, error)
	ActiveIDs(ctx context.Context, debateID uuid.UUID, roles []domain.Role) ([]uuid.UUID, error)
	CountActiveByRole(ctx context.Context, debateID uuid.UUID, role domain.Role) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ParticipantStatus) (*domain.Participant, error)
}

type argumentRepo interface {
	HasSubmitted(ctx context.Context, participantID uuid.UUID, turn int) (bool, error)
	CreateSubmission(ctx context.Context, s domain.ArgumentSubmission) ([]domain.Argument, error)
	FilterInDebate(ctx context.Context, debateID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	SubmittedParticipantIDs(ctx context.Context, debateID uuid.UUID, turn int, participantIDs []uuid.UUID) ([]uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Argument, error)
	ListByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Argument, error)
}

type voteRepo interface {
	UpsertArgumentVote(ctx context.Context, argumentID, userID uuid.UUID, support bool) (domain.Vote, error)
	ListArgumentVotes(ctx context.Context, argumentID uuid.UUID) ([]domain.Vote, error)
	ListArgumentVotesByDebate(ctx context.Context, debateID uuid.UUID) ([]domain.Vote, error)
}

type winConditionRepo interface {
	Create(ctx context.Context, w domain.WinCondition) (*domain.WinCondition, error)
	GetByDebate(ctx context.Context, debateID uuid.UUID) (*domain.WinCondition, error)
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

// Config holds the tunables of the turn engine.
type Config struct {
	// ConflictRetries is how many times a transaction aborted by a write
	// conflict is re-run before ErrConcurrentModification is returned.
	ConflictRetries           int
	MaxArgumentsPerSubmission int
	Content                   content.Rules

	// OnRetry, when set, is called with the operation name before each retry.
	OnRetry func(op string)
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		ConflictRetries:           1,
		MaxArgumentsPerSubmission: 10,
		Content:                   content.DefaultRules(),
	}
}

// Service runs the turn engine: submissions, side completion, turn advancement
// and the final verdict, plus the debate lifecycle around it.
type Service struct {
	log          *slog.Logger
	cfg          Config
	debates      debateRepo
	participants participantRepo
	arguments    argumentRepo
	votes        voteRepo
	wins         winConditionRepo
	tx           txManager
	events       eventPublisher
	now          func() time.Time
}

// NewService creates a new debate service.
func NewService(
	log *slog.Logger,
	cfg Config,
	debates debateRepo,
	participants participantRepo,
	arguments argumentRepo,
	votes voteRepo,
	wins winConditionRepo,
	tx txManager,
	events eventPublisher,
) *Service {
	if cfg.ConflictRetries < 0 {
		cfg.ConflictRetries = 0
	}
	if cfg.MaxArgumentsPerSubmission <= 0 {
		cfg.MaxArgumentsPerSubmission = DefaultConfig().MaxArgumentsPerSubmission
	}
	if cfg.Content == (content.Rules{}) {
		cfg.Content = content.DefaultRules()
	}
	return &Service{
		log:          log.With("service", "debate"),
		cfg:          cfg,
		debates:      debates,
		participants: participants,
		arguments:    arguments,
		votes:        votes,
		wins:         wins,
		tx:           tx,
		events:       events,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// runInTx runs fn in a transaction and re-runs it from scratch while the
// commit aborts with a write conflict, up to cfg.ConflictRetries extra times.
func (s *Service) runInTx(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	for attempt := 0; ; attempt++ {
		err := s.tx.RunInTx(ctx, fn)
		if err == nil || !isWriteConflict(err) {
			return err
		}
		if attempt >= s.cfg.ConflictRetries {
			s.log.WarnContext(ctx, "write conflict persisted",
				slog.String("op", op),
				slog.Int("attempts", attempt+1),
				slog.String("error", err.Error()),
			)
			return domain.ErrConcurrentModification.WithCause(err)
		}
		s.log.InfoContext(ctx, "retrying after write conflict",
			slog.String("op", op),
			slog.Int("attempt", attempt+1),
		)
		if s.cfg.OnRetry != nil {
			s.cfg.OnRetry(op)
		}
	}
}

// isWriteConflict reports a retryable abort. A coded error whose kind is
// ErrConflict (ErrConcurrentModification) already exhausted its retries.
func isWriteConflict(err error) bool {
	if !errors.Is(err, domain.ErrConflict) {
		return false
	}
	var de *domain.Error
	return !errors.As(err, &de)
}

func (s *Service) publish(ctx context.Context, events []domain.Event) {
	if s.events == nil || len(events) == 0 {
		return
	}
	s.events.Publish(ctx, events...)
}

// lockDebate loads the debate row under a row lock.
func (s *Service) lockDebate(ctx context.Context, id uuid.UUID) (*domain.Debate, error) {
	d, err := s.debates.GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDebateNotFound.WithCause(err)
		}
		return nil, fmt.Errorf("lock debate: %w", err)
	}
	return d, nil
}
