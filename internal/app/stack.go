package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/debate-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debate-backend/internal/adapter/postgres/argument"
	debaterepo "github.com/heartmarshall/debate-backend/internal/adapter/postgres/debate"
	definitionrepo "github.com/heartmarshall/debate-backend/internal/adapter/postgres/definition"
	"github.com/heartmarshall/debate-backend/internal/adapter/postgres/participant"
	"github.com/heartmarshall/debate-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/debate-backend/internal/adapter/postgres/wincondition"
	"github.com/heartmarshall/debate-backend/internal/auth"
	"github.com/heartmarshall/debate-backend/internal/config"
	"github.com/heartmarshall/debate-backend/internal/event"
	"github.com/heartmarshall/debate-backend/internal/metrics"
	"github.com/heartmarshall/debate-backend/internal/service/content"
	"github.com/heartmarshall/debate-backend/internal/service/debate"
	"github.com/heartmarshall/debate-backend/internal/service/definition"
	"github.com/heartmarshall/debate-backend/internal/transport/middleware"
	"github.com/heartmarshall/debate-backend/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Stack is the wired application graph on top of a connection pool.
type Stack struct {
	Bus         *event.Bus
	Metrics     *metrics.Metrics
	Tokens      *auth.JWTManager
	Debates     *debate.Service
	Definitions *definition.Service
	DebateRepo  *debaterepo.Repo

	limiter *middleware.RateLimiter
}

// NewStack builds repositories, services and event subscribers.
func NewStack(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) (*Stack, error) {
	isolation, err := postgres.ParseIsolation(cfg.Database.TxIsolation)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	txm := postgres.NewTxManager(pool, isolation)

	debates := debaterepo.New(pool)
	participants := participant.New(pool)
	arguments := argument.New(pool)
	definitions := definitionrepo.New(pool)
	votes := vote.New(pool)
	wins := wincondition.New(pool)

	bus := event.NewBus(log)
	m := metrics.New()
	event.NewNotifier(log).Register(bus)
	m.Register(bus)

	rules := content.Rules{
		MinContentLength: cfg.Debate.MinContentLength,
		MaxReferences:    cfg.Debate.MaxReferencesPerItem,
	}

	debateSvc := debate.NewService(log, debate.Config{
		ConflictRetries:           cfg.Debate.ConflictRetries,
		MaxArgumentsPerSubmission: cfg.Debate.MaxArgumentsPerSubmission,
		Content:                   rules,
		OnRetry:                   m.ConflictRetried,
	}, debates, participants, arguments, votes, wins, txm, bus)

	definitionSvc := definition.NewService(log, rules, definitions, debates, participants, votes, txm, bus)

	s := &Stack{
		Bus:         bus,
		Metrics:     m,
		Tokens:      auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Debates:     debateSvc,
		Definitions: definitionSvc,
		DebateRepo:  debates,
	}
	if cfg.RateLimit.Enabled() {
		s.limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimitCleanup)
	}
	return s, nil
}

// Handler returns the HTTP API of the stack.
func (s *Stack) Handler(cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) http.Handler {
	return rest.NewRouter(rest.RouterDeps{
		Logger:        log,
		Tokens:        s.Tokens,
		CORS:          cfg.CORS,
		Metrics:       s.Metrics,
		RateLimiter:   s.limiter,
		InternalToken: cfg.Auth.InternalToken,
		Health:        rest.NewHealthHandler(Version, map[string]rest.Pinger{"database": pool}),
		Debates:       rest.NewDebateHandler(s.Debates, log),
		Definitions:   rest.NewDefinitionHandler(s.Definitions, log),
	})
}

// Close stops background work owned by the stack.
func (s *Stack) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}
