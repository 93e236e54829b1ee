package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/config"
	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/transport/middleware"
)

// TokenValidator resolves a bearer token to a user id.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// HTTPMetrics instruments requests and exposes the collected metrics.
type HTTPMetrics interface {
	Middleware(next http.Handler) http.Handler
	Handler() http.Handler
}

// RouterDeps holds everything NewRouter wires together. Metrics and
// RateLimiter are optional.
type RouterDeps struct {
	Logger      *slog.Logger
	Tokens      TokenValidator
	CORS        config.CORSConfig
	Metrics     HTTPMetrics
	RateLimiter *middleware.RateLimiter
	// InternalToken guards trusted-caller routes. Empty disables them.
	InternalToken string

	Health      *HealthHandler
	Debates     *DebateHandler
	Definitions *DefinitionHandler
}

// NewRouter builds the HTTP handler of the API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID, middleware.Recovery(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		middleware.Logger(d.Logger),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, domain.CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	r.Group(func(r chi.Router) {
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Limit())
		}

		r.Get("/debates/{id}/standing", d.Debates.Standing)
		r.Get("/debates/{id}/definitions", d.Definitions.List)
		r.Get("/definitions/{id}/chain", d.Definitions.Chain)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Post("/debates", d.Debates.Create)
			r.Post("/debates/{id}/participants", d.Debates.Join)
			r.Post("/debates/{id}/start", d.Debates.Start)
			r.Post("/debates/{id}/arguments", d.Debates.SubmitArguments)
			r.Post("/arguments/{id}/votes", d.Debates.VoteArgument)

			r.Post("/debates/{id}/definitions", d.Definitions.Submit)
			r.Post("/definitions/{id}/accept", d.Definitions.Accept)
			r.Post("/definitions/{id}/supersede", d.Definitions.Supersede)
			r.Post("/definitions/{id}/endorse", d.Definitions.Endorse)
			r.Post("/definitions/{id}/votes", d.Definitions.Vote)
		})
	})

	r.With(middleware.RequireInternalToken(d.InternalToken)).
		Post("/debates/{id}/participants/{pid}/forfeit", d.Debates.Forfeit)

	return r
}
