package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/definition"
)

// definitionService defines the definition lifecycle operations needed by DefinitionHandler.
type definitionService interface {
	Submit(ctx context.Context, input definition.SubmitInput) (*domain.Definition, error)
	Accept(ctx context.Context, definitionID uuid.UUID) (*definition.AcceptResult, error)
	Supersede(ctx context.Context, input definition.SupersedeInput) (*definition.SupersedeResult, error)
	Vote(ctx context.Context, input definition.VoteInput) (*definition.VoteResult, error)
	Endorse(ctx context.Context, definitionID uuid.UUID) (*definition.EndorseResult, error)
	GetChain(ctx context.Context, definitionID uuid.UUID) ([]domain.Definition, error)
	ListDefinitions(ctx context.Context, debateID uuid.UUID) ([]domain.DefinitionSummary, error)
}

// DefinitionHandler serves definition endpoints.
type DefinitionHandler struct {
	svc definitionService
	log *slog.Logger
}

// NewDefinitionHandler creates a DefinitionHandler.
func NewDefinitionHandler(svc definitionService, logger *slog.Logger) *DefinitionHandler {
	return &DefinitionHandler{svc: svc, log: logger.With("handler", "definition")}
}

// Submit handles POST /debates/{id}/definitions.
func (h *DefinitionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	debateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req definitionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := h.svc.Submit(r.Context(), definition.SubmitInput{
		DebateID:   debateID,
		Term:       req.Term,
		Definition: req.Definition,
		Context:    req.Context,
		References: toReferences(req.References),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDefinitionResponse(d))
}

// List handles GET /debates/{id}/definitions.
func (h *DefinitionHandler) List(w http.ResponseWriter, r *http.Request) {
	debateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	defs, err := h.svc.ListDefinitions(r.Context(), debateID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefinitionSummaries(defs))
}

// Accept handles POST /definitions/{id}/accept.
func (h *DefinitionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.Accept(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAcceptResponse(res))
}

// Supersede handles POST /definitions/{id}/supersede.
func (h *DefinitionHandler) Supersede(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req definitionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Supersede(r.Context(), definition.SupersedeInput{
		DefinitionID: id,
		Term:         req.Term,
		Definition:   req.Definition,
		Context:      req.Context,
		References:   toReferences(req.References),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, supersedeResponse{
		Original:  toDefinitionResponse(res.Original),
		Successor: toDefinitionResponse(res.Successor),
	})
}

// Endorse handles POST /definitions/{id}/endorse.
func (h *DefinitionHandler) Endorse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.Endorse(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, endorseResponse{
		Definition: toDefinitionResponse(res.Definition),
		Endorsed:   true,
		Created:    res.Created,
	})
}

// Vote handles POST /definitions/{id}/votes.
func (h *DefinitionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	support, ok := decodeVote(w, r, h.log)
	if !ok {
		return
	}

	res, err := h.svc.Vote(r.Context(), definition.VoteInput{
		DefinitionID: id,
		Support:      support,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{
		TargetID:   res.Vote.TargetID,
		Support:    res.Vote.Support,
		NetVotes:   res.NetVotes,
		Definition: toDefinitionResponse(res.Definition),
	})
}

// Chain handles GET /definitions/{id}/chain.
func (h *DefinitionHandler) Chain(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	chain, err := h.svc.GetChain(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDefinitionResponses(chain))
}
