package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/debate"
)

// debateService defines the turn engine operations needed by DebateHandler.
type debateService interface {
	CreateDebate(ctx context.Context, input debate.CreateDebateInput) (*domain.Debate, *domain.Participant, error)
	JoinDebate(ctx context.Context, input debate.JoinDebateInput) (*domain.Participant, error)
	StartDebate(ctx context.Context, debateID uuid.UUID) (*domain.Debate, error)
	SubmitArguments(ctx context.Context, input debate.SubmitArgumentsInput) (*debate.SubmissionResult, error)
	ForfeitParticipant(ctx context.Context, input debate.ForfeitInput) (*debate.ForfeitResult, error)
	VoteOnArgument(ctx context.Context, input debate.VoteInput) (*debate.VoteResult, error)
	GetStanding(ctx context.Context, debateID uuid.UUID) (*debate.Standing, error)
}

// DebateHandler serves debate and argument endpoints.
type DebateHandler struct {
	svc debateService
	log *slog.Logger
}

// NewDebateHandler creates a DebateHandler.
func NewDebateHandler(svc debateService, logger *slog.Logger) *DebateHandler {
	return &DebateHandler{svc: svc, log: logger.With("handler", "debate")}
}

// Create handles POST /debates.
func (h *DebateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDebateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, p, err := h.svc.CreateDebate(r.Context(), debate.CreateDebateInput{
		Title:           req.Title,
		Format:          domain.DebateFormat(req.Format),
		TurnsPerSide:    req.TurnsPerSide,
		MinReferences:   req.MinReferences,
		MaxParticipants: req.MaxParticipants,
		CreatorRole:     domain.Role(req.CreatorRole),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createDebateResponse{
		Debate:      toDebateResponse(d),
		Participant: toParticipantResponse(*p),
	})
}

// Join handles POST /debates/{id}/participants.
func (h *DebateHandler) Join(w http.ResponseWriter, r *http.Request) {
	debateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req joinDebateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.JoinDebate(r.Context(), debate.JoinDebateInput{
		DebateID: debateID,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toParticipantResponse(*p))
}

// Start handles POST /debates/{id}/start.
func (h *DebateHandler) Start(w http.ResponseWriter, r *http.Request) {
	debateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	d, err := h.svc.StartDebate(r.Context(), debateID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDebateResponse(d))
}

// SubmitArguments handles POST /debates/{id}/arguments.
func (h *DebateHandler) SubmitArguments(w http.ResponseWriter, r *http.Request) {
	debateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req submitArgumentsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	payloads := make([]debate.ArgumentPayload, len(req.Arguments))
	for i, a := range req.Arguments {
		payloads[i] = debate.ArgumentPayload{
			Content:      a.Content,
			ResponseToID: a.ResponseToID,
			References:   toReferences(a.References),
		}
	}

	res, err := h.svc.SubmitArguments(r.Context(), debate.SubmitArgumentsInput{
		DebateID:  debateID,
		Arguments: payloads,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, submissionResponse{
		Arguments:        toArgumentResponses(res.Arguments),
		progressResponse: toProgressResponse(res.Progress),
	})
}

// Forfeit handles POST /debates/{id}/participants/{pid}/forfeit.
func (h *DebateHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	debateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	participantID, ok := pathID(w, r, "pid")
	if !ok {
		return
	}

	res, err := h.svc.ForfeitParticipant(r.Context(), debate.ForfeitInput{
		DebateID:      debateID,
		ParticipantID: participantID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, forfeitResponse{
		Participant:      toParticipantResponse(*res.Participant),
		progressResponse: toProgressResponse(res.Progress),
	})
}

// Standing handles GET /debates/{id}/standing.
func (h *DebateHandler) Standing(w http.ResponseWriter, r *http.Request) {
	debateID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	standing, err := h.svc.GetStanding(r.Context(), debateID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toStandingResponse(standing))
}

// VoteArgument handles POST /arguments/{id}/votes.
func (h *DebateHandler) VoteArgument(w http.ResponseWriter, r *http.Request) {
	argumentID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	support, ok := decodeVote(w, r, h.log)
	if !ok {
		return
	}

	res, err := h.svc.VoteOnArgument(r.Context(), debate.VoteInput{
		ArgumentID: argumentID,
		Support:    support,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, voteResponse{
		TargetID: res.Vote.TargetID,
		Support:  res.Vote.Support,
		NetVotes: res.NetVotes,
	})
}

// decodeVote reads a vote body. The support field is mandatory so that an
// empty object is not silently taken as opposition.
func decodeVote(w http.ResponseWriter, r *http.Request, log *slog.Logger) (bool, bool) {
	var req voteRequest
	if !decodeJSON(w, r, &req) {
		return false, false
	}
	if req.Support == nil {
		handleError(w, r, log, domain.NewValidationError("support", "required"))
		return false, false
	}
	return *req.Support, true
}
