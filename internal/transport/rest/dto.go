package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
	"github.com/heartmarshall/debate-backend/internal/service/debate"
	"github.com/heartmarshall/debate-backend/internal/service/definition"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON object from the request body into v.
// It writes a 400 response and returns false when the body is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		msg := "invalid request body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "request body too large"
		} else if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		writeError(w, http.StatusBadRequest, codeBadRequest, msg)
		return false
	}
	return true
}

// pathID parses the named chi URL parameter as a UUID.
// It writes a 400 response and returns false when the value is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, fmt.Sprintf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type referenceRequest struct {
	Type   string  `json:"type"`
	Title  string  `json:"title"`
	URL    *string `json:"url,omitempty"`
	Author *string `json:"author,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

func toReferences(in []referenceRequest) []domain.Reference {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Reference, len(in))
	for i, r := range in {
		out[i] = domain.Reference{
			Type:   domain.ReferenceType(r.Type),
			Title:  r.Title,
			URL:    r.URL,
			Author: r.Author,
			Notes:  r.Notes,
		}
	}
	return out
}

type createDebateRequest struct {
	Title           string `json:"title"`
	Format          string `json:"format"`
	TurnsPerSide    int    `json:"turnsPerSide"`
	MinReferences   int    `json:"minReferences"`
	MaxParticipants int    `json:"maxParticipants"`
	CreatorRole     string `json:"creatorRole"`
}

type joinDebateRequest struct {
	Role string `json:"role"`
}

type argumentRequest struct {
	Content      string             `json:"content"`
	ResponseToID *uuid.UUID         `json:"responseToId,omitempty"`
	References   []referenceRequest `json:"references"`
}

type submitArgumentsRequest struct {
	Arguments []argumentRequest `json:"arguments"`
}

type voteRequest struct {
	Support *bool `json:"support"`
}

type definitionRequest struct {
	Term       string             `json:"term"`
	Definition string             `json:"definition"`
	Context    *string            `json:"context,omitempty"`
	References []referenceRequest `json:"references"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type debateResponse struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Status            string     `json:"status"`
	Format            string     `json:"format"`
	MaxParticipants   int        `json:"maxParticipants"`
	TurnsPerSide      int        `json:"turnsPerSide"`
	MinReferences     int        `json:"minReferences"`
	CurrentTurnSide   string     `json:"currentTurnSide"`
	CurrentTurnNumber int        `json:"currentTurnNumber"`
	Version           int64      `json:"version"`
	StartedAt         *time.Time `json:"startedAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func toDebateResponse(d *domain.Debate) *debateResponse {
	if d == nil {
		return nil
	}
	return &debateResponse{
		ID:                d.ID,
		Title:             d.Title,
		Status:            string(d.Status),
		Format:            string(d.Format),
		MaxParticipants:   d.MaxParticipants,
		TurnsPerSide:      d.TurnsPerSide,
		MinReferences:     d.MinReferences,
		CurrentTurnSide:   string(d.CurrentTurnSide),
		CurrentTurnNumber: d.CurrentTurnNumber,
		Version:           d.Version,
		StartedAt:         d.StartedAt,
		CompletedAt:       d.CompletedAt,
		CreatedAt:         d.CreatedAt,
	}
}

type participantResponse struct {
	ID       uuid.UUID `json:"id"`
	DebateID uuid.UUID `json:"debateId"`
	UserID   uuid.UUID `json:"userId"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

func toParticipantResponse(p domain.Participant) participantResponse {
	return participantResponse{
		ID:       p.ID,
		DebateID: p.DebateID,
		UserID:   p.UserID,
		Role:     string(p.Role),
		Status:   string(p.Status),
		JoinedAt: p.JoinedAt,
	}
}

type referenceResponse struct {
	ID     uuid.UUID `json:"id"`
	Type   string    `json:"type"`
	Title  string    `json:"title"`
	URL    *string   `json:"url,omitempty"`
	Author *string   `json:"author,omitempty"`
	Notes  *string   `json:"notes,omitempty"`
}

func toReferenceResponses(refs []domain.Reference) []referenceResponse {
	out := make([]referenceResponse, len(refs))
	for i, r := range refs {
		out[i] = referenceResponse{
			ID:     r.ID,
			Type:   string(r.Type),
			Title:  r.Title,
			URL:    r.URL,
			Author: r.Author,
			Notes:  r.Notes,
		}
	}
	return out
}

type argumentResponse struct {
	ID            uuid.UUID           `json:"id"`
	DebateID      uuid.UUID           `json:"debateId"`
	ParticipantID uuid.UUID           `json:"participantId"`
	Role          string              `json:"role"`
	TurnNumber    int                 `json:"turnNumber"`
	Content       string              `json:"content"`
	ResponseToID  *uuid.UUID          `json:"responseToId,omitempty"`
	References    []referenceResponse `json:"references"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func toArgumentResponses(args []domain.Argument) []argumentResponse {
	out := make([]argumentResponse, len(args))
	for i, a := range args {
		out[i] = argumentResponse{
			ID:            a.ID,
			DebateID:      a.DebateID,
			ParticipantID: a.ParticipantID,
			Role:          string(a.Role),
			TurnNumber:    a.TurnNumber,
			Content:       a.Content,
			ResponseToID:  a.ResponseToID,
			References:    toReferenceResponses(a.References),
			CreatedAt:     a.CreatedAt,
		}
	}
	return out
}

type winConditionResponse struct {
	Type          string    `json:"type"`
	WinningRole   *string   `json:"winningRole"`
	ProposerVotes int       `json:"proposerVotes"`
	OpposerVotes  int       `json:"opposerVotes"`
	DecidedAt     time.Time `json:"decidedAt"`
}

func toWinConditionResponse(w *domain.WinCondition) *winConditionResponse {
	if w == nil {
		return nil
	}
	return &winConditionResponse{
		Type:          string(w.Type),
		WinningRole:   roleString(w.WinningRole),
		ProposerVotes: w.ProposerVotes,
		OpposerVotes:  w.OpposerVotes,
		DecidedAt:     w.DecidedAt,
	}
}

// progressResponse reports what a write did to the turn cursor.
type progressResponse struct {
	Debate       *debateResponse       `json:"debate"`
	SideSwitched bool                  `json:"sideSwitched"`
	TurnAdvanced bool                  `json:"turnAdvanced"`
	Completed    bool                  `json:"completed"`
	WinningRole  *string               `json:"winningRole"`
	WinCondition *winConditionResponse `json:"winCondition,omitempty"`
}

func toProgressResponse(p debate.Progress) progressResponse {
	return progressResponse{
		Debate:       toDebateResponse(p.Debate),
		SideSwitched: p.SideSwitched,
		TurnAdvanced: p.TurnAdvanced,
		Completed:    p.Completed,
		WinningRole:  roleString(p.WinningRole),
		WinCondition: toWinConditionResponse(p.WinCondition),
	}
}

type submissionResponse struct {
	Arguments []argumentResponse `json:"arguments"`
	progressResponse
}

type forfeitResponse struct {
	Participant participantResponse `json:"participant"`
	progressResponse
}

type createDebateResponse struct {
	Debate      *debateResponse     `json:"debate"`
	Participant participantResponse `json:"participant"`
}

type voteResponse struct {
	TargetID uuid.UUID `json:"targetId"`
	Support  bool      `json:"support"`
	NetVotes int       `json:"netVotes"`

	// Definition is set for definition votes only.
	Definition *definitionResponse `json:"definition,omitempty"`
}

type standingResponse struct {
	Debate        *debateResponse       `json:"debate"`
	Participants  []participantResponse `json:"participants"`
	ProposerVotes int                   `json:"proposerVotes"`
	OpposerVotes  int                   `json:"opposerVotes"`
	Leader        *string               `json:"leader"`
	WinCondition  *winConditionResponse `json:"winCondition,omitempty"`
}

func toStandingResponse(s *debate.Standing) standingResponse {
	participants := make([]participantResponse, len(s.Participants))
	for i, p := range s.Participants {
		participants[i] = toParticipantResponse(p)
	}
	return standingResponse{
		Debate:        toDebateResponse(s.Debate),
		Participants:  participants,
		ProposerVotes: s.Totals.Proposer,
		OpposerVotes:  s.Totals.Opposer,
		Leader:        roleString(s.Leader),
		WinCondition:  toWinConditionResponse(s.WinCondition),
	}
}

type definitionResponse struct {
	ID             uuid.UUID           `json:"id"`
	DebateID       uuid.UUID           `json:"debateId"`
	ProposerID     uuid.UUID           `json:"proposerId"`
	Term           string              `json:"term"`
	Definition     string              `json:"definition"`
	Context        *string             `json:"context,omitempty"`
	Status         string              `json:"status"`
	SupersededByID *uuid.UUID          `json:"supersededById,omitempty"`
	AcceptedAt     *time.Time          `json:"acceptedAt,omitempty"`
	References     []referenceResponse `json:"references"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func toDefinitionResponse(d *domain.Definition) *definitionResponse {
	if d == nil {
		return nil
	}
	return &definitionResponse{
		ID:             d.ID,
		DebateID:       d.DebateID,
		ProposerID:     d.ProposerID,
		Term:           d.Term,
		Definition:     d.Text,
		Context:        d.Context,
		Status:         string(d.Status),
		SupersededByID: d.SupersededByID,
		AcceptedAt:     d.AcceptedAt,
		References:     toReferenceResponses(d.References),
		CreatedAt:      d.CreatedAt,
	}
}

func toDefinitionResponses(defs []domain.Definition) []*definitionResponse {
	out := make([]*definitionResponse, len(defs))
	for i := range defs {
		out[i] = toDefinitionResponse(&defs[i])
	}
	return out
}

type definitionSummaryResponse struct {
	definitionResponse
	NetVotes     int `json:"netVotes"`
	Endorsements int `json:"endorsements"`
}

func toDefinitionSummaries(in []domain.DefinitionSummary) []definitionSummaryResponse {
	out := make([]definitionSummaryResponse, len(in))
	for i := range in {
		out[i] = definitionSummaryResponse{
			definitionResponse: *toDefinitionResponse(&in[i].Definition),
			NetVotes:           in[i].NetVotes,
			Endorsements:       in[i].Endorsements,
		}
	}
	return out
}

type acceptResponse struct {
	Definition *definitionResponse `json:"definition"`
	Deprecated *definitionResponse `json:"deprecated,omitempty"`
}

func toAcceptResponse(r *definition.AcceptResult) acceptResponse {
	return acceptResponse{
		Definition: toDefinitionResponse(r.Definition),
		Deprecated: toDefinitionResponse(r.Deprecated),
	}
}

type supersedeResponse struct {
	Original  *definitionResponse `json:"original"`
	Successor *definitionResponse `json:"successor"`
}

type endorseResponse struct {
	Definition *definitionResponse `json:"definition"`
	Endorsed   bool                `json:"endorsed"`
	Created    bool                `json:"created"`
}

func roleString(r *domain.Role) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}
