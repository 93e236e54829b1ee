package debate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// CreateDebateInput
// ---------------------------------------------------------------------------

const (
	maxTitleLength  = 300
	maxTurnsPerSide = 20
	maxMinRefs      = 20
	maxParticipants = 100
)

// CreateDebateInput describes a new debate. The caller joins it with CreatorRole.
type CreateDebateInput struct {
	Title           string
	Format          domain.DebateFormat
	TurnsPerSide    int
	MinReferences   int
	MaxParticipants int
	CreatorRole     domain.Role
}

// Validate checks CreateDebateInput fields. Zero numeric values take defaults
// in the service, so only explicit out-of-range values are rejected.
func (i CreateDebateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)})
	}

	if !i.Format.IsValid() {
		errs = append(errs, domain.FieldError{Field: "format", Message: "invalid value"})
	}

	if i.TurnsPerSide < 0 || i.TurnsPerSide > maxTurnsPerSide {
		errs = append(errs, domain.FieldError{Field: "turns_per_side", Message: fmt.Sprintf("must be between 1 and %d", maxTurnsPerSide)})
	}

	if i.MinReferences < 0 || i.MinReferences > maxMinRefs {
		errs = append(errs, domain.FieldError{Field: "min_references", Message: fmt.Sprintf("must be between 0 and %d", maxMinRefs)})
	}

	if i.MaxParticipants != 0 && (i.MaxParticipants < 2 || i.MaxParticipants > maxParticipants) {
		errs = append(errs, domain.FieldError{Field: "max_participants", Message: fmt.Sprintf("must be between 2 and %d", maxParticipants)})
	}
	if i.Format == domain.DebateFormatOneVsOne && i.MaxParticipants > 2 {
		errs = append(errs, domain.FieldError{Field: "max_participants", Message: "one-vs-one debates have exactly 2 participants"})
	}

	if i.CreatorRole != "" {
		errs = append(errs, validateRole(i.Format, i.CreatorRole)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// JoinDebateInput
// ---------------------------------------------------------------------------

// JoinDebateInput adds the caller to an OPEN debate.
type JoinDebateInput struct {
	DebateID uuid.UUID
	Role     domain.Role
}

// Validate checks JoinDebateInput fields. The NEUTRAL-only-in-multi-sided rule
// needs the debate and is enforced by the service.
func (i JoinDebateInput) Validate() error {
	var errs []domain.FieldError

	if i.DebateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "debate_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateRole(format domain.DebateFormat, role domain.Role) []domain.FieldError {
	if !role.IsValid() {
		return []domain.FieldError{{Field: "role", Message: "invalid value"}}
	}
	if role == domain.RoleNeutral && format != domain.DebateFormatMultiSided {
		return []domain.FieldError{{Field: "role", Message: "neutral participants are only allowed in multi-sided debates"}}
	}
	return nil
}

// ---------------------------------------------------------------------------
// SubmitArgumentsInput
// ---------------------------------------------------------------------------

// ArgumentPayload is one argument of a submission.
type ArgumentPayload struct {
	Content      string
	ResponseToID *uuid.UUID
	References   []domain.Reference
}

// SubmitArgumentsInput is the caller's argument set for the current turn.
type SubmitArgumentsInput struct {
	DebateID  uuid.UUID
	Arguments []ArgumentPayload
}

// validateShape checks the parts of the input that do not depend on the
// debate. Content rules run later, after the state checks.
func (i SubmitArgumentsInput) validateShape(maxArguments int) error {
	if i.DebateID == uuid.Nil {
		return domain.NewValidationError("debate_id", "required")
	}
	if len(i.Arguments) == 0 {
		return domain.ErrInvalidArgument.WithMessage("at least one argument is required")
	}
	if len(i.Arguments) > maxArguments {
		return domain.ErrInvalidArgument.WithMessage("at most %d arguments per submission (got %d)", maxArguments, len(i.Arguments))
	}
	return nil
}

// ---------------------------------------------------------------------------
// VoteInput
// ---------------------------------------------------------------------------

// VoteInput is the caller's support or opposition for an argument.
type VoteInput struct {
	ArgumentID uuid.UUID
	Support    bool
}

// Validate checks VoteInput fields.
func (i VoteInput) Validate() error {
	if i.ArgumentID == uuid.Nil {
		return domain.NewValidationError("argument_id", "required")
	}
	return nil
}

// ---------------------------------------------------------------------------
// ForfeitInput
// ---------------------------------------------------------------------------

// ForfeitInput names the participant whose time ran out.
type ForfeitInput struct {
	DebateID      uuid.UUID
	ParticipantID uuid.UUID
}

// Validate checks ForfeitInput fields.
func (i ForfeitInput) Validate() error {
	var errs []domain.FieldError

	if i.DebateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "debate_id", Message: "required"})
	}
	if i.ParticipantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "participant_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
