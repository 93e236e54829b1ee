package definition

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

const maxContextLength = 2000

// SubmitInput proposes a definition of a term within a debate.
type SubmitInput struct {
	DebateID   uuid.UUID
	Term       string
	Definition string
	Context    *string
	References []domain.Reference
}

// Validate checks the fields that do not depend on stored state. Term and
// definition text rules run in the service so their codes surface unchanged.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.DebateID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "debate_id", Message: "required"})
	}
	errs = append(errs, validateContext(i.Context)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SupersedeInput replaces a definition with a new version. An empty Term
// keeps the original's term.
type SupersedeInput struct {
	DefinitionID uuid.UUID
	Term         string
	Definition   string
	Context      *string
	References   []domain.Reference
}

// Validate checks SupersedeInput fields.
func (i SupersedeInput) Validate() error {
	var errs []domain.FieldError

	if i.DefinitionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "definition_id", Message: "required"})
	}
	errs = append(errs, validateContext(i.Context)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VoteInput is the caller's support or opposition for a definition.
type VoteInput struct {
	DefinitionID uuid.UUID
	Support      bool
}

// Validate checks VoteInput fields.
func (i VoteInput) Validate() error {
	if i.DefinitionID == uuid.Nil {
		return domain.NewValidationError("definition_id", "required")
	}
	return nil
}

func validateContext(ctx *string) []domain.FieldError {
	if ctx == nil {
		return nil
	}
	if utf8.RuneCountInString(strings.TrimSpace(*ctx)) > maxContextLength {
		return []domain.FieldError{{Field: "context", Message: fmt.Sprintf("max %d characters", maxContextLength)}}
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
