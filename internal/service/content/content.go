// Package content validates argument and definition payloads before they reach
// storage. Everything here is pure: no I/O, no clock, deterministic output.
package content

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

const (
	DefaultMinContentLength = 10
	DefaultMaxReferences    = 20
	MaxTermLength           = 200
	MaxDefinitionLength     = 5000
	MaxContentLength        = 20000
)

// Rules holds the tunable limits of the validator.
type Rules struct {
	MinContentLength int
	MaxReferences    int
}

// DefaultRules returns the limits used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		MinContentLength: DefaultMinContentLength,
		MaxReferences:    DefaultMaxReferences,
	}
}

// ValidateArgumentSubmission checks one argument payload with DefaultRules.
func ValidateArgumentSubmission(content string, refs []domain.Reference, minReferences int) error {
	return DefaultRules().ValidateArgument(content, refs, minReferences)
}

// ValidateDefinitionSubmission checks a definition payload with DefaultRules.
func ValidateDefinitionSubmission(term, definition string) error {
	return DefaultRules().ValidateDefinition(term, definition)
}

// ValidateArgument fails with ErrEmptyContent if the markup-stripped content is
// shorter than MinContentLength characters and with ErrInsufficientReferences if
// fewer than minReferences references are attached. Lengths count runes.
func (r Rules) ValidateArgument(content string, refs []domain.Reference, minReferences int) error {
	if !utf8.ValidString(content) {
		return domain.ErrInvalidArgument.WithMessage("content is not valid UTF-8")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return domain.NewValidationError("content", "too long (max 20000)")
	}

	text := StripMarkup(content)
	if n := utf8.RuneCountInString(text); n < r.MinContentLength {
		return domain.ErrEmptyContent.WithMessage(
			"content must contain at least %d characters of text (got %d)", r.MinContentLength, n)
	}

	if len(refs) < minReferences {
		return domain.ErrInsufficientReferences.WithMessage(
			"at least %d references required (got %d)", minReferences, len(refs))
	}

	return r.ValidateReferences(refs)
}

// ValidateDefinition fails with ErrMissingTerm or ErrMissingDefinition when the
// trimmed term or definition text is empty.
func (r Rules) ValidateDefinition(term, definition string) error {
	if !utf8.ValidString(term) || !utf8.ValidString(definition) {
		return domain.ErrInvalidArgument.WithMessage("term and definition must be valid UTF-8")
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return domain.ErrMissingTerm
	}
	if utf8.RuneCountInString(term) > MaxTermLength {
		return domain.NewValidationError("term", "too long (max 200)")
	}

	definition = strings.TrimSpace(definition)
	if definition == "" {
		return domain.ErrMissingDefinition
	}
	if utf8.RuneCountInString(definition) > MaxDefinitionLength {
		return domain.NewValidationError("definition", "too long (max 5000)")
	}

	return nil
}

// ValidateReferences checks reference metadata: a title is required, the type
// must be known and a URL, when given, must be absolute http(s).
func (r Rules) ValidateReferences(refs []domain.Reference) error {
	if r.MaxReferences > 0 && len(refs) > r.MaxReferences {
		return domain.ErrInvalidReference.WithMessage("too many references (max %d)", r.MaxReferences)
	}

	for i, ref := range refs {
		if !validText(ref.Title, ref.URL, ref.Author, ref.Notes) {
			return domain.ErrInvalidReference.WithMessage("reference %d: text is not valid UTF-8", i)
		}
		if strings.TrimSpace(ref.Title) == "" {
			return domain.ErrInvalidReference.WithMessage("reference %d: title is required", i)
		}
		if ref.Type != "" && !ref.Type.IsValid() {
			return domain.ErrInvalidReference.WithMessage("reference %d: unknown type %q", i, ref.Type)
		}
		if ref.URL != nil && *ref.URL != "" && !isValidHTTPURL(*ref.URL) {
			return domain.ErrInvalidReference.WithMessage("reference %d: url must be http or https", i)
		}
	}
	return nil
}

// NormalizeReferences trims text fields and defaults an empty type to OTHER.
func NormalizeReferences(refs []domain.Reference) []domain.Reference {
	if len(refs) == 0 {
		return nil
	}
	out := make([]domain.Reference, len(refs))
	for i, ref := range refs {
		ref.Title = strings.TrimSpace(ref.Title)
		if ref.Type == "" {
			ref.Type = domain.ReferenceTypeOther
		}
		ref.URL = trimOrNil(ref.URL)
		ref.Author = trimOrNil(ref.Author)
		ref.Notes = trimOrNil(ref.Notes)
		out[i] = ref
	}
	return out
}

func validText(title string, optional ...*string) bool {
	if !utf8.ValidString(title) {
		return false
	}
	for _, s := range optional {
		if s != nil && !utf8.ValidString(*s) {
			return false
		}
	}
	return true
}

// isValidHTTPURL checks if the URL is a valid HTTP or HTTPS URL.
func isValidHTTPURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
