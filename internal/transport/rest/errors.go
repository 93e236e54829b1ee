package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/debate-backend/internal/domain"
)

const codeBadRequest domain.Code = "BAD_REQUEST"

type errorResponse struct {
	Code    domain.Code  `json:"code"`
	Message string       `json:"message"`
	Reason  domain.Code  `json:"reason,omitempty"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// statusOf maps an error's sentinel kind to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// handleError writes err as a coded JSON body. Unexpected errors are logged
// and reported without detail.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := statusOf(err)
	body := errorResponse{Code: domain.CodeOf(err)}

	var (
		de *domain.Error
		ve *domain.ValidationError
	)
	switch {
	case status == http.StatusInternalServerError:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		body.Message = "internal error"
	case errors.As(err, &ve):
		body.Message = "validation failed"
		for _, fe := range ve.Errors {
			body.Fields = append(body.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	case errors.As(err, &de):
		body.Message = de.Message
		if inner := causeOf(de); inner != nil {
			body.Reason = inner.Code
			body.Message += ": " + inner.Message
		}
	default:
		body.Message = err.Error()
	}

	writeJSON(w, status, body)
}

// causeOf returns the coded error that de wraps, such as the content rule
// behind an INVALID_ARGUMENT.
func causeOf(de *domain.Error) *domain.Error {
	for _, e := range de.Unwrap() {
		var inner *domain.Error
		if errors.As(e, &inner) && inner.Code != de.Code {
			return inner
		}
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, code domain.Code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
