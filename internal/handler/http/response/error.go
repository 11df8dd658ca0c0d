package response

import (
	"errors"
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Field-level
// validation errors carry their details map; everything else is mapped
// by error category so handlers never need per-domain switches.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	case errors.Is(err, apperr.ErrValidation):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrUniqueness):
		Conflict(w, err.Error())

	case errors.Is(err, apperr.ErrReference):
		NotFound(w, err.Error())

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
