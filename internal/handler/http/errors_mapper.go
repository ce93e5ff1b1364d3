package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/service"
	"github.com/MKhiriev/hefin/internal/store"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/internal/validators"
	"github.com/MKhiriev/hefin/models"
)

type apiError struct {
	status  int
	message string
}

var errorStatusMap = map[error]apiError{
	service.ErrWrongCredentials:        {http.StatusUnauthorized, "Invalid email or password"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, msgInvalidToken},
	service.ErrRecordNotFound:          {http.StatusNotFound, "not found or access denied"},
	service.ErrOwnerRequired:           {http.StatusBadRequest, "owner query parameter is required"},
	service.ErrPatientIDMismatch:       {http.StatusBadRequest, "Patient id does not match the request path"},
	service.ErrPointerRejected:         {http.StatusInternalServerError, "Ledger rejected data pointer"},

	store.ErrEmailAlreadyExists: {http.StatusConflict, "An account with this email already exists"},
	store.ErrUserNotFound:       {http.StatusNotFound, "User not found"},
	store.ErrPatientNotFound:    {http.StatusNotFound, "Patient not found"},
	store.ErrPayloadNotFound:    {http.StatusNotFound, "payload not found"},
	store.ErrInvalidPayloadID:   {http.StatusNotFound, "payload not found"},
}

// statusFromError returns the status and public message for err. Unknown
// errors become 500 with fallback as the message.
func statusFromError(err error, fallback string) (int, string) {
	for target, apiErr := range errorStatusMap {
		if errors.Is(err, target) {
			return apiErr.status, apiErr.message
		}
	}
	return http.StatusInternalServerError, fallback
}

// writeError renders err as a failure envelope. Validation errors carry
// their messages in "errors".
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	if ve, ok := validators.AsValidationError(err); ok {
		log.Debug().Strs("errors", ve.Errors).Msg("validation failed")
		utils.WriteJSON(w, models.Response{Success: false, Message: msgValidationFailed, Errors: ve.Errors}, http.StatusBadRequest)
		return
	}

	status, message := statusFromError(err, fallback)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg(fallback)
	} else {
		log.Info().Err(err).Str("uri", r.RequestURI).Int("status", status).Send()
	}

	writeFailure(w, status, message)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.Response{Success: false, Message: message}, status)
}
