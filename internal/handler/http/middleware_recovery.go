package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/models"
)

// withRecovery turns a panic into a 500 envelope. The panic value is only
// exposed in development.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().Str("func", "*Handler.withRecovery").
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			resp := models.Response{Success: false, Message: msgInternal}
			if h.app.IsDevelopment() {
				resp.Error = fmt.Sprint(rec)
			}
			utils.WriteJSON(w, resp, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
