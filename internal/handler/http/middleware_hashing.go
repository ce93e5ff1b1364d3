package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/hefin/internal/utils"
)

// withIntegrity checks the HashSHA256 header of uploads against the HMAC of
// the raw body. It is a no-op unless a hash key is configured.
func (h *Handler) withIntegrity(next http.Handler) http.Handler {
	if h.app.HashKey == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := h.logger.With().Str("func", "*Handler.withIntegrity").Logger()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		signature := r.Header.Get(utils.HashSHA256Header)
		if !utils.VerifyBody(body, signature, h.app.HashKey) {
			log.Warn().Str("signature", signature).Msg("hashes are not equal")
			writeFailure(w, http.StatusBadRequest, msgIntegrityFailed)
			return
		}

		log.Debug().Msg("hashes are equal")
		next.ServeHTTP(w, r)
	})
}
