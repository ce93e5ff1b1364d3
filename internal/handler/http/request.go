package http

import (
	"encoding/json"
	"net/http"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeJSON decodes the request body into dst. On failure it writes the 400
// envelope and returns false.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		h.logger.Debug().Err(err).Str("func", "*Handler.decodeJSON").Str("uri", r.RequestURI).Msg("invalid JSON body")
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return false
	}
	return true
}
