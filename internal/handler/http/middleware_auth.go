package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/utils"
)

// auth enforces a valid bearer token and stores the user id of its claims in
// the request context under [utils.UserIDCtxKey].
//
// A missing or malformed header is answered with 401 "Authorization
// required", an invalid or expired token with 401 "Invalid or expired token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			writeFailure(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Str("func", "*Handler.auth").Send()
			writeFailure(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Str("func", "*Handler.auth").Msg("rejected token")
			writeFailure(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
