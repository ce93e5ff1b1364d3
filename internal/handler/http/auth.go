package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/hefin/internal/logger"
	"github.com/MKhiriev/hefin/internal/utils"
	"github.com/MKhiriev/hefin/models"
)

type authResponse struct {
	models.Response
	models.AuthResult
}

type profileResponse struct {
	models.Response
	User models.UserProfile `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, msgRegisterFailed)
		return
	}

	h.writeSession(w, r, user, http.StatusCreated, fmt.Sprintf("Welcome, %s!", user.Name))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, msgLoginFailed)
		return
	}

	h.writeSession(w, r, user, http.StatusOK, fmt.Sprintf("Welcome back, %s!", user.Name))
}

// writeSession issues a token for user and returns it both in the body and
// in the Authorization header.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, user models.User, status int, message string) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeSession").Msg("creation of token failed")
		writeFailure(w, http.StatusInternalServerError, msgInternal)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, authResponse{
		Response: models.Response{Success: true, Message: message},
		AuthResult: models.AuthResult{
			Token: token.SignedString,
			User:  utils.NewUserProfile(user),
		},
	}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	profile, err := h.services.AuthService.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, msgInternal)
		return
	}

	utils.WriteJSON(w, profileResponse{Response: models.Response{Success: true}, User: profile}, http.StatusOK)
}
