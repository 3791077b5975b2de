package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/introprep/assay/internal/assay/service"
	"github.com/introprep/assay/pkg/assaysdk"
	"github.com/introprep/assay/pkg/httpx"
	"github.com/introprep/assay/pkg/slogx"
)

// LoginHandler exchanges credentials for a bearer session token.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req assaysdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		assaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	session, err := h.AuthService.Login(ctx, req.UserID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			assaysdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrBadCredential):
			// Unknown user and wrong password collapse into one response
			// so the endpoint cannot be used to enumerate accounts.
			assaysdk.ErrBadLogin.WriteError(w)
		default:
			log.Error("failed to log in user", "err", err)
			assaysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, assaysdk.LoginResponse{
		Token:       session.Token,
		UserID:      session.UserID,
		DisplayName: session.DisplayName,
	})
}
