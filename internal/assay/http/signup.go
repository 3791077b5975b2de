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

// SignUpHandler registers a new identity. Signup is first-write-wins: a
// taken user ID always answers 409 and the stored credential is untouched.
type SignUpHandler struct {
	AuthService *service.AuthService
}

func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req assaysdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		assaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	identity, err := h.AuthService.SignUp(ctx, req.UserID, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			assaysdk.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrDuplicateID):
			assaysdk.ErrDuplicateID.WriteError(w)
		default:
			log.Error("failed to sign up user", "err", err)
			assaysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, assaysdk.SignUpResponse{
		UserID:      identity.ID,
		DisplayName: identity.DisplayName,
	})
}
