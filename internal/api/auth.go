package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/medsupply/internal/auth"
	"github.com/erazemk/medsupply/internal/registry"
)

// AuthHandler issues actor tokens.
type AuthHandler struct {
	Reg       *registry.Registry
	JWTSecret string
}

type tokenRequest struct {
	StaffID string `json:"staff_id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token handles POST /api/auth/token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StaffID == "" {
		jsonError(w, http.StatusBadRequest, "staff_id required")
		return
	}

	staff, err := h.Reg.StaffMember(req.StaffID)
	if err != nil {
		registryError(w, err)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, staff)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("token issued", "staff", staff.StaffID, "role", staff.Role)
	jsonResponse(w, http.StatusOK, tokenResponse{Token: token})
}
