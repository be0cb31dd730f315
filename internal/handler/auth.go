package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sejanpass/sejanpass-go/internal/crypto"
	"github.com/sejanpass/sejanpass-go/internal/model"
)

const adminSubject = "admin"

// AuthHandler exchanges the admin secret for a scoped bearer token.
type AuthHandler struct {
	secretHash string
	jwtSecret  string
	jwtExpiry  time.Duration
}

// NewAuthHandler creates a new AuthHandler. secretHash is an Argon2id PHC
// string produced by `sejanpass hash`.
func NewAuthHandler(secretHash, jwtSecret string, jwtExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		secretHash: secretHash,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
	}
}

// HandleToken handles POST /api/v1/auth/token requests.
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req model.TokenRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	if req.Secret == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("secret is required"))
		return
	}

	match, err := crypto.VerifySecret(req.Secret, h.secretHash)
	if err != nil {
		slog.Error("verifying admin secret", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if !match {
		writeJSON(w, http.StatusUnauthorized, errorResponse("invalid secret"))
		return
	}

	token, expiresAt, err := crypto.IssueToken(adminSubject, crypto.ScopeAuditRead, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{Token: token, ExpiresAt: expiresAt})
}
