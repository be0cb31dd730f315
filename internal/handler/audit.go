package handler

import (
	"log/slog"
	"net/http"

	"github.com/sejanpass/sejanpass-go/internal/middleware"
	"github.com/sejanpass/sejanpass-go/internal/service"
)

// AuditHandler serves generation statistics.
type AuditHandler struct {
	service *service.AuditService
	logger  *slog.Logger
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{service: svc, logger: slog.Default()}
}

// HandleStats handles GET /api/v1/audit/stats requests. It must be mounted
// behind middleware.RequireScope.
func (h *AuditHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	subject, _ := middleware.SubjectFromContext(r.Context())

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("loading audit stats", "subject", subject, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	h.logger.Info("audit stats served", "subject", subject, "events", stats.Events)
	writeJSON(w, http.StatusOK, stats)
}
