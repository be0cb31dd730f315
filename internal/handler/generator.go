package handler

import (
	"errors"
	"net/http"

	"github.com/sejanpass/sejanpass-go/internal/generator"
	"github.com/sejanpass/sejanpass-go/internal/model"
	"github.com/sejanpass/sejanpass-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Strength(req))
}

func isValidationError(err error) bool {
	return errors.Is(err, generator.ErrNoCharacterClassSelected) ||
		errors.Is(err, generator.ErrLengthOutOfRange) ||
		errors.Is(err, service.ErrCountOutOfRange)
}
