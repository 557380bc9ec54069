package token

import (
	"log/slog"
	"net/http"

	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
)

// Handler exposes token issuance over HTTP.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// Issue handles POST /jwt: the request body is the claims payload, signed
// as-is. No claim shape is enforced.
func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	var claims map[string]any
	if err := httpx.DecodeJSON(r, &claims); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	signed, err := h.service.Issue(claims)
	if err != nil {
		h.logger.Error("issue token", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"token": signed})
}
