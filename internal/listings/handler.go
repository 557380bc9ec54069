package listings

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/niladhikari/house-hunter-server/internal/guard"
	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
	"github.com/niladhikari/house-hunter-server/internal/users"
)

// Handler manages the listing endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
	guard   guard.Middleware
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, g guard.Middleware) *Handler {
	return &Handler{logger: logger, service: service, guard: g}
}

// MountRoutes registers the /houses subtree. The wildcard segment is named
// "key" because it carries an owner email on GET and a listing id on PUT
// and DELETE.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.listAll)
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireToken, h.guard.RequireRole(users.RoleHouseOwner))
		r.Post("/", h.create)
		r.Get("/{key}", h.listByOwner)
		r.Put("/{key}", h.replace)
		r.Delete("/{key}", h.remove)
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var f Fields
	if err := httpx.DecodeJSON(r, &f); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	listing, err := h.service.Create(r.Context(), f, guard.EmailFromContext(r.Context()))
	if err != nil {
		h.logger.Error("create listing", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, listing)
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list listings", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if list == nil {
		list = []Listing{}
	}
	httpx.JSON(w, http.StatusOK, list)
}

func (h *Handler) listByOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "key")
	list, err := h.service.ListByOwner(r.Context(), email)
	if err != nil {
		h.logger.Error("list listings by owner", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if list == nil {
		list = []Listing{}
	}
	httpx.JSON(w, http.StatusOK, list)
}

// GetByID handles the public single-listing fetch mounted at /menu/{id}.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	listing, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, listing)
}

// replaceResponse mirrors the update-result counts clients of the original
// system expect.
type replaceResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	var f Fields
	if err := httpx.DecodeJSON(r, &f); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	matched, err := h.service.ReplaceByID(r.Context(), chi.URLParam(r, "key"), f)
	if err != nil {
		if !errors.Is(err, httpx.ErrNotFound) {
			h.logger.Error("replace listing", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, replaceResponse{MatchedCount: matched, ModifiedCount: matched})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		if !errors.Is(err, httpx.ErrNotFound) {
			h.logger.Error("delete listing", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
