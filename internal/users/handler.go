package users

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/niladhikari/house-hunter-server/internal/guard"
	"github.com/niladhikari/house-hunter-server/internal/platform/httpx"
)

// RoleInvalidator drops any cached role for an email after the directory
// changes underneath it.
type RoleInvalidator interface {
	Invalidate(ctx context.Context, email string) error
}

// Handler manages the account endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	guard     guard.Middleware
	roleCache RoleInvalidator
	validator *validator.Validate
}

// NewHandler builds a Handler instance. roleCache may be nil.
func NewHandler(logger *slog.Logger, service *Service, g guard.Middleware, roleCache RoleInvalidator) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		guard:     g,
		roleCache: roleCache,
		validator: validator.New(),
	}
}

// MountRoutes registers account routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.createAccount)
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireToken, h.guard.RequireRole(RoleHouseOwner))
		r.Get("/", h.listAccounts)
	})
	r.Group(func(r chi.Router) {
		r.Use(h.guard.RequireToken, h.guard.RequireSelf("email"))
		r.Get("/houseOwner/{email}", h.checkHouseOwner)
	})
}

type createAccountRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=standard houseOwner"`
}

// createAccountResponse mirrors the wire shape clients of the original
// system expect: insertedId is null when the account already existed.
type createAccountResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}

	result, err := h.service.Create(r.Context(), req.Email, req.Role)
	if err != nil {
		h.logger.Error("create account", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if !result.Created {
		httpx.JSON(w, http.StatusOK, createAccountResponse{Message: "user exists"})
		return
	}
	if h.roleCache != nil {
		if err := h.roleCache.Invalidate(r.Context(), req.Email); err != nil {
			h.logger.Warn("invalidate role cache", slog.Any("error", err))
		}
	}
	httpx.JSON(w, http.StatusOK, createAccountResponse{InsertedID: &result.ID})
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list accounts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if accounts == nil {
		accounts = []Account{}
	}
	httpx.JSON(w, http.StatusOK, accounts)
}

func (h *Handler) checkHouseOwner(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	isOwner, err := h.service.HasRole(r.Context(), email, RoleHouseOwner)
	if err != nil {
		h.logger.Error("check houseOwner role", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"houseOwner": isOwner})
}
