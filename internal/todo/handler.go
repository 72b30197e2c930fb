package todo

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the todo module. Routes are mounted
// behind the auth middleware, so every request carries a resolved user.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers todo routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.handleList)
	r.Post("/", h.handleCreate)
	r.Delete("/{id}", h.handleDelete)
}

type createRequest struct {
	Task string `json:"task"`
}

type todoResponse struct {
	ID   int64  `json:"id"`
	Task string `json:"task"`
}

type ackResponse struct {
	OK bool `json:"ok"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}
	todos, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("list todos", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	items := make([]todoResponse, 0, len(todos))
	for _, item := range todos {
		items = append(items, todoResponse{ID: item.ID, Task: item.Task})
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, httpx.ErrValidation)
		return
	}
	item, err := h.service.Create(r.Context(), user.ID, req.Task)
	if err != nil {
		if !errors.Is(err, httpx.ErrValidation) {
			h.logger.Error("create todo", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, todoResponse{ID: item.ID, Task: item.Task})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.RespondError(w, httpx.ErrUnauthenticated)
		return
	}
	todoID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}
	if err := h.service.Delete(r.Context(), user.ID, todoID); err != nil {
		if !errors.Is(err, httpx.ErrNotFound) {
			h.logger.Error("delete todo", slog.Any("error", err))
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ackResponse{OK: true})
}
