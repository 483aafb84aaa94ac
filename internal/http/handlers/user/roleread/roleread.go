// Package roleread реализует HTTP-обработчик получения роли пользователя.
package roleread

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения роли.
type Service interface {
	ReadRole(ctx context.Context, email string) (string, error)
}

// Handler обрабатывает запросы на получение роли пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить роль пользователя
// @Tags Users
// @Produce json
// @Param email path string true "Email пользователя"
// @Success 200 {object} map[string]string
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/role/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.roleread"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	role, err := h.service.ReadRole(r.Context(), email)
	if errors.Is(err, repository.ErrNotFound) {
		// неизвестный email отдаёт пустую роль, а не 404
		log.Info("user not found, empty role", slog.String("email", email))
		render.JSON(w, r, map[string]string{"role": ""})
		return
	}
	if err != nil {
		log.Error("failed to read role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read role"))
		return
	}

	log.Info("success to read role", slog.String("email", email), slog.String("role", role))
	render.JSON(w, r, map[string]string{"role": role})
}
