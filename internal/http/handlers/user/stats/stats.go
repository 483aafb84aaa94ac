// Package stats реализует HTTP-обработчик агрегированной статистики
// пользователей: всего, обычных и с подпиской.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/models"
)

// Service описывает интерфейс бизнес-логики статистики пользователей.
type Service interface {
	Stats(ctx context.Context) (*models.UsersStat, error)
}

// Handler обрабатывает запросы на получение статистики пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статистика пользователей
// @Description Общее число пользователей, обычных и с подпиской.
// @Tags Users
// @Produce json
// @Success 200 {object} models.UsersStat
// @Failure 500 {object} response.ErrorResponse
// @Router /users-stat [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stat, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("failed to count users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not count users"))
		return
	}

	log.Info("success to count users",
		slog.Int64("total", stat.TotalUsers),
		slog.Int64("premium", stat.PremiumUsers))
	render.JSON(w, r, stat)
}
