// Package latest реализует HTTP-обработчик выборки последних статей
// по времени публикации.
package latest

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

// Service описывает интерфейс бизнес-логики выборки последних статей.
type Service interface {
	Latest(ctx context.Context) ([]*models.Article, error)
}

// Handler обрабатывает запросы на выборку последних статей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Последние статьи
// @Tags Articles
// @Produce json
// @Success 200 {object} response.OKResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /latest-articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.latest"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	articles, err := h.service.Latest(r.Context())
	if err != nil {
		log.Error("failed to list latest articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list latest articles"))
		return
	}

	log.Info("success to list latest articles", slog.Int("count", len(articles)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"articles": articles,
	}))
}
