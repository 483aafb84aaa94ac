// Package trending реализует HTTP-обработчик выборки самых просматриваемых статей.
package trending

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

// Service описывает интерфейс бизнес-логики выборки популярных статей.
type Service interface {
	Trending(ctx context.Context) ([]*models.Article, error)
}

// Handler обрабатывает запросы на выборку популярных статей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Популярные статьи
// @Description Шесть статей с наибольшим числом просмотров.
// @Tags Articles
// @Produce json
// @Success 200 {object} response.OKResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /trending-articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.trending"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	articles, err := h.service.Trending(r.Context())
	if err != nil {
		log.Error("failed to list trending articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list trending articles"))
		return
	}

	log.Info("success to list trending articles", slog.Int("count", len(articles)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"articles": articles,
	}))
}
