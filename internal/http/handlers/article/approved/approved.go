// Package approved реализует HTTP-обработчик поиска среди одобренных статей.
package approved

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

// Service описывает интерфейс бизнес-логики выборки одобренных статей.
type Service interface {
	Approved(ctx context.Context, searchTerm string) ([]*models.Article, error)
}

// Handler обрабатывает запросы на выборку одобренных статей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Одобренные статьи
// @Tags Articles
// @Produce json
// @Param search query string false "Подстрока заголовка"
// @Success 200 {object} response.OKResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /approved-articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.approved"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	searchTerm := r.URL.Query().Get("search")

	articles, err := h.service.Approved(r.Context(), searchTerm)
	if err != nil {
		log.Error("failed to list approved articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list approved articles"))
		return
	}

	log.Info("success to list approved articles", slog.Int("count", len(articles)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"articles": articles,
	}))
}
