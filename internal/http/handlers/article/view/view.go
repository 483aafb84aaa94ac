// Package view реализует HTTP-обработчик счётчика просмотров статьи.
//
// Инкремент выполняется атомарным оператором хранилища, поэтому
// конкурентные запросы не теряют обновлений. 404 возвращается только
// когда документ с таким ID не найден.
package view

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики счётчика просмотров.
type Service interface {
	// IncrementView возвращает число найденных документов.
	IncrementView(ctx context.Context, id string) (int64, error)
}

// Handler обрабатывает запросы на инкремент счётчика просмотров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Увеличить счётчик просмотров
// @Tags Articles
// @Produce json
// @Param id path string true "ID статьи"
// @Success 200 {object} response.OKResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /articles/{id}/view [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.view"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	matched, err := h.service.IncrementView(r.Context(), id)
	if err != nil {
		log.Error("failed to increment view count", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update view count"))
		return
	}
	if matched == 0 {
		log.Info("article not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("article not found"))
		return
	}

	log.Info("view count updated", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "View count updated",
	}))
}
