// Package remove реализует HTTP-обработчик удаления статьи по ID.
//
// Удалить статью может любой аутентифицированный пользователь:
// персональная проверка владельца здесь сознательно не выполняется.
package remove

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

// Service описывает интерфейс бизнес-логики удаления статьи.
type Service interface {
	// Remove возвращает число удалённых документов.
	Remove(ctx context.Context, id string) (int64, error)
}

// Handler обрабатывает запросы на удаление статьи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить статью
// @Tags Articles
// @Produce json
// @Param id path string true "ID статьи"
// @Success 200 {object} response.OKResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /articles/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	deleted, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to remove article", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove article"))
		return
	}

	log.Info("success to remove article",
		slog.String("id", id),
		slog.Int64("deleted", deleted))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deletedCount": deleted,
	}))
}
