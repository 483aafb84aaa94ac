// Package moderate реализует HTTP-обработчик решения модератора:
// смена статуса статьи и пометки premium одним запросом.
//
// Возвращается сырой результат обновления хранилища; отсутствие статьи
// здесь не превращается в 404 (matchedCount в ответе равен нулю).
package moderate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/models"
)

// Service описывает интерфейс бизнес-логики модерации статьи.
type Service interface {
	Moderate(ctx context.Context, id string, req models.DummyModeration) (*mongo.UpdateResult, error)
}

// Handler обрабатывает запросы модерации статьи.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Модерация статьи
// @Description Устанавливает статус и пометку premium, возвращает результат обновления.
// @Tags Articles
// @Accept json
// @Produce json
// @Param id path string true "ID статьи"
// @Param request body models.DummyModeration true "Решение модератора"
// @Success 200 {object} response.OKResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /articles/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.moderate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyModeration
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.service.Moderate(r.Context(), id, req)
	if err != nil {
		log.Error("failed to moderate article", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not moderate article"))
		return
	}

	log.Info("success to moderate article",
		slog.String("id", id),
		slog.String("status", req.Status))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
	}))
}
