// Package create реализует HTTP-обработчик публикации новой статьи.
//
// Handler принимает JSON-запрос с данными статьи, валидирует их, подставляет
// email автора из проверенного токена, вызывает бизнес-логику создания
// и возвращает ID созданного документа.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/insightarc/insightarc-server/internal/http/middlewarectx"
	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/models"
)

// Service описывает интерфейс бизнес-логики публикации статьи.
type Service interface {
	Create(ctx context.Context, req models.DummyArticle) (string, error)
}

// Handler управляет HTTP-запросами на публикацию статей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики публикации
	validate *validator.Validate // Валидатор структуры входящих данных
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
// @Summary Опубликовать статью
// @Description Создаёт статью в статусе pending от имени аутентифицированного автора.
// @Tags Articles
// @Accept json
// @Produce json
// @Param request body models.DummyArticle true "Данные статьи"
// @Success 200 {object} response.OKResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /articles [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyArticle
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

	email, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized access"))
		return
	}
	// автором всегда записывается владелец токена
	req.Author.Email = email

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create article", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create article"))
		return
	}

	log.Info("success to create article", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"insertedId": id,
	}))
}
