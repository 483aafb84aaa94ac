// Package upsert реализует HTTP-обработчик сохранения пользователя
// при первом входе.
//
// Если пользователь с таким email уже есть, возвращается существующий
// документ без изменений; повторный вызов не создаёт дубликата.
package upsert

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/models"
)

// Service описывает интерфейс бизнес-логики upsert пользователя.
type Service interface {
	Upsert(ctx context.Context, email string, req models.DummyUser) (*models.User, bool, error)
}

// Handler обрабатывает запросы на сохранение пользователя при первом входе.
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
// @Summary Сохранить пользователя при первом входе
// @Description Возвращает существующего пользователя или создаёт нового с ролью user.
// @Tags Users
// @Accept json
// @Produce json
// @Param email path string true "Email пользователя"
// @Param request body models.DummyUser true "Данные пользователя"
// @Success 200 {object} response.OKResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{email} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.upsert"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	var req models.DummyUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	req.Email = email

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, created, err := h.service.Upsert(r.Context(), email, req)
	if err != nil {
		log.Error("failed to upsert user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save user"))
		return
	}

	log.Info("success to upsert user",
		slog.String("email", email),
		slog.Bool("created", created))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user":    user,
		"created": created,
	}))
}
