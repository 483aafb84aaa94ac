// Package mine реализует HTTP-обработчик списка статей текущего автора.
//
// Email в пути обязан совпадать с email из проверенного токена:
// чужие черновики через этот маршрут недоступны.
package mine

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/insightarc/insightarc-server/internal/http/middlewarectx"
	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/models"
)

// Service описывает интерфейс бизнес-логики выборки статей автора.
type Service interface {
	ByAuthor(ctx context.Context, email string) ([]*models.Article, error)
}

// Handler обрабатывает запросы на выборку статей текущего автора.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Мои статьи
// @Tags Articles
// @Produce json
// @Param email path string true "Email автора"
// @Success 200 {object} response.OKResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse "Email в пути не совпадает с токеном"
// @Failure 500 {object} response.ErrorResponse
// @Router /my-articles/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.mine"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")
	claimEmail, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized access"))
		return
	}
	if claimEmail != email {
		log.Error("path email does not match token",
			slog.String("path_email", email),
			slog.String("claim_email", claimEmail))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return
	}

	articles, err := h.service.ByAuthor(r.Context(), email)
	if err != nil {
		log.Error("failed to list author articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list articles"))
		return
	}

	log.Info("success to list author articles",
		slog.String("email", email),
		slog.Int("count", len(articles)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"articles": articles,
	}))
}
