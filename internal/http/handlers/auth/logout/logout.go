// Package logout реализует HTTP-обработчик выхода: сброс cookie с токеном.
//
// Сам токен при этом не отзывается и остаётся валидным до истечения TTL.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/authcookie"
)

// Handler управляет HTTP-запросами на выход.
type Handler struct {
	log  *slog.Logger
	prod bool // Атрибуты сбрасываемой cookie должны совпадать с выставленными
}

// New создает новый Handler.
func New(log *slog.Logger, prod bool) *Handler {
	return &Handler{log: log, prod: prod}
}

// ServeHTTP godoc
// @Summary Выйти
// @Description Сбрасывает cookie с токеном доступа.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.OKResponse
// @Router /logout [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authcookie.Clear(w, h.prod)
	log.Info("token cookie cleared")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"success": true,
	}))
}
