// Package login реализует HTTP-обработчик выпуска токена доступа.
//
// Handler принимает JSON с email, подписывает JWT и отдаёт его клиенту
// в HTTP-only cookie. Пароля нет: identity-провайдер находится на стороне
// фронтенда, сервер лишь фиксирует заявленный email в подписанном токене.
package login

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/authcookie"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/models"
)

// TokenIssuer описывает интерфейс выпуска токена доступа.
type TokenIssuer interface {
	GenerateToken(email string) (string, error)
}

// Handler управляет HTTP-запросами на выпуск токена.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	issuer   TokenIssuer         // Подписывает токены доступа
	validate *validator.Validate // Валидатор структуры входящих данных
	tokenTTL time.Duration       // Время жизни cookie (совпадает с TTL токена)
	prod     bool                // Боевое окружение: Secure + SameSite=None
}

// New создает новый Handler с переданными логгером и подписчиком токенов.
func New(log *slog.Logger, issuer TokenIssuer, tokenTTL time.Duration, prod bool) *Handler {
	return &Handler{
		log:      log,
		issuer:   issuer,
		validate: validator.New(),
		tokenTTL: tokenTTL,
		prod:     prod,
	}
}

// ServeHTTP godoc
// @Summary Выпустить токен доступа
// @Description Подписывает JWT с email пользователя и устанавливает его в HTTP-only cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.DummyLogin true "Email пользователя"
// @Success 200 {object} response.OKResponse "Токен установлен в cookie"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка подписи токена"
// @Router /jwt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyLogin
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

	token, err := h.issuer.GenerateToken(req.Email)
	if err != nil {
		log.Error("failed to issue token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not issue token"))
		return
	}

	authcookie.Set(w, token, h.tokenTTL, h.prod)
	log.Info("token issued", slog.String("email", req.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"success": true,
	}))
}
