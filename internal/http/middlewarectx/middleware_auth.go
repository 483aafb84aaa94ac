// Package middlewarectx содержит HTTP middleware для обработки и проверки JWT токенов.
//
// AuthMiddleware извлекает токен из HTTP-only cookie, проверяет его подпись
// и срок действия и в случае успеха добавляет email пользователя в контекст
// запроса для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized; причина отказа
// попадает в лог, но не в ответ клиенту. Отказ окончателен для запроса:
// повторов нет, клиент должен аутентифицироваться заново.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/insightarc/insightarc-server/internal/http/response"
	"github.com/insightarc/insightarc-server/internal/lib/authcookie"
	"github.com/insightarc/insightarc-server/internal/lib/jwt"
	"github.com/insightarc/insightarc-server/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Email — ключ для email пользователя в контексте
const Email Key = "email"

// TokenParser описывает интерфейс проверки токена доступа.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет JWT из cookie.
//
// Если токен валиден, добавляет email пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func AuthMiddleware(parser TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(authcookie.Name)
			if err != nil {
				log.Error("missing token cookie")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized access"))
				return
			}

			claims, err := parser.ParseToken(cookie.Value)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized access"))
				return
			}

			ctx := context.WithValue(r.Context(), Email, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext возвращает email аутентифицированного пользователя
// из контекста запроса.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(Email).(string)
	return email, ok && email != ""
}
