// Package authcookie управляет cookie с токеном доступа.
//
// Токен хранится в HTTP-only cookie с именем "token". В боевом окружении
// cookie выставляется с Secure и SameSite=None (фронтенд живёт на другом
// домене), локально — без Secure и с SameSite=Strict.
package authcookie

import (
	"net/http"
	"time"
)

// Name имя cookie, в которой клиент хранит токен.
const Name = "token"

// Set записывает токен в cookie ответа.
func Set(w http.ResponseWriter, token string, ttl time.Duration, prod bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   prod,
		SameSite: sameSite(prod),
		Expires:  time.Now().Add(ttl),
	})
}

// Clear сбрасывает cookie с токеном. Атрибуты должны совпадать с теми,
// с которыми cookie была установлена, иначе браузер её не удалит.
func Clear(w http.ResponseWriter, prod bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   prod,
		SameSite: sameSite(prod),
		MaxAge:   -1,
	})
}

func sameSite(prod bool) http.SameSite {
	if prod {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
