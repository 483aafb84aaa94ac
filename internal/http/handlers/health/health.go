// Package health реализует корневой обработчик: приветственный текст,
// по которому можно проверить, что сервер жив.
package health

import (
	"net/http"
)

// Handler отвечает приветственным текстом на GET /.
type Handler struct{}

// New создает новый Handler.
func New() *Handler {
	return &Handler{}
}

// ServeHTTP godoc
// @Summary Проверка живости сервера
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Welcome to InsightArc Server"
// @Router / [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to InsightArc Server"))
}
