// Package sl содержит вспомогательные функции для работы с логгером slog.
// Обработчики и сервисы логируют ошибки единообразно: текст в поле "error"
// рядом с полями "op" и "request_id", которые добавляет сам вызывающий.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
//
// Пример:
//
//	log.Error("failed to upsert user", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
