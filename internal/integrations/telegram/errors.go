package telegram

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Telegram API
	ErrInvalidResponse = errors.New("telegram client: invalid response")

	// ErrNotConfigured возвращается, когда токен или chat_id не заданы конфигом.
	// Уведомления в этом случае просто не отправляются - бронирование не страдает.
	ErrNotConfigured = errors.New("telegram client: not configured")
)
