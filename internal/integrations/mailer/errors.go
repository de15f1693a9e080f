package mailer

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrUnavailable возвращается, когда почтовый шлюз недоступен
	ErrUnavailable = errors.New("mailer client: provider unavailable")

	// ErrSendFailed возвращается, когда шлюз отклонил отправку письма
	ErrSendFailed = errors.New("mailer client: send rejected")
)
