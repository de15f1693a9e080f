package alimtalk

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("alimtalk client: internal error")

	// ErrUnavailable возвращается, когда провайдер недоступен
	ErrUnavailable = errors.New("alimtalk client: provider unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("alimtalk client: invalid response")

	// ErrTokenRequest возвращается, когда провайдер отказал в выдаче токена
	ErrTokenRequest = errors.New("alimtalk client: token request rejected")

	// ErrSendFailed возвращается, когда провайдер отклонил отправку сообщения
	ErrSendFailed = errors.New("alimtalk client: send rejected")
)
