package notify

import "errors"

var (
	// ErrChatDelivery возвращается при сбое доставки чат-сообщения
	ErrChatDelivery = errors.New("chat message delivery failed")

	// ErrMailDelivery возвращается при сбое доставки email
	ErrMailDelivery = errors.New("email delivery failed")

	// ErrUnknownReminderKind возвращается при неизвестном типе напоминания
	ErrUnknownReminderKind = errors.New("unknown reminder kind")
)
