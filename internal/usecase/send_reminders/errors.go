package send_reminders

import "errors"

var (
	// ErrStorage возвращается, когда не удалось выбрать партию броней
	ErrStorage = errors.New("send_reminders: storage error")
)
