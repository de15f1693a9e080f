package get_calendar

import "errors"

var (
	// ErrInvalidYear возвращается при годе вне поддерживаемых границ
	ErrInvalidYear = errors.New("get_calendar: invalid year")

	// ErrInvalidMonth возвращается при месяце вне диапазона 1-12
	ErrInvalidMonth = errors.New("get_calendar: invalid month")

	// ErrStorage возвращается при ошибке хранилища
	ErrStorage = errors.New("get_calendar: storage error")
)
