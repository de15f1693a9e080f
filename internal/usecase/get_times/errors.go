package get_times

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_times: invalid date")

	// ErrStorage возвращается при ошибке хранилища
	ErrStorage = errors.New("get_times: storage error")
)
