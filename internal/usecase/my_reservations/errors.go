package my_reservations

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнено любое из трех полей
	ErrMissingFields = errors.New("my_reservations: missing fields")

	// ErrStorage возвращается при ошибке хранилища
	ErrStorage = errors.New("my_reservations: storage error")
)
