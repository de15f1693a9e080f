package cancel_reservation

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнено любое из четырех полей
	ErrMissingFields = errors.New("cancel_reservation: missing fields")

	// ErrNotFound возвращается, когда активная бронь не найдена
	// по совпадению всех четырех полей
	ErrNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrStorage возвращается при ошибке хранилища
	ErrStorage = errors.New("cancel_reservation: storage error")
)
