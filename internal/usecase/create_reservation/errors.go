package create_reservation

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате визита
	ErrInvalidDate = errors.New("create_reservation: invalid date")

	// ErrInvalidTime возвращается при некорректном времени визита
	ErrInvalidTime = errors.New("create_reservation: invalid time")

	// ErrInvalidName возвращается при слишком коротком имени
	ErrInvalidName = errors.New("create_reservation: invalid name")

	// ErrInvalidPhone возвращается при недостаточном числе цифр в телефоне
	ErrInvalidPhone = errors.New("create_reservation: invalid phone")

	// ErrInvalidPassword возвращается при слишком коротком пароле
	ErrInvalidPassword = errors.New("create_reservation: invalid password")

	// ErrSlotNotAllowed возвращается, когда слот не входит в расписание даты
	ErrSlotNotAllowed = errors.New("create_reservation: time slot is not allowed on this date")

	// ErrSlotTaken возвращается, когда слот уже занят другой бронью
	ErrSlotTaken = errors.New("create_reservation: slot is already booked")

	// ErrStorage возвращается при прочих ошибках хранилища
	ErrStorage = errors.New("create_reservation: storage error")
)
