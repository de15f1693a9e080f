package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	// или переданные данные не совпали ни с одной строкой
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается при конфликте уникального индекса слота:
	// на эту дату и время уже есть активная бронь
	ErrSlotTaken = errors.New("reservation.repository: slot is already booked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")

	// ErrUnknownReminderKind возвращается при неизвестном виде напоминания
	ErrUnknownReminderKind = errors.New("reservation.repository: unknown reminder kind")
)
