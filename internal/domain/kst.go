package domain

import (
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// ShowroomTZ фиксированное смещение пояса шоурума (UTC+9).
// Смещение задано константой, а не именем зоны, чтобы не зависеть
// от базы часовых поясов на хосте.
var ShowroomTZ = time.FixedZone("KST", 9*60*60)

// LocalDate возвращает календарную дату момента now в поясе шоурума.
// К моменту прибавляются 9 часов, дата читается из UTC-полей результата
// и возвращается как полночь UTC, в том же виде даты хранятся в БД.
func LocalDate(now time.Time) time.Time {
	shifted := now.UTC().Add(9 * time.Hour)
	return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), 0, 0, 0, 0, time.UTC)
}

// NextLocalDate возвращает дату следующего дня в поясе шоурума
func NextLocalDate(now time.Time) time.Time {
	return LocalDate(now).AddDate(0, 0, 1)
}

// VisitStart возвращает момент начала визита: дата и слот,
// интерпретированные в поясе шоурума.
func VisitStart(date time.Time, slot types.TimeString) (time.Time, error) {
	if err := slot.Validate(); err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		slot.Hour(), slot.Minute(), 0, 0, ShowroomTZ), nil
}
