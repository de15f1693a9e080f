package domain

import (
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// Расписание шоурума фиксировано по дню недели: воскресенье выходной,
// суббота 14:00 и 16:00, будни 13:00 и 15:00. Это единственный источник
// слотов и для выдачи доступности, и для проверки заявок.
var (
	weekdaySlots  = []types.TimeString{"13:00", "15:00"}
	saturdaySlots = []types.TimeString{"14:00", "16:00"}
)

// AllowedSlots возвращает слоты даты в порядке возрастания времени.
// Для воскресенья список пуст. День недели берется из календарной даты
// как таковой (даты разбираются в UTC).
func AllowedSlots(date time.Time) []types.TimeString {
	switch date.Weekday() {
	case time.Sunday:
		return []types.TimeString{}
	case time.Saturday:
		return append([]types.TimeString(nil), saturdaySlots...)
	default:
		return append([]types.TimeString(nil), weekdaySlots...)
	}
}

// IsSlotAllowed проверяет, что слот входит в расписание даты
func IsSlotAllowed(date time.Time, slot types.TimeString) bool {
	for _, s := range AllowedSlots(date) {
		if s == slot {
			return true
		}
	}
	return false
}

// AvailableSlots возвращает слоты даты за вычетом занятых.
// Порядок наследуется от AllowedSlots.
func AvailableSlots(date time.Time, closed []types.TimeString) []types.TimeString {
	allowed := AllowedSlots(date)
	if len(closed) == 0 {
		return allowed
	}

	closedSet := make(map[types.TimeString]struct{}, len(closed))
	for _, c := range closed {
		closedSet[c] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(allowed))
	for _, s := range allowed {
		if _, ok := closedSet[s]; !ok {
			available = append(available, s)
		}
	}
	return available
}

// ParseDate разбирает дату YYYY-MM-DD (как полночь UTC)
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
