package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeStringLayout = "15:04"

// TimeString время суток в формате "HH:MM" (например, "14:00").
// Хранится в БД как текст; строки фиксированной длины сравниваются
// лексикографически, что совпадает с хронологическим порядком.
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString разбирает строку "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что значение имеет формат HH:MM
func (t TimeString) Validate() error {
	if len(t) != len(timeStringLayout) {
		return fmt.Errorf("types: invalid time string %q: expected HH:MM", string(t))
	}
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("types: invalid time string %q: expected HH:MM", string(t))
	}
	return nil
}

func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для незаполненного значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// IsBefore сравнивает два времени (раньше)
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter сравнивает два времени (позже)
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Hour возвращает часы (0-23)
func (t TimeString) Hour() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()
}

// Minute возвращает минуты (0-59)
func (t TimeString) Minute() int {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Minute()
}

// AddMinutes возвращает время через m минут.
// Возвращает ошибку, если результат выходит за границы суток.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.Hour()*60 + t.Minute() + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("types: time %s %+d minutes is out of day range", t, m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner. Принимает строки, []byte и time.Time;
// значения вида "14:00:00" из колонок TIME усекаются до "14:00".
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateSeconds(v)
		return nil
	case []byte:
		*t = truncateSeconds(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", value)
	}
}

func truncateSeconds(s string) TimeString {
	if len(s) > len(timeStringLayout) {
		return TimeString(s[:len(timeStringLayout)])
	}
	return TimeString(s)
}
