package domain

import (
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusBooked   ReservationStatus = "booked"
	StatusCanceled ReservationStatus = "canceled"
)

// ReminderKind вид напоминания о визите
type ReminderKind string

const (
	// ReminderDayBefore напоминание за день до визита
	ReminderDayBefore ReminderKind = "day_before"
	// ReminderDayOf напоминание в день визита
	ReminderDayOf ReminderKind = "day_of"
)

// Reservation represents a single showroom visit reservation
type Reservation struct {
	ID       string
	Date     time.Time        // дата визита (без времени)
	Time     types.TimeString // слот визита, например "14:00"
	Name     string
	Phone    string // только цифры
	Password string // пароль для самостоятельного поиска/отмены, не секрет
	Status   ReservationStatus

	Channel     string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	Address     *string
	Notes       *string

	// Отметки о доставке уведомлений, независимые друг от друга.
	// NotifyLastError общий для всех каналов: хранит последнюю ошибку.
	NotifiedAt      *time.Time
	EmailedAt       *time.Time
	RemindedD1At    *time.Time
	RemindedD0At    *time.Time
	NotifyLastError *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBooked returns true while the reservation is active
func (r *Reservation) IsBooked() bool {
	return r.Status == StatusBooked
}

// StartsAt возвращает момент начала визита (дата + слот) в поясе шоурума
func (r *Reservation) StartsAt() (time.Time, error) {
	return VisitStart(r.Date, r.Time)
}
