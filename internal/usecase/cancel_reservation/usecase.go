package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	reservationRepo "github.com/pacohlim/showroom-reservation/internal/infra/storage/reservation"
)

// UseCase use case отмены брони владельцем
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute переводит бронь из booked в canceled при совпадении всех
// четырех полей. Неверные данные, чужая бронь и уже отмененная бронь
// дают один и тот же исход "не найдено".
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	id := strings.TrimSpace(req.ID)
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	password := strings.TrimSpace(req.Password)

	if id == "" || name == "" || phone == "" || password == "" {
		uc.logger.Warn("CancelReservation: missing fields")
		return ErrMissingFields
	}

	uc.logger.Info("CancelReservation: id=%s", id)

	err := uc.reservationRepo.CancelByCredentials(ctx, id, name, digitsOnly(phone), password)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("CancelReservation: id=%s not found", id)
			return ErrNotFound
		}
		uc.logger.Error("CancelReservation: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	uc.logger.Info("CancelReservation: successfully canceled id=%s", id)
	return nil
}

// digitsOnly оставляет в строке только ASCII-цифры
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
