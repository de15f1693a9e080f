package get_times

import (
	"context"
	"fmt"
	"strings"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// UseCase use case получения слотов даты
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

// Execute возвращает расписание даты: полный список слотов,
// занятые и свободные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTimes: date=%s", req.Date)

	// 1. Разбираем дату
	date, err := domain.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		uc.logger.Warn("GetTimes: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 2. Полное расписание даты задается правилом дня недели
	allowed := domain.AllowedSlots(date)

	// 3. Занятые слоты из хранилища
	closed, err := uc.reservationRepo.ClosedTimes(ctx, date)
	if err != nil {
		uc.logger.Error("GetTimes: failed to get closed times for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// 4. Доступное = расписание минус занятое, порядок расписания сохранен
	available := domain.AvailableSlots(date, closed)

	uc.logger.Info("GetTimes: date=%s, allowed=%d, closed=%d, available=%d",
		req.Date, len(allowed), len(closed), len(available))

	return &Response{
		Date:      date,
		Times:     allowed,
		Closed:    closed,
		Available: available,
	}, nil
}
