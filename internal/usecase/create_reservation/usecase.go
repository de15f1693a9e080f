package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	reservationRepo "github.com/pacohlim/showroom-reservation/internal/infra/storage/reservation"
	"github.com/pacohlim/showroom-reservation/pkg/ptr"
)

// UseCase use case создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Execute выполняет создание брони.
// Отдельной проверки занятости слота нет: эксклюзивность обеспечивает
// сама вставка через частичный уникальный индекс. После вставки бронь
// уже создана, сбои уведомлений на исход не влияют.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация входных данных
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем бронь
	reservation := &domain.Reservation{
		ID:          uuid.NewString(),
		Date:        parsed.date,
		Time:        parsed.slot,
		Name:        parsed.name,
		Phone:       parsed.phone,
		Password:    parsed.password,
		Status:      domain.StatusBooked,
		Channel:     domain.DefaultChannel,
		UTMSource:   normalizeOptional(req.UTMSource),
		UTMMedium:   normalizeOptional(req.UTMMedium),
		UTMCampaign: normalizeOptional(req.UTMCampaign),
		Address:     normalizeOptional(req.Address),
		Notes:       normalizeOptional(req.Notes),
	}

	// 3. Одна атомарная вставка, конфликт слота разрешает БД
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot %s %s is already booked",
				parsed.date.Format(domain.DateFormat), parsed.slot)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateReservation: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", created.ID)

	// 4. Подтверждение в чат, затем письмо администратору.
	// Каналы изолированы: сбой любого из них уже записан на бронь
	// диспетчером и не отменяет успех бронирования.
	if err := uc.notifier.SendConfirmation(ctx, created); err != nil {
		uc.logger.Error("CreateReservation: confirmation delivery failed for id=%s: %v", created.ID, err)
	}

	if err := uc.notifier.SendAdminEmail(ctx, created); err != nil {
		uc.logger.Error("CreateReservation: admin email delivery failed for id=%s: %v", created.ID, err)
	}

	return &Response{
		ID:        created.ID,
		Date:      created.Date,
		Time:      created.Time,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

// normalizeOptional обрезает пробелы и превращает пустую строку в nil
func normalizeOptional(p *string) *string {
	if p == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}

	return ptr.Ptr(trimmed)
}
