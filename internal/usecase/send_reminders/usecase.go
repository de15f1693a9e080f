package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// UseCase use case рассылки напоминаний о предстоящих визитах
type UseCase struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute обрабатывает один тик планировщика: сначала партия D-1 на
// завтра, затем партия D-day на сегодня. Обе даты берутся в поясе
// шоурума. Ошибка выборки партии прерывает тик, сбой отправки по
// отдельной брони нет.
func (uc *UseCase) Execute(ctx context.Context) (*Report, error) {
	now := uc.timeProvider.Now()
	today := domain.LocalDate(now)
	tomorrow := domain.NextLocalDate(now)

	uc.logger.Info("SendReminders: tick, today=%s, tomorrow=%s",
		today.Format(domain.DateFormat), tomorrow.Format(domain.DateFormat))

	dayBefore, err := uc.processBatch(ctx, tomorrow, domain.ReminderDayBefore)
	if err != nil {
		return nil, err
	}

	dayOf, err := uc.processBatch(ctx, today, domain.ReminderDayOf)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SendReminders: tick done, d1 sent=%d failed=%d, d0 sent=%d failed=%d",
		dayBefore.Sent, dayBefore.Failed, dayOf.Sent, dayOf.Failed)

	return &Report{DayBefore: *dayBefore, DayOf: *dayOf}, nil
}

// processBatch выбирает и обрабатывает одну партию напоминаний.
// Брони идут последовательно: сбой одной записывается в итог
// и не прерывает остальные. Штамп при сбое не ставится, поэтому
// бронь попадет в выборку следующего тика.
func (uc *UseCase) processBatch(ctx context.Context, date time.Time, kind domain.ReminderKind) (*BatchResult, error) {
	reservations, err := uc.reservationRepo.FindPendingReminders(ctx, date, kind, domain.ReminderBatchLimit)
	if err != nil {
		uc.logger.Error("SendReminders: failed to select %s batch for %s: %v",
			kind, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: select %s batch: %v", ErrStorage, kind, err)
	}

	result := &BatchResult{Kind: kind, Date: date, Selected: len(reservations)}

	for _, r := range reservations {
		if err := uc.notifier.SendReminder(ctx, r, kind); err != nil {
			// ошибка доставки уже записана на бронь диспетчером
			uc.logger.Error("SendReminders: %s reminder failed for id=%s: %v", kind, r.ID, err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	uc.logger.Info("SendReminders: %s batch for %s: selected=%d, sent=%d, failed=%d",
		kind, date.Format(domain.DateFormat), result.Selected, result.Sent, result.Failed)

	return result, nil
}
