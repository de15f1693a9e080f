package notify

import (
	"context"
	"time"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	"github.com/pacohlim/showroom-reservation/internal/integrations/alimtalk"
	"github.com/pacohlim/showroom-reservation/internal/integrations/mailer"
)

// ReservationStates интерфейс для фиксации состояния доставки на бронировании
type ReservationStates interface {
	MarkNotified(ctx context.Context, id string) error
	MarkEmailed(ctx context.Context, id string) error
	MarkReminded(ctx context.Context, id string, kind domain.ReminderKind) error
	RecordNotifyError(ctx context.Context, id string, message string) error
}

// ChatClient интерфейс клиента чат-уведомлений
type ChatClient interface {
	Send(ctx context.Context, msg *alimtalk.Message) error
}

// MailClient интерфейс клиента почтового провайдера
type MailClient interface {
	Send(ctx context.Context, msg *mailer.Message) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
