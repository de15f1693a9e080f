package notify

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	"github.com/pacohlim/showroom-reservation/internal/integrations/alimtalk"
	"github.com/pacohlim/showroom-reservation/internal/integrations/mailer"
)

const (
	attachmentFilename    = "reservation.ics"
	attachmentContentType = "text/calendar"
)

// Config параметры диспетчера уведомлений
type Config struct {
	TemplateConfirm   string
	TemplateDayBefore string
	TemplateDayOf     string
	AdminEmail        string
}

// Service диспетчер уведомлений с двумя независимыми каналами доставки:
// чат-сообщение клиенту и email администратору. Каналы не зависят друг
// от друга, каждый фиксирует свой штамп и ошибку на бронировании.
type Service struct {
	states       ReservationStates
	chat         ChatClient
	mail         MailClient
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр диспетчера уведомлений
func NewService(
	states ReservationStates,
	chat ChatClient,
	mail MailClient,
	cfg Config,
	logger Logger,
) *Service {
	return &Service{
		states:       states,
		chat:         chat,
		mail:         mail,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SendConfirmation отправляет чат-подтверждение новой брони.
// При успехе ставит штамп notified_at и сбрасывает последнюю ошибку,
// при сбое записывает ошибку на бронирование и возвращает ErrChatDelivery.
func (s *Service) SendConfirmation(ctx context.Context, r *domain.Reservation) error {
	s.logger.Info("SendConfirmation: reservation id=%s, receiver=%s", r.ID, r.Phone)

	msg := &alimtalk.Message{
		Receiver: r.Phone,
		Template: s.cfg.TemplateConfirm,
		Subject:  confirmationSubject,
		Body:     fillTemplate(confirmationBody, r),
	}

	if err := s.chat.Send(ctx, msg); err != nil {
		s.recordError(ctx, r.ID, err)
		return fmt.Errorf("%w: SendConfirmation - provider error: %v", ErrChatDelivery, err)
	}

	if err := s.states.MarkNotified(ctx, r.ID); err != nil {
		s.logger.Error("SendConfirmation: failed to mark reservation id=%s as notified: %v", r.ID, err)
	}

	s.logger.Info("SendConfirmation: delivered for reservation id=%s", r.ID)
	return nil
}

// SendReminder отправляет чат-напоминание D-1 или D-day.
// Штамп канала ставится только при успешной доставке, поэтому при сбое
// бронь остается в выборке следующего тика планировщика.
func (s *Service) SendReminder(ctx context.Context, r *domain.Reservation, kind domain.ReminderKind) error {
	s.logger.Info("SendReminder: reservation id=%s, kind=%s", r.ID, kind)

	template, subject, body, err := s.reminderTemplate(kind)
	if err != nil {
		return err
	}

	msg := &alimtalk.Message{
		Receiver: r.Phone,
		Template: template,
		Subject:  subject,
		Body:     fillTemplate(body, r),
	}

	if err := s.chat.Send(ctx, msg); err != nil {
		s.recordError(ctx, r.ID, err)
		return fmt.Errorf("%w: SendReminder - provider error: %v", ErrChatDelivery, err)
	}

	if err := s.states.MarkReminded(ctx, r.ID, kind); err != nil {
		s.logger.Error("SendReminder: failed to mark reservation id=%s as reminded (%s): %v", r.ID, kind, err)
	}

	s.logger.Info("SendReminder: delivered for reservation id=%s, kind=%s", r.ID, kind)
	return nil
}

// SendAdminEmail отправляет администратору письмо о новой брони
// с вложенным календарным приглашением
func (s *Service) SendAdminEmail(ctx context.Context, r *domain.Reservation) error {
	s.logger.Info("SendAdminEmail: reservation id=%s, to=%s", r.ID, s.cfg.AdminEmail)

	invite, err := buildInvite(r, s.timeProvider.Now())
	if err != nil {
		s.recordError(ctx, r.ID, err)
		return fmt.Errorf("%w: SendAdminEmail - build invite: %v", ErrMailDelivery, err)
	}

	msg := &mailer.Message{
		To:      []string{s.cfg.AdminEmail},
		Subject: fmt.Sprintf("New reservation: %s %s", r.Date.Format(domain.DateFormat), r.Time),
		HTML:    buildSummaryHTML(r),
		Attachments: []mailer.Attachment{{
			Filename:    attachmentFilename,
			Content:     base64.StdEncoding.EncodeToString([]byte(invite.Render())),
			ContentType: attachmentContentType,
		}},
	}

	if err := s.mail.Send(ctx, msg); err != nil {
		s.recordError(ctx, r.ID, err)
		return fmt.Errorf("%w: SendAdminEmail - provider error: %v", ErrMailDelivery, err)
	}

	if err := s.states.MarkEmailed(ctx, r.ID); err != nil {
		s.logger.Error("SendAdminEmail: failed to mark reservation id=%s as emailed: %v", r.ID, err)
	}

	s.logger.Info("SendAdminEmail: delivered for reservation id=%s", r.ID)
	return nil
}

// reminderTemplate возвращает код шаблона и текст сообщения по типу напоминания
func (s *Service) reminderTemplate(kind domain.ReminderKind) (template, subject, body string, err error) {
	switch kind {
	case domain.ReminderDayBefore:
		return s.cfg.TemplateDayBefore, reminderDayBeforeSubject, reminderDayBeforeBody, nil
	case domain.ReminderDayOf:
		return s.cfg.TemplateDayOf, reminderDayOfSubject, reminderDayOfBody, nil
	default:
		return "", "", "", fmt.Errorf("%w: %s", ErrUnknownReminderKind, kind)
	}
}

// recordError записывает ошибку доставки на бронирование.
// Сбой самой записи только логируется и не меняет исход доставки.
func (s *Service) recordError(ctx context.Context, id string, cause error) {
	s.logger.Error("notify: delivery failed for reservation id=%s: %v", id, cause)

	if err := s.states.RecordNotifyError(ctx, id, cause.Error()); err != nil {
		s.logger.Error("notify: failed to record delivery error for reservation id=%s: %v", id, err)
	}
}
