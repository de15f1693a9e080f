package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type pendingCall struct {
	date  string
	kind  domain.ReminderKind
	limit uint64
}

type repoMock struct {
	batches map[string][]*domain.Reservation // ключ "дата/вид"
	err     error
	calls   []pendingCall
}

func batchKey(date string, kind domain.ReminderKind) string {
	return date + "/" + string(kind)
}

func (m *repoMock) FindPendingReminders(ctx context.Context, date time.Time, kind domain.ReminderKind, limit uint64) ([]*domain.Reservation, error) {
	key := batchKey(date.Format(domain.DateFormat), kind)
	m.calls = append(m.calls, pendingCall{date: date.Format(domain.DateFormat), kind: kind, limit: limit})
	if m.err != nil {
		return nil, m.err
	}
	return m.batches[key], nil
}

type sentReminder struct {
	id   string
	kind domain.ReminderKind
}

type notifierMock struct {
	failIDs map[string]bool
	sent    []sentReminder
}

func (m *notifierMock) SendReminder(ctx context.Context, r *domain.Reservation, kind domain.ReminderKind) error {
	m.sent = append(m.sent, sentReminder{id: r.ID, kind: kind})
	if m.failIDs[r.ID] {
		return errors.New("provider rejected")
	}
	return nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func reservationWithID(id string) *domain.Reservation {
	return &domain.Reservation{ID: id, Status: domain.StatusBooked}
}

func newTestUseCase(repo *repoMock, notifier *notifierMock, now time.Time) *UseCase {
	uc := NewUseCase(repo, notifier, stubLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	// 16:00 UTC 14 марта это 01:00 следующего дня в поясе шоурума:
	// сегодня 15 марта, завтра 16 марта
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)

	repo := &repoMock{batches: map[string][]*domain.Reservation{
		batchKey("2025-03-16", domain.ReminderDayBefore): {reservationWithID("d1-a"), reservationWithID("d1-b")},
		batchKey("2025-03-15", domain.ReminderDayOf):     {reservationWithID("d0-a")},
	}}
	notifier := &notifierMock{}
	uc := newTestUseCase(repo, notifier, now)

	report, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// сначала завтрашняя партия D-1, затем сегодняшняя D-day
	require.Len(t, repo.calls, 2)
	assert.Equal(t, pendingCall{date: "2025-03-16", kind: domain.ReminderDayBefore, limit: 200}, repo.calls[0])
	assert.Equal(t, pendingCall{date: "2025-03-15", kind: domain.ReminderDayOf, limit: 200}, repo.calls[1])

	assert.Equal(t, []sentReminder{
		{id: "d1-a", kind: domain.ReminderDayBefore},
		{id: "d1-b", kind: domain.ReminderDayBefore},
		{id: "d0-a", kind: domain.ReminderDayOf},
	}, notifier.sent)

	assert.Equal(t, 2, report.DayBefore.Selected)
	assert.Equal(t, 2, report.DayBefore.Sent)
	assert.Equal(t, 0, report.DayBefore.Failed)
	assert.Equal(t, "2025-03-16", report.DayBefore.Date.Format(domain.DateFormat))

	assert.Equal(t, 1, report.DayOf.Selected)
	assert.Equal(t, 1, report.DayOf.Sent)
}

func TestUseCase_Execute_FailureDoesNotAbortBatch(t *testing.T) {
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)

	repo := &repoMock{batches: map[string][]*domain.Reservation{
		batchKey("2025-03-16", domain.ReminderDayBefore): {
			reservationWithID("a"),
			reservationWithID("b"),
			reservationWithID("c"),
		},
	}}
	notifier := &notifierMock{failIDs: map[string]bool{"b": true}}
	uc := newTestUseCase(repo, notifier, now)

	report, err := uc.Execute(context.Background())
	require.NoError(t, err)

	// после сбоя на "b" партия продолжилась и дошла до "c"
	require.Len(t, notifier.sent, 3)
	assert.Equal(t, "c", notifier.sent[2].id)

	assert.Equal(t, 3, report.DayBefore.Selected)
	assert.Equal(t, 2, report.DayBefore.Sent)
	assert.Equal(t, 1, report.DayBefore.Failed)
}

func TestUseCase_Execute_LocalDateBeforeMidnightShift(t *testing.T) {
	// 14:59 UTC еще 23:59 того же дня в поясе шоурума
	now := time.Date(2025, 3, 14, 14, 59, 0, 0, time.UTC)

	repo := &repoMock{batches: map[string][]*domain.Reservation{}}
	uc := newTestUseCase(repo, &notifierMock{}, now)

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.calls, 2)
	assert.Equal(t, "2025-03-15", repo.calls[0].date, "tomorrow in showroom timezone")
	assert.Equal(t, "2025-03-14", repo.calls[1].date, "today in showroom timezone")
}

func TestUseCase_Execute_EmptyBatches(t *testing.T) {
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)

	repo := &repoMock{batches: map[string][]*domain.Reservation{}}
	notifier := &notifierMock{}
	uc := newTestUseCase(repo, notifier, now)

	report, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Empty(t, notifier.sent)
	assert.Equal(t, 0, report.DayBefore.Selected)
	assert.Equal(t, 0, report.DayOf.Selected)
}

func TestUseCase_Execute_StorageErrorAbortsTick(t *testing.T) {
	now := time.Date(2025, 3, 14, 16, 0, 0, 0, time.UTC)

	repo := &repoMock{err: errors.New("pq: connection refused")}
	notifier := &notifierMock{}
	uc := newTestUseCase(repo, notifier, now)

	report, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrStorage)
	assert.Nil(t, report)
	assert.Empty(t, notifier.sent)
	// вторая партия не выбиралась
	assert.Len(t, repo.calls, 1)
}
