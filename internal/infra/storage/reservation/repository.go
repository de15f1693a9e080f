package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	"github.com/pacohlim/showroom-reservation/pkg/psqlbuilder"
	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"reserve_date",
	"reserve_time",
	"name",
	"phone",
	"password",
	"status",
	"channel",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"land_address",
	"notes",
	"notified_at",
	"emailed_at",
	"reminded_d1_at",
	"reminded_d0_at",
	"notify_last_error",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронями шоурума
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новую бронь одним запросом.
// Конфликт слота обнаруживает сама БД через частичный уникальный индекс:
// нарушение уникальности превращается в ErrSlotTaken. Отдельной проверки
// занятости перед вставкой нет, поэтому гонка двух заявок на один слот
// разрешается на стороне хранилища.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"reserve_date",
			"reserve_time",
			"name",
			"phone",
			"password",
			"status",
			"channel",
			"utm_source",
			"utm_medium",
			"utm_campaign",
			"land_address",
			"notes",
		).
		Values(
			reservation.ID,
			reservation.Date,
			reservation.Time,
			reservation.Name,
			reservation.Phone,
			reservation.Password,
			reservation.Status,
			reservation.Channel,
			reservation.UTMSource,
			reservation.UTMMedium,
			reservation.UTMCampaign,
			reservation.Address,
			reservation.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// ClosedTimes возвращает занятые слоты даты: различные значения времени
// среди броней со статусом booked
func (r *Repository) ClosedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("DISTINCT reserve_time").
		From("reservations").
		Where(squirrel.Eq{
			"reserve_date": date,
			"status":       domain.StatusBooked,
		}).
		OrderBy("reserve_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ClosedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ClosedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closed := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ClosedTimes - scan reserve_time: %v", ErrScanRow, err)
		}
		closed = append(closed, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ClosedTimes - rows error: %v", ErrScanRow, err)
	}

	return closed, nil
}

// ClosedTimesByDateRange возвращает занятые слоты всех дат диапазона
// [from, to] одним запросом, сгруппированные по дате (ключ YYYY-MM-DD).
// Используется календарной сеткой вместо 42 отдельных запросов.
func (r *Repository) ClosedTimesByDateRange(ctx context.Context, from, to time.Time) (map[string][]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("DISTINCT reserve_date", "reserve_time").
		From("reservations").
		Where(squirrel.Eq{"status": domain.StatusBooked}).
		Where(squirrel.GtOrEq{"reserve_date": from}).
		Where(squirrel.LtOrEq{"reserve_date": to}).
		OrderBy("reserve_date ASC", "reserve_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ClosedTimesByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ClosedTimesByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	closed := make(map[string][]types.TimeString)
	for rows.Next() {
		var date time.Time
		var t types.TimeString
		if err := rows.Scan(&date, &t); err != nil {
			return nil, fmt.Errorf("%w: ClosedTimesByDateRange - scan row: %v", ErrScanRow, err)
		}
		key := date.Format(domain.DateFormat)
		closed[key] = append(closed[key], t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ClosedTimesByDateRange - rows error: %v", ErrScanRow, err)
	}

	return closed, nil
}

// FindByCredentials возвращает брони с точным совпадением имени, телефона
// и пароля, от новых к старым, не больше limit строк. Статус не фильтруется:
// отмененные брони тоже видны владельцу.
func (r *Repository) FindByCredentials(ctx context.Context, name, phone, password string, limit uint64) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"name":     name,
			"phone":    phone,
			"password": password,
		}).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByCredentials - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByCredentials - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// CancelByCredentials переводит бронь из booked в canceled, только если
// совпали все четыре поля и бронь еще активна. Ноль затронутых строк
// означает единый исход "не найдено": неверные данные, чужая бронь
// и уже отмененная бронь снаружи неразличимы.
func (r *Repository) CancelByCredentials(ctx context.Context, id, name, phone, password string) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCanceled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":       id,
			"name":     name,
			"phone":    phone,
			"password": password,
			"status":   domain.StatusBooked,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelByCredentials - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelByCredentials - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelByCredentials - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// FindPendingReminders возвращает активные брони даты, которым еще
// не отправлено напоминание указанного вида, не больше limit строк
func (r *Repository) FindPendingReminders(ctx context.Context, date time.Time, kind domain.ReminderKind, limit uint64) ([]*domain.Reservation, error) {
	column, err := reminderColumn(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"reserve_date": date,
			"status":       domain.StatusBooked,
		}).
		Where(squirrel.Eq{column: nil}).
		OrderBy("reserve_time ASC", "created_at ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingReminders - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindPendingReminders - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// MarkNotified отмечает успешную отправку подтверждения в чат
// и очищает последнюю ошибку доставки
func (r *Repository) MarkNotified(ctx context.Context, id string) error {
	return r.markDelivery(ctx, id, "notified_at", "MarkNotified")
}

// MarkEmailed отмечает успешную отправку письма администратору
// и очищает последнюю ошибку доставки
func (r *Repository) MarkEmailed(ctx context.Context, id string) error {
	return r.markDelivery(ctx, id, "emailed_at", "MarkEmailed")
}

// MarkReminded отмечает успешную отправку напоминания указанного вида
// и очищает последнюю ошибку доставки
func (r *Repository) MarkReminded(ctx context.Context, id string, kind domain.ReminderKind) error {
	column, err := reminderColumn(kind)
	if err != nil {
		return err
	}
	return r.markDelivery(ctx, id, column, "MarkReminded")
}

// RecordNotifyError записывает ошибку последней попытки доставки.
// Отметка времени канала не ставится, бронь остается в очереди на повтор.
func (r *Repository) RecordNotifyError(ctx context.Context, id string, message string) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("notify_last_error", message).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RecordNotifyError - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RecordNotifyError - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RecordNotifyError - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// markDelivery ставит отметку времени канала и очищает последнюю ошибку
func (r *Repository) markDelivery(ctx context.Context, id, column, op string) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set(column, squirrel.Expr("NOW()")).
		Set("notify_last_error", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var reservation domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&reservation.ID,
			&reservation.Date,
			&reservation.Time,
			&reservation.Name,
			&reservation.Phone,
			&reservation.Password,
			&reservation.Status,
			&reservation.Channel,
			&reservation.UTMSource,
			&reservation.UTMMedium,
			&reservation.UTMCampaign,
			&reservation.Address,
			&reservation.Notes,
			&reservation.NotifiedAt,
			&reservation.EmailedAt,
			&reservation.RemindedD1At,
			&reservation.RemindedD0At,
			&reservation.NotifyLastError,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// reminderColumn сопоставляет вид напоминания с колонкой отметки
func reminderColumn(kind domain.ReminderKind) (string, error) {
	switch kind {
	case domain.ReminderDayBefore:
		return "reminded_d1_at", nil
	case domain.ReminderDayOf:
		return "reminded_d0_at", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownReminderKind, kind)
	}
}

// isUniqueViolation распознает нарушение уникального индекса.
// Основной путь: типизированная ошибка драйвера с кодом 23505.
// Запасной путь: поиск по тексту ошибки, на случай если драйвер
// вернул нетипизированную ошибку.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}
