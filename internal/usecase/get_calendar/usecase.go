package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// UseCase use case построения календарной сетки месяца
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

// Execute строит сетку месяца: 42 ячейки начиная с воскресенья на или
// перед первым числом. Занятость всех дат сетки берется одним диапазонным
// запросом и раскладывается по ячейкам в памяти.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Начало сетки: воскресенье на или перед первым числом месяца
	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := start.AddDate(0, 0, domain.CalendarCells-1)

	// 3. Занятые слоты всего диапазона одним запросом
	closedByDate, err := uc.reservationRepo.ClosedTimesByDateRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get closed times for %s..%s: %v",
			start.Format(domain.DateFormat), end.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// 4. Раскладываем доступность по ячейкам
	cells := make([]Cell, 0, domain.CalendarCells)
	for i := 0; i < domain.CalendarCells; i++ {
		date := start.AddDate(0, 0, i)
		closed := closedByDate[date.Format(domain.DateFormat)]

		cells = append(cells, Cell{
			Date:      date,
			Available: domain.AvailableSlots(date, closed),
			MonthDiff: monthDiff(date, req.Year, time.Month(req.Month)),
		})
	}

	prevYear, prevMonth := prevOf(req.Year, req.Month)
	nextYear, nextMonth := nextOf(req.Year, req.Month)

	uc.logger.Info("GetCalendar: built %d cells for %04d-%02d", len(cells), req.Year, req.Month)

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Prev:  YearMonth{Year: prevYear, Month: prevMonth},
		Next:  YearMonth{Year: nextYear, Month: nextMonth},
		Cells: cells,
	}, nil
}

// monthDiff возвращает положение даты относительно целевого месяца:
// -1 раньше, 0 внутри, +1 позже
func monthDiff(date time.Time, year int, month time.Month) int {
	cell := date.Year()*12 + int(date.Month())
	target := year*12 + int(month)

	switch {
	case cell < target:
		return -1
	case cell > target:
		return 1
	default:
		return 0
	}
}

// prevOf возвращает предыдущий месяц с переносом через границу года
func prevOf(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// nextOf возвращает следующий месяц с переносом через границу года
func nextOf(year, month int) (int, int) {
	if month == 12 {
		return year + 1, 1
	}
	return year, month + 1
}
