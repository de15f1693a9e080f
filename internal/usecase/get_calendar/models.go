package get_calendar

import (
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// Request модель запроса календарной сетки
type Request struct {
	Year  int
	Month int // 1-12
}

// YearMonth пара год-месяц для навигации по календарю
type YearMonth struct {
	Year  int
	Month int
}

// Cell ячейка календарной сетки
type Cell struct {
	Date      time.Time
	Available []types.TimeString // свободные слоты даты
	MonthDiff int                // -1 прошлый месяц, 0 целевой, +1 следующий
}

// Response модель ответа с сеткой 6 недель по 7 дней
type Response struct {
	Year  int
	Month int
	Prev  YearMonth
	Next  YearMonth
	Cells []Cell
}
