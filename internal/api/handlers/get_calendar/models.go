package get_calendar

import (
	"strings"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	getCalendar "github.com/pacohlim/showroom-reservation/internal/usecase/get_calendar"
)

// YearMonth пара год-месяц для навигации
type YearMonth struct {
	Year  int `json:"yyyy"`
	Month int `json:"mm"`
}

// Cell ячейка сетки. Times содержит свободные слоты даты одной строкой
// через перевод строки, пустая строка если слотов нет.
type Cell struct {
	Date      string `json:"date"`
	Times     string `json:"times"`
	MonthDiff int    `json:"monthDiff"`
}

// Response HTTP response model
type Response struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Prev  YearMonth `json:"prev"`
	Next  YearMonth `json:"next"`
	Cells []Cell    `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *Response {
	cells := make([]Cell, 0, len(resp.Cells))
	for _, c := range resp.Cells {
		times := make([]string, 0, len(c.Available))
		for _, s := range c.Available {
			times = append(times, s.String())
		}

		cells = append(cells, Cell{
			Date:      c.Date.Format(domain.DateFormat),
			Times:     strings.Join(times, "\n"),
			MonthDiff: c.MonthDiff,
		})
	}

	return &Response{
		Year:  resp.Year,
		Month: resp.Month,
		Prev:  YearMonth{Year: resp.Prev.Year, Month: resp.Prev.Month},
		Next:  YearMonth{Year: resp.Next.Year, Month: resp.Next.Month},
		Cells: cells,
	}
}
