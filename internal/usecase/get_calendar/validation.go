package get_calendar

import "fmt"

// Границы года держат даты сетки в четырехзначном диапазоне формата
const (
	minYear = 1970
	maxYear = 9999
)

// validateRequest проверяет границы года и месяца
func validateRequest(req *Request) error {
	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: %d", ErrInvalidYear, req.Year)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, req.Month)
	}

	return nil
}
