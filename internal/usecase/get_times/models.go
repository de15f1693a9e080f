package get_times

import (
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// Request модель запроса слотов на дату
type Request struct {
	Date string // дата YYYY-MM-DD
}

// Response модель ответа со слотами даты
type Response struct {
	Date      time.Time
	Times     []types.TimeString // полное расписание даты
	Closed    []types.TimeString // занятые слоты
	Available []types.TimeString // расписание за вычетом занятых
}
