package send_reminders

import (
	"time"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// BatchResult итог обработки одной партии напоминаний
type BatchResult struct {
	Kind     domain.ReminderKind
	Date     time.Time
	Selected int
	Sent     int
	Failed   int
}

// Report итог одного тика планировщика: партия D-1 на завтра
// и партия D-day на сегодня
type Report struct {
	DayBefore BatchResult
	DayOf     BatchResult
}
