package reservation

import (
	"github.com/pacohlim/showroom-reservation/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics.
// Ему удовлетворяют *sql.DB и обертка с метриками, поэтому репозиторий
// не знает, включен ли сбор метрик.
type DBExecutor = dbmetrics.DBExecutor
