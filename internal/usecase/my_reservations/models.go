package my_reservations

import (
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// Request модель запроса самостоятельного поиска броней
type Request struct {
	Name     string
	Phone    string
	Password string
}

// Item краткое представление брони для владельца
type Item struct {
	ID        string
	Date      time.Time
	Time      types.TimeString
	Status    string
	CreatedAt time.Time
}

// Response модель ответа со списком броней, от новых к старым
type Response struct {
	Items []Item
}
