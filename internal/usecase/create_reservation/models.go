package create_reservation

import (
	"time"

	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// Request модель запроса на создание брони.
// Поля приходят сырыми строками формы, разбор и нормализация
// выполняются внутри use case.
type Request struct {
	Date        string // дата визита YYYY-MM-DD
	Time        string // слот HH:MM
	Name        string
	Phone       string
	Password    string
	Address     *string // адрес участка (опционально)
	Notes       *string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        string
	Date      time.Time
	Time      types.TimeString
	Status    string
	CreatedAt time.Time
}
