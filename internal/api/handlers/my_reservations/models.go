package my_reservations

import (
	"time"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	myReservations "github.com/pacohlim/showroom-reservation/internal/usecase/my_reservations"
)

// ItemResponse краткое представление брони в ответе
type ItemResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// MyReservationsResponse HTTP response model
type MyReservationsResponse struct {
	OK    bool           `json:"ok"`
	Items []ItemResponse `json:"items"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *myReservations.Response) MyReservationsResponse {
	items := make([]ItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, ItemResponse{
			ID:        item.ID,
			Date:      item.Date.Format(domain.DateFormat),
			Time:      item.Time.String(),
			Status:    item.Status,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		})
	}

	return MyReservationsResponse{
		OK:    true,
		Items: items,
	}
}
