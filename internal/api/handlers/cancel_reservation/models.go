package cancel_reservation

import (
	cancelReservation "github.com/pacohlim/showroom-reservation/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	OK bool `json:"ok"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest() *cancelReservation.Request {
	return &cancelReservation.Request{
		ID:       r.ID,
		Name:     r.Name,
		Phone:    r.Phone,
		Password: r.Password,
	}
}
