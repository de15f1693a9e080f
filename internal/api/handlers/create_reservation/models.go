package create_reservation

import (
	createReservation "github.com/pacohlim/showroom-reservation/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date        string  `json:"date"` // "2025-03-15"
	Time        string  `json:"time"` // "14:00"
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Password    string  `json:"password"`
	LandAddress *string `json:"landAddress,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	UTMSource   *string `json:"utm_source,omitempty"`
	UTMMedium   *string `json:"utm_medium,omitempty"`
	UTMCampaign *string `json:"utm_campaign,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		Date:        r.Date,
		Time:        r.Time,
		Name:        r.Name,
		Phone:       r.Phone,
		Password:    r.Password,
		Address:     r.LandAddress,
		Notes:       r.Notes,
		UTMSource:   r.UTMSource,
		UTMMedium:   r.UTMMedium,
		UTMCampaign: r.UTMCampaign,
	}
}
