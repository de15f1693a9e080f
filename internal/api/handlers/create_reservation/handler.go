package create_reservation

import (
	"errors"
	"net/http"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
	createReservation "github.com/pacohlim/showroom-reservation/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date"
	msgInvalidTime        = "invalid time"
	msgInvalidName        = "invalid name"
	msgInvalidPhone       = "invalid phone"
	msgInvalidPassword    = "invalid password"
	msgSlotNotAllowed     = "unavailable time"
	msgAlreadyBooked      = "already booked"
	msgStorageError       = "db error"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reserve - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTime):
			h.logger.Warn("POST /reserve - Invalid time: %q", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createReservation.ErrInvalidName):
			h.logger.Warn("POST /reserve - Invalid name")
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, createReservation.ErrInvalidPhone):
			h.logger.Warn("POST /reserve - Invalid phone")
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createReservation.ErrInvalidPassword):
			h.logger.Warn("POST /reserve - Invalid password")
			handlers.RespondBadRequest(w, msgInvalidPassword)

		case errors.Is(err, createReservation.ErrSlotNotAllowed):
			h.logger.Warn("POST /reserve - Slot not allowed: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotNotAllowed)

		case errors.Is(err, createReservation.ErrSlotTaken):
			h.logger.Warn("POST /reserve - Slot already taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBooked)

		case errors.Is(err, createReservation.ErrStorage):
			h.logger.Error("POST /reserve - Storage error: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondErrorDetail(w, http.StatusInternalServerError, msgStorageError, err.Error())

		default:
			h.logger.Error("POST /reserve - Failed to create reservation: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reserve - Reservation created successfully: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, CreateReservationResponse{
		OK: true,
		ID: result.ID,
	})
}
