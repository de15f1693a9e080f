package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
	cancelReservation "github.com/pacohlim/showroom-reservation/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "missing fields"
	msgNotFound           = "not found"
	msgStorageError       = "db error"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrMissingFields):
			h.logger.Warn("POST /cancel - Missing fields: id=%q", req.ID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, cancelReservation.ErrNotFound):
			h.logger.Warn("POST /cancel - Reservation not found: id=%s", req.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReservation.ErrStorage):
			h.logger.Error("POST /cancel - Storage error: id=%s, error=%v", req.ID, err)
			handlers.RespondErrorDetail(w, http.StatusInternalServerError, msgStorageError, err.Error())

		default:
			h.logger.Error("POST /cancel - Failed to cancel reservation: id=%s, error=%v", req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cancel - Reservation canceled: id=%s", req.ID)
	handlers.RespondJSON(w, http.StatusOK, CancelReservationResponse{OK: true})
}
