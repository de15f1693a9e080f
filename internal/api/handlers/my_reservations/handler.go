package my_reservations

import (
	"errors"
	"net/http"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
	myReservations "github.com/pacohlim/showroom-reservation/internal/usecase/my_reservations"
)

const (
	msgMissingFields = "missing fields"
	msgStorageError  = "db error"
)

type Handler struct {
	useCase MyReservationsUseCase
	logger  Logger
}

func NewHandler(useCase MyReservationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/my?name=...&phone=...&password=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &myReservations.Request{
		Name:     r.URL.Query().Get("name"),
		Phone:    r.URL.Query().Get("phone"),
		Password: r.URL.Query().Get("password"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, myReservations.ErrMissingFields):
			h.logger.Warn("GET /my - Missing credential fields")
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, myReservations.ErrStorage):
			h.logger.Error("GET /my - Storage error: %v", err)
			handlers.RespondErrorDetail(w, http.StatusInternalServerError, msgStorageError, err.Error())

		default:
			h.logger.Error("GET /my - Failed to find reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /my - Reservations retrieved: count=%d", len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
