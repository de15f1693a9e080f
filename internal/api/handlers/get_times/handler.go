package get_times

import (
	"errors"
	"net/http"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
	getTimes "github.com/pacohlim/showroom-reservation/internal/usecase/get_times"
)

const (
	msgInvalidDate  = "invalid date"
	msgStorageError = "db error"
)

type Handler struct {
	useCase GetTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/times?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getTimes.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getTimes.ErrInvalidDate):
			h.logger.Warn("GET /times - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getTimes.ErrStorage):
			h.logger.Error("GET /times - Storage error: date=%s, error=%v", date, err)
			handlers.RespondErrorDetail(w, http.StatusInternalServerError, msgStorageError, err.Error())

		default:
			h.logger.Error("GET /times - Failed to get times: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /times - Times retrieved: date=%s, available=%d", date, len(result.Available))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
