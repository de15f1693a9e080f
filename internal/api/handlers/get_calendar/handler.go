package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
	getCalendar "github.com/pacohlim/showroom-reservation/internal/usecase/get_calendar"
)

const (
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month"
	msgStorageError = "db error"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/calendar?yyyy=2025&mm=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yearStr := r.URL.Query().Get("yyyy")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %q", yearStr)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	monthStr := r.URL.Query().Get("mm")
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %q", monthStr)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidYear):
			h.logger.Warn("GET /calendar - Invalid year: %d", year)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, getCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /calendar - Invalid month: %d", month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getCalendar.ErrStorage):
			h.logger.Error("GET /calendar - Storage error: %04d-%02d, error=%v", year, month, err)
			handlers.RespondErrorDetail(w, http.StatusInternalServerError, msgStorageError, err.Error())

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: %04d-%02d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built: %04d-%02d, cells=%d", year, month, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
