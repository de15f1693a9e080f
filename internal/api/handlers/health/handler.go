package health

import (
	"net/http"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
)

// Response тело ответа проверки живости
type Response struct {
	OK bool `json:"ok"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{OK: true})
}
