package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pacohlim/showroom-reservation/internal/api/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Recover перехватывает панику обработчика и превращает ее
// в ответ 500 с текстом причины в detail
func Recover(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("%s %s - Panic recovered: %v", r.Method, r.URL.Path, rec)
					handlers.RespondErrorDetail(w, http.StatusInternalServerError, "server error", fmt.Sprint(rec))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
