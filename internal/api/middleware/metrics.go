package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pacohlim/showroom-reservation/pkg/metrics"
)

// statusRecorder запоминает код ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware записывает количество и длительность HTTP-запросов.
// Меткой path служит шаблон маршрута gorilla/mux, а не сырой URL,
// чтобы не плодить метрики на каждый уникальный запрос.
func MetricsMiddleware(m *metrics.Metrics, service string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			m.RecordHTTPRequest(service, r.Method, path, recorder.status, time.Since(start))
		})
	}
}
