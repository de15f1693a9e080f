package get_times

import (
	"github.com/pacohlim/showroom-reservation/internal/domain"
	getTimes "github.com/pacohlim/showroom-reservation/internal/usecase/get_times"
	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// Response HTTP response model
type Response struct {
	Date      string   `json:"date"`
	Times     []string `json:"times"`
	Closed    []string `json:"closed"`
	Available []string `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimes.Response) *Response {
	return &Response{
		Date:      resp.Date.Format(domain.DateFormat),
		Times:     timeStrings(resp.Times),
		Closed:    timeStrings(resp.Closed),
		Available: timeStrings(resp.Available),
	}
}

// timeStrings раскладывает слоты в плоские строки для JSON
func timeStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}
