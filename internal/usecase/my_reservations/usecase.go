package my_reservations

import (
	"context"
	"fmt"
	"strings"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// UseCase use case самостоятельного поиска броней владельцем
type UseCase struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute возвращает до 20 последних броней по точному совпадению имени,
// телефона и пароля. Статус не фильтруется: отмененные брони тоже видны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	password := strings.TrimSpace(req.Password)

	if name == "" || phone == "" || password == "" {
		uc.logger.Warn("MyReservations: missing lookup fields")
		return nil, ErrMissingFields
	}

	uc.logger.Info("MyReservations: lookup for name=%s", name)

	// Телефон сведен к цифрам, в таком виде он хранится с момента создания
	reservations, err := uc.reservationRepo.FindByCredentials(ctx, name, digitsOnly(phone), password, domain.LookupLimit)
	if err != nil {
		uc.logger.Error("MyReservations: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	items := make([]Item, 0, len(reservations))
	for _, r := range reservations {
		items = append(items, Item{
			ID:        r.ID,
			Date:      r.Date,
			Time:      r.Time,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}

	uc.logger.Info("MyReservations: found %d reservations", len(items))

	return &Response{Items: items}, nil
}

// digitsOnly оставляет в строке только ASCII-цифры
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
