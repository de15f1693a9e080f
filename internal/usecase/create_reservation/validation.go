package create_reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	"github.com/pacohlim/showroom-reservation/pkg/types"
)

// parsedRequest разобранные и нормализованные поля запроса
type parsedRequest struct {
	date     time.Time
	slot     types.TimeString
	name     string
	phone    string
	password string
}

// validateRequest валидирует запрос в фиксированном порядке: дата, время,
// имя, телефон, пароль, принадлежность слота расписанию даты.
// Первое нарушение прерывает проверку.
func validateRequest(req *Request) (*parsedRequest, error) {
	date, err := domain.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	slot, err := types.NewTimeStringFromString(strings.TrimSpace(req.Time))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < domain.MinNameLength {
		return nil, fmt.Errorf("%w: at least %d characters required", ErrInvalidName, domain.MinNameLength)
	}

	// Телефон сводится к цифрам до проверки длины, в таком виде и хранится
	phone := digitsOnly(req.Phone)
	if len(phone) < domain.MinPhoneDigits {
		return nil, fmt.Errorf("%w: at least %d digits required", ErrInvalidPhone, domain.MinPhoneDigits)
	}

	password := strings.TrimSpace(req.Password)
	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: at least %d characters required", ErrInvalidPassword, domain.MinPasswordLength)
	}

	if !domain.IsSlotAllowed(date, slot) {
		return nil, fmt.Errorf("%w: %s at %s", ErrSlotNotAllowed, date.Format(domain.DateFormat), slot)
	}

	return &parsedRequest{
		date:     date,
		slot:     slot,
		name:     name,
		phone:    phone,
		password: password,
	}, nil
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
