package notify

import (
	"strings"

	"github.com/pacohlim/showroom-reservation/internal/domain"
)

// Тексты сообщений дублируют шаблоны, зарегистрированные у провайдера
// под кодами из конфигурации (tpl_code). Плейсхолдеры вида #{name}
// заполняются из фиксированного набора: имя, дата, время.
const (
	confirmationSubject = "Reservation confirmed"
	confirmationBody    = "Hello #{name}, your visit to " + domain.ShowroomName + " is confirmed.\n\n" +
		"Date: #{date}\nTime: #{time}\n\nSee you soon!"

	reminderDayBeforeSubject = "Visit reminder"
	reminderDayBeforeBody    = "Hello #{name}, this is a reminder that your visit to " + domain.ShowroomName +
		" is tomorrow, #{date} at #{time}."

	reminderDayOfSubject = "Visit today"
	reminderDayOfBody    = "Hello #{name}, your visit to " + domain.ShowroomName +
		" is today, #{date} at #{time}. We are looking forward to seeing you!"
)

// fillTemplate подставляет значения бронирования в именованные плейсхолдеры
func fillTemplate(tpl string, r *domain.Reservation) string {
	return strings.NewReplacer(
		"#{name}", r.Name,
		"#{date}", r.Date.Format(domain.DateFormat),
		"#{time}", r.Time.String(),
	).Replace(tpl)
}
