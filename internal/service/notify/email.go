package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/pacohlim/showroom-reservation/internal/domain"
	"github.com/pacohlim/showroom-reservation/pkg/ics"
)

// escapeHTML экранирует пользовательский текст для вставки в HTML-разметку.
// Экранируются ровно три символа: &, <, >.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// buildSummaryHTML собирает HTML-сводку бронирования для письма администратору
func buildSummaryHTML(r *domain.Reservation) string {
	var b strings.Builder

	b.WriteString("<h2>New showroom reservation</h2>\n")
	b.WriteString(`<table border="1" cellpadding="6" cellspacing="0">` + "\n")
	writeRow(&b, "Date", r.Date.Format(domain.DateFormat))
	writeRow(&b, "Time", r.Time.String())
	writeRow(&b, "Name", escapeHTML(r.Name))
	writeRow(&b, "Phone", escapeHTML(r.Phone))
	if r.Address != nil {
		writeRow(&b, "Address", escapeHTML(*r.Address))
	}
	if r.Notes != nil {
		writeRow(&b, "Notes", escapeHTML(*r.Notes))
	}
	writeRow(&b, "Channel", escapeHTML(r.Channel))
	if r.UTMSource != nil {
		writeRow(&b, "UTM source", escapeHTML(*r.UTMSource))
	}
	if r.UTMMedium != nil {
		writeRow(&b, "UTM medium", escapeHTML(*r.UTMMedium))
	}
	if r.UTMCampaign != nil {
		writeRow(&b, "UTM campaign", escapeHTML(*r.UTMCampaign))
	}
	b.WriteString("</table>\n")

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "<tr><td><b>%s</b></td><td>%s</td></tr>\n", label, value)
}

// buildInvite собирает календарное приглашение на визит.
// UID равен идентификатору брони, начало в фиксированном поясе шоурума,
// длительность один час.
func buildInvite(r *domain.Reservation, now time.Time) (*ics.Event, error) {
	start, err := r.StartsAt()
	if err != nil {
		return nil, err
	}

	return &ics.Event{
		UID:         r.ID,
		Start:       start,
		End:         start.Add(domain.VisitDurationMinutes * time.Minute),
		Stamp:       now,
		Summary:     fmt.Sprintf("%s visit: %s", domain.ShowroomName, r.Name),
		Description: fmt.Sprintf("Visitor: %s (%s)", r.Name, r.Phone),
		Location:    domain.ShowroomLocation,
	}, nil
}
