// Package ics собирает минимальные календарные вложения iCalendar (RFC 5545)
package ics

import (
	"strings"
	"time"
)

const dateTimeLayout = "20060102T150405Z"

// Event одно событие VEVENT.
// Start и End задаются в UTC; Stamp подставляется в DTSTAMP
// (нулевое значение заменяется текущим временем).
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Stamp       time.Time
	Summary     string
	Description string
	Location    string
}

// Render возвращает содержимое файла .ics с CRLF-переводами строк
func (e *Event) Render() string {
	stamp := e.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//pacohlim//showroom-reservation//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + e.UID,
		"DTSTAMP:" + stamp.UTC().Format(dateTimeLayout),
		"DTSTART:" + e.Start.UTC().Format(dateTimeLayout),
		"DTEND:" + e.End.UTC().Format(dateTimeLayout),
		"SUMMARY:" + EscapeText(e.Summary),
	}

	if e.Location != "" {
		lines = append(lines, "LOCATION:"+EscapeText(e.Location))
	}
	if e.Description != "" {
		lines = append(lines, "DESCRIPTION:"+EscapeText(e.Description))
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	return strings.Join(lines, "\r\n") + "\r\n"
}

// EscapeText экранирует текстовое значение по правилам RFC 5545:
// обратный слеш, перевод строки, запятая и точка с запятой.
func EscapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	return s
}
