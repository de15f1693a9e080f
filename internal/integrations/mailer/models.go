package mailer

import "time"

// Config параметры подключения к почтовому шлюзу
type Config struct {
	BaseURL string
	Timeout time.Duration
	APIKey  string
	From    string // адрес отправителя, например "Pacohlim Showroom <noreply@pacohlim.com>"
}

// Attachment вложение письма. Content передается в base64.
type Attachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// Message письмо. Отправитель подставляется клиентом из конфигурации.
type Message struct {
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// sendRequest модель запроса к шлюзу
type sendRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Attachments []Attachment `json:"attachments,omitempty"`
}
