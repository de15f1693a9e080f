package alimtalk

import "time"

// Config параметры подключения к провайдеру
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	APIKey    string
	UserID    string
	SenderKey string
	Sender    string // номер отправителя для failover-канала
	Failover  bool   // запрашивать ли откат в SMS при недоставке
}

// Message шаблонное сообщение.
// Body должен дословно совпадать с заполненным шаблоном Template,
// зарегистрированным у провайдера, иначе отправка будет отклонена.
type Message struct {
	Receiver string // номер получателя, только цифры
	Template string // код шаблона
	Subject  string
	Body     string
}

// tokenResponse ответ на запрос токена
type tokenResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// sendResponse ответ на отправку сообщения
type sendResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
