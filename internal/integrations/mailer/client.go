package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const sendPath = "/emails"

// Client клиент транзакционного почтового шлюза
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Send отправляет письмо одним авторизованным POST-запросом.
// Успехом считается любой 2xx-статус; остальные ответы возвращаются
// как ошибка вместе с телом ответа шлюза.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	payload, err := json.Marshal(sendRequest{
		From:        c.cfg.From,
		To:          msg.To,
		Subject:     msg.Subject,
		HTML:        msg.HTML,
		Attachments: msg.Attachments,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+sendPath,
		bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}

	c.log.Info("Email sent: to=%v, subject=%q", msg.To, msg.Subject)
	return nil
}
