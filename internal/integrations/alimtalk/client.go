package alimtalk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	tokenPath = "/akv10/token/create/30/s"
	sendPath  = "/akv10/alimtalk/send"
)

// Client клиент чат-провайдера (шлюз Kakao AlimTalk).
// Каждая отправка начинается с обмена ключа на короткоживущий токен.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера
func NewClient(cfg Config, log Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log,
	}
}

// Send отправляет шаблонное сообщение получателю.
// Провайдер подтверждает прием кодом 0 в теле ответа; любой другой код
// означает отказ и возвращается как ошибка с сообщением провайдера.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	token, err := c.createToken(ctx)
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("apikey", c.cfg.APIKey)
	form.Set("userid", c.cfg.UserID)
	form.Set("token", token)
	form.Set("senderkey", c.cfg.SenderKey)
	form.Set("tpl_code", msg.Template)
	form.Set("sender", c.cfg.Sender)
	form.Set("receiver_1", msg.Receiver)
	form.Set("subject_1", msg.Subject)
	form.Set("message_1", msg.Body)
	if c.cfg.Failover {
		form.Set("failover", "Y")
	} else {
		form.Set("failover", "N")
	}

	var result sendResponse
	if err := c.postForm(ctx, sendPath, form, &result); err != nil {
		return err
	}

	if result.Code != 0 {
		return fmt.Errorf("%w: provider code %d: %s", ErrSendFailed, result.Code, result.Message)
	}

	c.log.Info("Alimtalk message sent: receiver=%s, template=%s", msg.Receiver, msg.Template)
	return nil
}

// createToken обменивает ключ API на короткоживущий токен отправки
func (c *Client) createToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("apikey", c.cfg.APIKey)
	form.Set("userid", c.cfg.UserID)

	var result tokenResponse
	if err := c.postForm(ctx, tokenPath, form, &result); err != nil {
		return "", err
	}

	if result.Code != 0 {
		return "", fmt.Errorf("%w: provider code %d: %s", ErrTokenRequest, result.Code, result.Message)
	}
	if result.Token == "" {
		return "", fmt.Errorf("%w: provider returned empty token", ErrTokenRequest)
	}

	return result.Token, nil
}

// postForm выполняет form-encoded POST и декодирует JSON-ответ в out
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
