package alimtalk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		Timeout:   time.Second,
		APIKey:    "key",
		UserID:    "pacohlim",
		SenderKey: "sk",
		Sender:    "0212345678",
		Failover:  true,
	}
}

func TestClient_Send(t *testing.T) {
	var tokenForm, sendForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form := map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}

		switch r.URL.Path {
		case "/akv10/token/create/30/s":
			tokenForm = form
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "message": "ok", "token": "tok-123"})
		case "/akv10/alimtalk/send":
			sendForm = form
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "message": "success"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})

	err := client.Send(context.Background(), &Message{
		Receiver: "01012345678",
		Template: "TV_2024",
		Subject:  "Reservation confirmed",
		Body:     "Hello Kim, your showroom visit is confirmed for 2025-03-15 at 14:00.",
	})
	require.NoError(t, err)

	// Обмен токена идет по ключу и идентификатору пользователя
	assert.Equal(t, "key", tokenForm["apikey"])
	assert.Equal(t, "pacohlim", tokenForm["userid"])

	// Отправка несет токен, ключ отправителя, шаблон и failover-флаг
	assert.Equal(t, "tok-123", sendForm["token"])
	assert.Equal(t, "sk", sendForm["senderkey"])
	assert.Equal(t, "TV_2024", sendForm["tpl_code"])
	assert.Equal(t, "0212345678", sendForm["sender"])
	assert.Equal(t, "01012345678", sendForm["receiver_1"])
	assert.Equal(t, "Reservation confirmed", sendForm["subject_1"])
	assert.Equal(t, "Y", sendForm["failover"])
}

func TestClient_Send_FailoverDisabled(t *testing.T) {
	var failover string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.URL.Path == "/akv10/alimtalk/send" {
			failover = r.PostForm.Get("failover")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "token": "tok"})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Failover = false
	client := NewClient(cfg, nopLogger{})

	require.NoError(t, client.Send(context.Background(), &Message{Receiver: "0101", Template: "T", Body: "b"}))
	assert.Equal(t, "N", failover)
}

func TestClient_Send_ProviderRejectsSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/akv10/token/create/30/s" {
			json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "token": "tok"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"code": -99, "message": "invalid template"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})

	err := client.Send(context.Background(), &Message{Receiver: "0101", Template: "bad", Body: "b"})
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.Contains(t, err.Error(), "invalid template")
}

func TestClient_Send_TokenRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 8, "message": "auth failed"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})

	err := client.Send(context.Background(), &Message{Receiver: "0101", Template: "T", Body: "b"})
	assert.ErrorIs(t, err, ErrTokenRequest)
}

func TestClient_Send_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 0, "message": "ok"})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})

	err := client.Send(context.Background(), &Message{Receiver: "0101", Template: "T", Body: "b"})
	assert.ErrorIs(t, err, ErrTokenRequest)
}

func TestClient_Send_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), nopLogger{})

	err := client.Send(context.Background(), &Message{Receiver: "0101", Template: "T", Body: "b"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "gateway timeout")
}

func TestClient_Send_ProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // закрываем сразу: соединение будет отклонено

	client := NewClient(testConfig(srv.URL), nopLogger{})

	err := client.Send(context.Background(), &Message{Receiver: "0101", Template: "T", Body: "b"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
