package my_reservations

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	myReservations "github.com/pacohlim/showroom-reservation/internal/usecase/my_reservations"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type useCaseMock struct {
	resp   *myReservations.Response
	err    error
	gotReq *myReservations.Request
}

func (m *useCaseMock) Execute(_ context.Context, req *myReservations.Request) (*myReservations.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func getMy(query url.Values) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/my?"+query.Encode(), nil)
}

func TestHandler_Handle(t *testing.T) {
	uc := &useCaseMock{
		resp: &myReservations.Response{
			Items: []myReservations.Item{
				{
					ID:        "9b2d6c1e-5a3f-4e78-8c90-14f2ab67d3e5",
					Date:      time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
					Time:      "16:00",
					Status:    "booked",
					CreatedAt: time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC),
				},
				{
					ID:        "5f1a9c3b-7e2d-4a60-b8f4-c91d52e07a84",
					Date:      time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
					Time:      "14:00",
					Status:    "canceled",
					CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, getMy(url.Values{
		"name":     {"Kim Minji"},
		"phone":    {"010-1234-5678"},
		"password": {"1234"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)

	// Параметры запроса передаются в use case как есть
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Kim Minji", uc.gotReq.Name)
	assert.Equal(t, "010-1234-5678", uc.gotReq.Phone)
	assert.Equal(t, "1234", uc.gotReq.Password)

	assert.JSONEq(t, `{
		"ok": true,
		"items": [
			{
				"id": "9b2d6c1e-5a3f-4e78-8c90-14f2ab67d3e5",
				"date": "2025-03-22",
				"time": "16:00",
				"status": "booked",
				"createdAt": "2025-03-02T09:30:00Z"
			},
			{
				"id": "5f1a9c3b-7e2d-4a60-b8f4-c91d52e07a84",
				"date": "2025-03-15",
				"time": "14:00",
				"status": "canceled",
				"createdAt": "2025-03-01T10:00:00Z"
			}
		]
	}`, rec.Body.String())
}

func TestHandler_Handle_NoMatches(t *testing.T) {
	uc := &useCaseMock{resp: &myReservations.Response{Items: []myReservations.Item{}}}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, getMy(url.Values{
		"name":     {"Kim Minji"},
		"phone":    {"01012345678"},
		"password": {"9999"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true, "items": []}`, rec.Body.String())
}

func TestHandler_Handle_MissingFields(t *testing.T) {
	uc := &useCaseMock{err: myReservations.ErrMissingFields}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, getMy(url.Values{"name": {"Kim Minji"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "missing fields"}`, rec.Body.String())
}

func TestHandler_Handle_StorageError(t *testing.T) {
	uc := &useCaseMock{err: fmt.Errorf("%w: connection refused", myReservations.ErrStorage)}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, getMy(url.Values{
		"name":     {"Kim Minji"},
		"phone":    {"01012345678"},
		"password": {"1234"},
	}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"db error"`)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
