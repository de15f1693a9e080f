package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/pacohlim/showroom-reservation/internal/usecase/create_reservation"
)

type stubLogger struct{}

func (stubLogger) Info(format string, v ...interface{})  {}
func (stubLogger) Warn(format string, v ...interface{})  {}
func (stubLogger) Error(format string, v ...interface{}) {}

type useCaseMock struct {
	resp   *createReservation.Response
	err    error
	gotReq *createReservation.Request
}

func (m *useCaseMock) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	m.gotReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func postReserve(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/reserve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Handle(t *testing.T) {
	uc := &useCaseMock{
		resp: &createReservation.Response{ID: "9b2d6c1e-5a3f-4e78-8c90-14f2ab67d3e5"},
	}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, postReserve(`{
		"date": "2025-03-15",
		"time": "14:00",
		"name": "Kim Minji",
		"phone": "010-1234-5678",
		"password": "1234",
		"landAddress": "27 Seongsui-ro",
		"utm_source": "naver"
	}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok": true, "id": "9b2d6c1e-5a3f-4e78-8c90-14f2ab67d3e5"}`, rec.Body.String())

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2025-03-15", uc.gotReq.Date)
	assert.Equal(t, "14:00", uc.gotReq.Time)
	assert.Equal(t, "Kim Minji", uc.gotReq.Name)
	assert.Equal(t, "010-1234-5678", uc.gotReq.Phone)
	assert.Equal(t, "1234", uc.gotReq.Password)
	// landAddress из HTTP модели попадает в Address use case
	require.NotNil(t, uc.gotReq.Address)
	assert.Equal(t, "27 Seongsui-ro", *uc.gotReq.Address)
	require.NotNil(t, uc.gotReq.UTMSource)
	assert.Equal(t, "naver", *uc.gotReq.UTMSource)
	assert.Nil(t, uc.gotReq.Notes)
	assert.Nil(t, uc.gotReq.UTMMedium)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, postReserve(`{broken`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "invalid request body"}`, rec.Body.String())
	assert.Nil(t, uc.gotReq)
}

func TestHandler_Handle_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "invalid date",
			err:     createReservation.ErrInvalidDate,
			wantMsg: "invalid date",
		},
		{
			name:    "invalid time",
			err:     createReservation.ErrInvalidTime,
			wantMsg: "invalid time",
		},
		{
			name:    "invalid name",
			err:     createReservation.ErrInvalidName,
			wantMsg: "invalid name",
		},
		{
			name:    "invalid phone",
			err:     createReservation.ErrInvalidPhone,
			wantMsg: "invalid phone",
		},
		{
			name:    "invalid password",
			err:     createReservation.ErrInvalidPassword,
			wantMsg: "invalid password",
		},
		{
			name:    "slot not allowed",
			err:     createReservation.ErrSlotNotAllowed,
			wantMsg: "unavailable time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{err: tt.err}
			h := NewHandler(uc, stubLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, postReserve(`{"date": "2025-03-15", "time": "14:00"}`))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error": %q}`, tt.wantMsg), rec.Body.String())
		})
	}
}

func TestHandler_Handle_SlotTaken(t *testing.T) {
	uc := &useCaseMock{err: createReservation.ErrSlotTaken}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, postReserve(`{"date": "2025-03-15", "time": "14:00", "name": "Kim Minji", "phone": "01012345678", "password": "1234"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error": "already booked"}`, rec.Body.String())
}

func TestHandler_Handle_StorageError(t *testing.T) {
	// Текст ошибки драйвера отдается клиенту в detail
	uc := &useCaseMock{
		err: fmt.Errorf("%w: pq: deadlock detected", createReservation.ErrStorage),
	}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, postReserve(`{"date": "2025-03-15", "time": "14:00", "name": "Kim Minji", "phone": "01012345678", "password": "1234"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"db error"`)
	assert.Contains(t, rec.Body.String(), "pq: deadlock detected")
}

func TestHandler_Handle_UnexpectedError(t *testing.T) {
	uc := &useCaseMock{err: errors.New("boom")}
	h := NewHandler(uc, stubLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, postReserve(`{"date": "2025-03-15", "time": "14:00", "name": "Kim Minji", "phone": "01012345678", "password": "1234"}`))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "server error"}`, rec.Body.String())
}
