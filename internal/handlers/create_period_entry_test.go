package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/femwell/femwell-backend/internal/models"
)

func TestCreatePeriodEntryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		body            any
		rawBody         string
		mockSetup       func(m *MockPeriodEntryCreator)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: CreatePeriodEntryRequest{
				UserID:   int64Ptr(1),
				Date:     "2024-01-15",
				Flow:     strPtr("medium"),
				Symptoms: []string{"cramps"},
			},
			mockSetup: func(m *MockPeriodEntryCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, e models.PeriodEntry) (*models.PeriodEntry, error) {
						e.ID = 1
						return &e, nil
					})
			},
			expectedCode: 200,
		},
		{
			name: "anonymous entry without flow",
			body: CreatePeriodEntryRequest{Date: "2024-02-01"},
			mockSetup: func(m *MockPeriodEntryCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, e models.PeriodEntry) (*models.PeriodEntry, error) {
						e.ID = 2
						return &e, nil
					})
			},
			expectedCode: 200,
		},
		{
			name:            "missing date",
			body:            CreatePeriodEntryRequest{UserID: int64Ptr(1)},
			expectedCode:    400,
			expectedMessage: "Invalid entry data",
		},
		{
			name:            "invalid json",
			rawBody:         `{"date": 42}`,
			expectedCode:    400,
			expectedMessage: "Invalid entry data",
		},
		{
			name: "internal server error",
			body: CreatePeriodEntryRequest{Date: "2024-01-15"},
			mockSetup: func(m *MockPeriodEntryCreator) {
				m.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    500,
			expectedMessage: "Failed to create period entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPeriodEntryCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreatePeriodEntryHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/period-entries", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/api/period-entries", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode != 200 {
				var resp APIError
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}
