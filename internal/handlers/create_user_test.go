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
	"github.com/femwell/femwell-backend/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		body            any
		rawBody         string // if set, passed verbatim to simulate invalid JSON
		mockSetup       func(m *MockUserRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: CreateUserRequest{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Password:  "secret123",
			},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(&models.User{
						ID:        1,
						FirstName: "Jane",
						LastName:  "Doe",
						Email:     "jane@example.com",
						Password:  "secret123",
					}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "duplicate email",
			body: CreateUserRequest{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Password:  "secret123",
			},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode:    400,
			expectedMessage: "User with this email already exists",
		},
		{
			name: "internal server error",
			body: CreateUserRequest{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Password:  "secret123",
			},
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    500,
			expectedMessage: "Failed to create user",
		},
		{
			name:            "missing required fields",
			body:            CreateUserRequest{FirstName: "Jane"},
			expectedCode:    400,
			expectedMessage: "Invalid user data",
		},
		{
			name:            "invalid json",
			rawBody:         "{invalid json}",
			expectedCode:    400,
			expectedMessage: "Invalid user data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.body)
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp CreateUserResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, int64(1), resp.ID)
				assert.Equal(t, "jane@example.com", resp.Email)
				assert.NotContains(t, rr.Body.String(), "secret123", "password must never be echoed")
			} else {
				var resp APIError
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestCreateUserHandler_AllValidationErrorsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCreateUserHandler(NewMockUserRegisterer(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 400, rr.Code)

	var resp APIError
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Errors, 4, "firstName, lastName, email, and password must all be reported")
}
