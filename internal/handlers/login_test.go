package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sgolovanov/workout-tracker/internal/models"
	"github.com/sgolovanov/workout-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com"}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockLoginer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "login by username",
			requestBody: LoginRequest{
				Username: "alice",
				Password: "secret123",
			},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "secret123").
					Return("token123", user, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name: "login by email",
			requestBody: LoginRequest{
				Email:    "alice@example.com",
				Password: "secret123",
			},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret123").
					Return("token123", user, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "missing password",
			requestBody: LoginRequest{
				Username: "alice",
			},
			setupMocks:         func(mockSvc *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "invalid credentials",
			requestBody: LoginRequest{
				Username: "alice",
				Password: "wrong",
			},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "unknown user reported as invalid credentials",
			requestBody: LoginRequest{
				Username: "ghost",
				Password: "secret123",
			},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "ghost", "secret123").
					Return("", nil, services.ErrUserDoesNotExist)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal error",
			requestBody: LoginRequest{
				Username: "alice",
				Password: "secret123",
			},
			setupMocks: func(mockSvc *MockLoginer) {
				mockSvc.EXPECT().
					Login(gomock.Any(), "alice", "secret123").
					Return("", nil, errors.New("db error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginer(ctrl)
			tt.setupMocks(mockSvc)

			handler := NewLoginHandler(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp, tt.expectedKey)

			if tt.expectedStatusCode == http.StatusOK {
				assert.Equal(t, "token123", resp["token"])
				userPayload, ok := resp["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "alice", userPayload["username"])
				assert.Equal(t, userID.String(), userPayload["id"])
			}
		})
	}
}
