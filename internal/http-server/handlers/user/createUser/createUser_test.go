package createUser

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/user/createUser/mocks"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestCreateUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.UserSaver)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"name": "Alice", "email": "a@x.com"}`,
			mockSetup: func(mock *mocks.UserSaver) {
				mock.On("SaveUser", models.User{Name: "Alice", Email: "a@x.com"}).
					Return(models.User{ID: 1, Name: "Alice", Email: "a@x.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"id":1`)
			},
		},
		{
			name:           "Missing name",
			requestBody:    `{"email": "a@x.com"}`,
			mockSetup:      func(mock *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:           "Invalid email",
			requestBody:    `{"name": "Alice", "email": "not-an-email"}`,
			mockSetup:      func(mock *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{{`,
			mockSetup:      func(mock *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to decode request")
			},
		},
		{
			name:        "Duplicate email",
			requestBody: `{"name": "Bob", "email": "a@x.com"}`,
			mockSetup: func(mock *mocks.UserSaver) {
				mock.On("SaveUser", models.User{Name: "Bob", Email: "a@x.com"}).
					Return(models.User{}, storage.ErrEmailExists)
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "email already in use")
			},
		},
		{
			name:        "Internal error",
			requestBody: `{"name": "Bob", "email": "b@x.com"}`,
			mockSetup: func(mock *mocks.UserSaver) {
				mock.On("SaveUser", models.User{Name: "Bob", Email: "b@x.com"}).
					Return(models.User{}, errors.New("database down"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to save user")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewUserSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest("POST", "/users", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
