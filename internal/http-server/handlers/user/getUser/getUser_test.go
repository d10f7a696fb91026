package getUser

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/user/getUser/mocks"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestGetUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userID         string
		mockSetup      func(mock *mocks.UserGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			userID: "1",
			mockSetup: func(mock *mocks.UserGetter) {
				mock.On("UserByID", int64(1)).
					Return(models.User{ID: 1, Name: "Alice", Email: "a@x.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"Alice"`)
			},
		},
		{
			name:   "Not found",
			userID: "99",
			mockSetup: func(mock *mocks.UserGetter) {
				mock.On("UserByID", int64(99)).Return(models.User{}, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user not found")
			},
		},
		{
			name:           "Invalid id",
			userID:         "abc",
			mockSetup:      func(mock *mocks.UserGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid user id format")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewUserGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/users/"+tc.userID, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Get("/users/{id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
