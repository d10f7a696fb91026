package deleteUser

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/user/deleteUser/mocks"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/storage"
)

func TestDeleteUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userID         string
		mockSetup      func(mock *mocks.UserDeleter)
		expectedStatus int
	}{
		{
			name:   "Success",
			userID: "1",
			mockSetup: func(mock *mocks.UserDeleter) {
				mock.On("DeleteUser", int64(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Not found",
			userID: "99",
			mockSetup: func(mock *mocks.UserDeleter) {
				mock.On("DeleteUser", int64(99)).Return(storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid id",
			userID:         "abc",
			mockSetup:      func(mock *mocks.UserDeleter) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewUserDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			req, err := http.NewRequest("DELETE", "/users/"+tc.userID, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Delete("/users/{id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
		})
	}
}
