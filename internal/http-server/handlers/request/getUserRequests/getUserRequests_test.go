package getUserRequests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/request/getUserRequests/mocks"
	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestGetUserRequestsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		userHeader     string
		mockSetup      func(mock *mocks.UserRequestsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Success",
			userHeader: "2",
			mockSetup: func(mock *mocks.UserRequestsGetter) {
				mock.On("RequestsByUser", int64(2)).Return([]models.ItemRequest{
					{
						ID:          7,
						Description: "Need a tile cutter",
						RequesterID: 2,
						Created:     created,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "tile cutter")
			},
		},
		{
			name:       "No requests",
			userHeader: "3",
			mockSetup: func(mock *mocks.UserRequestsGetter) {
				mock.On("RequestsByUser", int64(3)).Return([]models.ItemRequest{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"requests":[]`)
			},
		},
		{
			name:       "Unknown user",
			userHeader: "99",
			mockSetup: func(mock *mocks.UserRequestsGetter) {
				mock.On("RequestsByUser", int64(99)).Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user not found")
			},
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			mockSetup:      func(mock *mocks.UserRequestsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid user id header")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewUserRequestsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/requests", nil)
			require.NoError(t, err)
			if tc.userHeader != "" {
				req.Header.Set(identity.Header, tc.userHeader)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
