package getOwnerBookings

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/booking/getOwnerBookings/mocks"
	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestGetOwnerBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	bookings := []models.Booking{
		{ID: 8, ItemID: 7, BookerID: 4, Status: models.StatusRejected},
	}

	testCases := []struct {
		name           string
		userHeader     string
		query          string
		mockSetup      func(mock *mocks.OwnerBookingsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Filter by rejected",
			userHeader: "1",
			query:      "?state=REJECTED",
			mockSetup: func(mock *mocks.OwnerBookingsGetter) {
				mock.On("BookingsByOwner", int64(1), models.StateRejected, 0, 10).Return(bookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"REJECTED"`)
			},
		},
		{
			name:       "Empty result",
			userHeader: "1",
			query:      "?state=future",
			mockSetup: func(mock *mocks.OwnerBookingsGetter) {
				mock.On("BookingsByOwner", int64(1), models.StateFuture, 0, 10).
					Return([]models.Booking{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Unknown state",
			userHeader:     "1",
			query:          "?state=DECIDED",
			mockSetup:      func(mock *mocks.OwnerBookingsGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "unknown state")
			},
		},
		{
			name:       "Unknown user",
			userHeader: "99",
			query:      "",
			mockSetup: func(mock *mocks.OwnerBookingsGetter) {
				mock.On("BookingsByOwner", int64(99), models.StateAll, 0, 10).
					Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user not found")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewOwnerBookingsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/bookings/owner"+tc.query, nil)
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
