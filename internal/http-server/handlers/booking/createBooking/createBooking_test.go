package createBooking

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/booking/createBooking/mocks"
	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start, err := time.Parse(time.RFC3339, "2030-06-01T10:00:00Z")
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, "2030-06-03T10:00:00Z")
	require.NoError(t, err)

	body := fmt.Sprintf(`{"item_id": 7, "start": %q, "end": %q}`,
		start.Format(time.RFC3339), end.Format(time.RFC3339))

	created := models.Booking{
		ID:       1,
		ItemID:   7,
		BookerID: 2,
		Start:    start,
		End:      end,
		Status:   models.StatusWaiting,
	}

	testCases := []struct {
		name           string
		userHeader     string
		requestBody    string
		mockSetup      func(mock *mocks.BookingCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			userHeader:  "2",
			requestBody: body,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", int64(7), int64(2), start, end).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"WAITING"`)
			},
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			requestBody:    body,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid user id header")
			},
		},
		{
			name:           "Invalid JSON",
			userHeader:     "2",
			requestBody:    `not json`,
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to decode request")
			},
		},
		{
			name:           "Missing item id",
			userHeader:     "2",
			requestBody:    fmt.Sprintf(`{"start": %q, "end": %q}`, start.Format(time.RFC3339), end.Format(time.RFC3339)),
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "ItemID")
			},
		},
		{
			name:       "Start equals end",
			userHeader: "2",
			requestBody: fmt.Sprintf(`{"item_id": 7, "start": %q, "end": %q}`,
				start.Format(time.RFC3339), start.Format(time.RFC3339)),
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "start must be before end")
			},
		},
		{
			name:       "Start after end",
			userHeader: "2",
			requestBody: fmt.Sprintf(`{"item_id": 7, "start": %q, "end": %q}`,
				end.Format(time.RFC3339), start.Format(time.RFC3339)),
			mockSetup:      func(mock *mocks.BookingCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "start must be before end")
			},
		},
		{
			name:        "Item not found",
			userHeader:  "2",
			requestBody: body,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", int64(7), int64(2), start, end).
					Return(models.Booking{}, storage.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "item not found")
			},
		},
		{
			name:        "Booking own item",
			userHeader:  "2",
			requestBody: body,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", int64(7), int64(2), start, end).
					Return(models.Booking{}, storage.ErrOwnItemBooking)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "owner cannot book own item")
			},
		},
		{
			name:        "Item unavailable",
			userHeader:  "2",
			requestBody: body,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", int64(7), int64(2), start, end).
					Return(models.Booking{}, storage.ErrItemUnavailable)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "not available")
			},
		},
		{
			name:        "Overlapping booking",
			userHeader:  "2",
			requestBody: body,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", int64(7), int64(2), start, end).
					Return(models.Booking{}, storage.ErrTimeConflict)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "already booked for this period")
			},
		},
		{
			name:        "Internal error",
			userHeader:  "2",
			requestBody: body,
			mockSetup: func(mock *mocks.BookingCreator) {
				mock.On("CreateBooking", int64(7), int64(2), start, end).
					Return(models.Booking{}, fmt.Errorf("database down"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to create booking")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewBookingCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/bookings", bytes.NewBufferString(tc.requestBody))
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
