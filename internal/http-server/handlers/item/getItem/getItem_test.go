package getItem

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/item/getItem/mocks"
	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestGetItemHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	lastStart := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	lastEnd := lastStart.Add(48 * time.Hour)

	testCases := []struct {
		name           string
		itemID         string
		userHeader     string
		mockSetup      func(mock *mocks.ItemGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Owner sees bookings",
			itemID:     "5",
			userHeader: "1",
			mockSetup: func(mock *mocks.ItemGetter) {
				mock.On("ItemByID", int64(5), int64(1)).Return(models.ItemDetails{
					Item: models.Item{
						ID:          5,
						OwnerID:     1,
						Name:        "Drill",
						Description: "Cordless drill",
						Available:   true,
					},
					LastBooking: &models.Booking{
						ID:       3,
						ItemID:   5,
						BookerID: 2,
						Start:    lastStart,
						End:      lastEnd,
						Status:   models.StatusApproved,
					},
					Comments: []models.Comment{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "last_booking")
				assert.Contains(t, body, "Drill")
			},
		},
		{
			name:       "Other user sees no bookings",
			itemID:     "5",
			userHeader: "2",
			mockSetup: func(mock *mocks.ItemGetter) {
				mock.On("ItemByID", int64(5), int64(2)).Return(models.ItemDetails{
					Item: models.Item{
						ID:          5,
						OwnerID:     1,
						Name:        "Drill",
						Description: "Cordless drill",
						Available:   true,
					},
					Comments: []models.Comment{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.NotContains(t, body, "last_booking")
				assert.Contains(t, body, `"comments":[]`)
			},
		},
		{
			name:       "Item not found",
			itemID:     "99",
			userHeader: "1",
			mockSetup: func(mock *mocks.ItemGetter) {
				mock.On("ItemByID", int64(99), int64(1)).
					Return(models.ItemDetails{}, storage.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "item not found")
			},
		},
		{
			name:           "Invalid item id",
			itemID:         "abc",
			userHeader:     "1",
			mockSetup:      func(mock *mocks.ItemGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid item id format")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewItemGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/items/"+tc.itemID, nil)
			require.NoError(t, err)
			if tc.userHeader != "" {
				req.Header.Set(identity.Header, tc.userHeader)
			}

			router := chi.NewRouter()
			router.Get("/items/{id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}
