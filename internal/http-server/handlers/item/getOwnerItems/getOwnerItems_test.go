package getOwnerItems

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/item/getOwnerItems/mocks"
	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestGetOwnerItemsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userHeader     string
		mockSetup      func(mock *mocks.OwnerItemsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:       "Success",
			userHeader: "1",
			mockSetup: func(mock *mocks.OwnerItemsGetter) {
				mock.On("ItemsByOwner", int64(1)).Return([]models.ItemDetails{
					{
						Item: models.Item{
							ID:          5,
							OwnerID:     1,
							Name:        "Drill",
							Description: "Cordless drill",
							Available:   true,
						},
						Comments: []models.Comment{},
					},
					{
						Item: models.Item{
							ID:          6,
							OwnerID:     1,
							Name:        "Ladder",
							Description: "Folding ladder",
							Available:   true,
						},
						Comments: []models.Comment{},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Drill")
				assert.Contains(t, body, "Ladder")
			},
		},
		{
			name:       "No items",
			userHeader: "2",
			mockSetup: func(mock *mocks.OwnerItemsGetter) {
				mock.On("ItemsByOwner", int64(2)).Return([]models.ItemDetails{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"items":[]`)
			},
		},
		{
			name:       "Unknown user",
			userHeader: "99",
			mockSetup: func(mock *mocks.OwnerItemsGetter) {
				mock.On("ItemsByOwner", int64(99)).Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user not found")
			},
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			mockSetup:      func(mock *mocks.OwnerItemsGetter) {},
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

			mockGetter := mocks.NewOwnerItemsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/items", nil)
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
