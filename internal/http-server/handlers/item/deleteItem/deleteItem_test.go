package deleteItem

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/item/deleteItem/mocks"
	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/storage"
)

func TestDeleteItemHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		itemID         string
		userHeader     string
		mockSetup      func(mock *mocks.ItemDeleter)
		expectedStatus int
	}{
		{
			name:       "Success",
			itemID:     "5",
			userHeader: "1",
			mockSetup: func(mock *mocks.ItemDeleter) {
				mock.On("DeleteItem", int64(5), int64(1)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "Not the owner",
			itemID:     "5",
			userHeader: "2",
			mockSetup: func(mock *mocks.ItemDeleter) {
				mock.On("DeleteItem", int64(5), int64(2)).Return(storage.ErrNotOwner)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:       "Item not found",
			itemID:     "99",
			userHeader: "1",
			mockSetup: func(mock *mocks.ItemDeleter) {
				mock.On("DeleteItem", int64(99), int64(1)).Return(storage.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Missing user header",
			itemID:         "5",
			userHeader:     "",
			mockSetup:      func(mock *mocks.ItemDeleter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid item id",
			itemID:         "abc",
			userHeader:     "1",
			mockSetup:      func(mock *mocks.ItemDeleter) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewItemDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			req, err := http.NewRequest("DELETE", "/items/"+tc.itemID, nil)
			require.NoError(t, err)
			if tc.userHeader != "" {
				req.Header.Set(identity.Header, tc.userHeader)
			}

			router := chi.NewRouter()
			router.Delete("/items/{id}", handler)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
		})
	}
}
