package createRequest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemshare/internal/http-server/handlers/request/createRequest/mocks"
	"itemshare/internal/lib/api/identity"
	"itemshare/internal/lib/logger/handlers/slogdiscard"
	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func TestCreateRequestHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		userHeader     string
		requestBody    string
		mockSetup      func(mock *mocks.RequestSaver)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			userHeader:  "2",
			requestBody: `{"description": "Need a tile cutter for a weekend"}`,
			mockSetup: func(mock *mocks.RequestSaver) {
				mock.On("SaveRequest", int64(2), "Need a tile cutter for a weekend").
					Return(models.ItemRequest{
						ID:          7,
						Description: "Need a tile cutter for a weekend",
						RequesterID: 2,
						Created:     created,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":7`)
				assert.Contains(t, body, "tile cutter")
			},
		},
		{
			name:           "Empty description",
			userHeader:     "2",
			requestBody:    `{"description": ""}`,
			mockSetup:      func(mock *mocks.RequestSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Description")
			},
		},
		{
			name:        "Unknown user",
			userHeader:  "99",
			requestBody: `{"description": "Need a tile cutter"}`,
			mockSetup: func(mock *mocks.RequestSaver) {
				mock.On("SaveRequest", int64(99), "Need a tile cutter").
					Return(models.ItemRequest{}, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "user not found")
			},
		},
		{
			name:           "Missing user header",
			userHeader:     "",
			requestBody:    `{"description": "Need a tile cutter"}`,
			mockSetup:      func(mock *mocks.RequestSaver) {},
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

			mockSaver := mocks.NewRequestSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest("POST", "/requests", bytes.NewBufferString(tc.requestBody))
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
