package updateMeeting

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetingBooker/internal/http-server/handlers/meeting/updateMeeting/mocks"
	"meetingBooker/internal/lib/logger/handlers/slogdiscard"
	"meetingBooker/internal/models"
	"meetingBooker/internal/storage"
)

func strPtr(s string) *string {
	return &s
}

func intPtr(n int) *int {
	return &n
}

func TestUpdateMeetingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		meetingID      string
		requestBody    string
		mockSetup      func(m *mocks.MeetingUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success partial update",
			meetingID:   "m-1",
			requestBody: `{"title": "Renamed", "max_attendees": 8}`,
			mockSetup: func(m *mocks.MeetingUpdater) {
				m.On("UpdateMeeting", mock.Anything, "m-1", storage.UpdateMeetingInput{
					Title:        strPtr("Renamed"),
					MaxAttendees: intPtr(8),
				}).Return(models.Meeting{
					ID:           "m-1",
					Title:        "Renamed",
					MaxAttendees: intPtr(8),
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"title":"Renamed"`)
				assert.Contains(t, body, `"max_attendees":8`)
			},
		},
		{
			name:           "Invalid JSON",
			meetingID:      "m-1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.MeetingUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Meeting not found",
			meetingID:   "missing",
			requestBody: `{"title": "Renamed"}`,
			mockSetup: func(m *mocks.MeetingUpdater) {
				m.On("UpdateMeeting", mock.Anything, "missing", mock.Anything).
					Return(models.Meeting{}, storage.ErrMeetingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"meeting not found","code":"not_found"}`,
		},
		{
			name:        "Validation error",
			meetingID:   "m-1",
			requestBody: `{"duration_minutes": 0}`,
			mockSetup: func(m *mocks.MeetingUpdater) {
				m.On("UpdateMeeting", mock.Anything, "m-1", mock.Anything).
					Return(models.Meeting{}, fmt.Errorf("%w: invalid duration", storage.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid input: invalid duration","code":"validation"}`,
		},
		{
			name:        "Internal server error",
			meetingID:   "m-1",
			requestBody: `{"title": "Renamed"}`,
			mockSetup: func(m *mocks.MeetingUpdater) {
				m.On("UpdateMeeting", mock.Anything, "m-1", mock.Anything).
					Return(models.Meeting{}, fmt.Errorf("store is down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update meeting","code":"internal"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewMeetingUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			router := chi.NewRouter()
			router.Put("/admin/meetings/{id}", handler)

			url := "/admin/meetings/" + tc.meetingID
			req, err := http.NewRequest("PUT", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockUpdater.AssertExpectations(t)
		})
	}
}
