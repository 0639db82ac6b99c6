package deleteMeeting

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetingBooker/internal/http-server/handlers/meeting/deleteMeeting/mocks"
	"meetingBooker/internal/lib/logger/handlers/slogdiscard"
	"meetingBooker/internal/models"
	"meetingBooker/internal/storage"
)

func TestDeleteMeetingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		meetingID      string
		mockSetup      func(m *mocks.MeetingDeleter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:      "Success with cascade",
			meetingID: "m-1",
			mockSetup: func(m *mocks.MeetingDeleter) {
				m.On("DeleteMeeting", mock.Anything, "m-1").
					Return(models.Meeting{ID: "m-1", Title: "Intro"}, 3, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"removed_bookings":3`)
			},
		},
		{
			name:      "Meeting not found",
			meetingID: "missing",
			mockSetup: func(m *mocks.MeetingDeleter) {
				m.On("DeleteMeeting", mock.Anything, "missing").
					Return(models.Meeting{}, 0, storage.ErrMeetingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"meeting not found","code":"not_found"}`,
		},
		{
			name:      "Internal server error",
			meetingID: "m-1",
			mockSetup: func(m *mocks.MeetingDeleter) {
				m.On("DeleteMeeting", mock.Anything, "m-1").
					Return(models.Meeting{}, 0, errors.New("store is down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete meeting","code":"internal"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewMeetingDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			router := chi.NewRouter()
			router.Delete("/admin/meetings/{id}", handler)

			req, err := http.NewRequest("DELETE", "/admin/meetings/"+tc.meetingID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockDeleter.AssertExpectations(t)
		})
	}
}
