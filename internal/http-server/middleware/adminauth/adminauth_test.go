package adminauth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"meetingBooker/internal/http-server/middleware/adminauth"
	"meetingBooker/internal/lib/logger/handlers/slogdiscard"
)

func TestAdminAuth(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("reached"))
	})

	gate := adminauth.New(slogdiscard.NewDiscardLogger(), "s3cret")(next)

	testCases := []struct {
		name           string
		method         string
		url            string
		header         string
		expectedStatus int
	}{
		{
			name:           "Valid header",
			method:         http.MethodPost,
			url:            "/admin/meetings",
			header:         "s3cret",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing secret",
			method:         http.MethodPost,
			url:            "/admin/meetings",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong secret",
			method:         http.MethodPost,
			url:            "/admin/meetings",
			header:         "guess",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Query parameter on GET",
			method:         http.MethodGet,
			url:            "/admin/export?secret=s3cret",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Query parameter rejected on POST",
			method:         http.MethodPost,
			url:            "/admin/meetings?secret=s3cret",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, tc.url, nil)
			if tc.header != "" {
				req.Header.Set(adminauth.HeaderName, tc.header)
			}

			rr := httptest.NewRecorder()
			gate.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestAdminAuthEmptyConfiguredSecret(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// An unset secret must fail closed rather than admit empty-for-empty.
	gate := adminauth.New(slogdiscard.NewDiscardLogger(), "")(next)

	req := httptest.NewRequest(http.MethodPost, "/admin/meetings", nil)
	rr := httptest.NewRecorder()
	gate.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
