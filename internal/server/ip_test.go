package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ipget/ipget/internal/store"
	"github.com/stretchr/testify/assert"
)

type stubLatestReader struct {
	record *store.Record
	err    error
}

func (s *stubLatestReader) ReadLatest(_ context.Context) (
	*store.Record, error) {
	return s.record, s.err
}

type testLogger struct{}

func (testLogger) Info(_ string)  {}
func (testLogger) Warn(_ string)  {}
func (testLogger) Error(_ string) {}

func Test_handlers_getLatestIP(t *testing.T) {
	t.Parallel()

	recordTime := time.Date(2023, time.June, 4, 12, 30, 0, 0, time.UTC)
	testCases := map[string]struct {
		db     *stubLatestReader
		status int
		body   string
	}{
		"record": {
			db: &stubLatestReader{record: &store.Record{
				ID:      3,
				Time:    recordTime,
				Address: "203.0.113.5",
			}},
			status: http.StatusOK,
			body: `{"id":3,"time":"2023-06-04T12:30:00Z",` +
				`"ip_address":"203.0.113.5"}` + "\n",
		},
		"no_record": {
			db:     &stubLatestReader{},
			status: http.StatusNotFound,
			body:   `{"error":"no public IP address recorded yet"}` + "\n",
		},
		"database_error": {
			db:     &stubLatestReader{err: assert.AnError},
			status: http.StatusInternalServerError,
			body:   `{"error":"Internal Server Error"}` + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newHandler(testLogger{}, testCase.db, "unknown")
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/api/v1/ip", nil)

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.status, recorder.Code)
			assert.Equal(t, testCase.body, recorder.Body.String())
		})
	}
}

func Test_handlers_getVersion(t *testing.T) {
	t.Parallel()

	handler := newHandler(testLogger{}, &stubLatestReader{}, "v1.2.3")
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `{"version":"v1.2.3"}`+"\n", recorder.Body.String())
}
