package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_handler(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		method     string
		target     string
		checkErr   error
		status     int
		body       string
	}{
		"healthy": {
			method: http.MethodGet,
			target: "/",
			status: http.StatusOK,
		},
		"unhealthy": {
			method:   http.MethodGet,
			target:   "/",
			checkErr: assert.AnError,
			status:   http.StatusInternalServerError,
			body:     assert.AnError.Error() + "\n",
		},
		"bad_method": {
			method: http.MethodPost,
			target: "/",
			status: http.StatusNotFound,
			body:   http.StatusText(http.StatusNotFound) + "\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := newHandler(func() error {
				return testCase.checkErr
			})
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(testCase.method, testCase.target, nil)

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, testCase.status, recorder.Code)
			assert.Equal(t, testCase.body, recorder.Body.String())
		})
	}
}
