package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	ctx := l.WithContext(r.Context())
	return r.WithContext(ctx)
}

// makeRequest creates a test request with a buffer-backed logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return injectLogger(req, l)
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:             "GET 200",
			method:           http.MethodGet,
			path:             "/users",
			handlerStatus:    http.StatusOK,
			handlerResponse:  `[]`,
			checkLogContains: []string{`"uri":"/users"`, `"method":"GET"`, `"status":200`},
		},
		{
			name:             "POST 422",
			method:           http.MethodPost,
			path:             "/orders",
			handlerStatus:    http.StatusUnprocessableEntity,
			handlerResponse:  `{"message":"invalid input"}`,
			checkLogContains: []string{`"method":"POST"`, `"status":422`},
		},
		{
			name:             "DELETE 404",
			method:           http.MethodDelete,
			path:             "/products/99",
			handlerStatus:    http.StatusNotFound,
			checkLogContains: []string{`"uri":"/products/99"`, `"status":404`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					w.Write([]byte(tt.handlerResponse)) //nolint:errcheck
				}
			})

			req := makeRequest(tt.method, tt.path, &buf)
			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logLine := buf.String()
			for _, fragment := range tt.checkLogContains {
				assert.True(t, strings.Contains(logLine, fragment),
					"log line should contain %s, got: %s", fragment, logLine)
			}
			assert.Contains(t, logLine, `"duration"`)
			assert.Contains(t, logLine, `"size"`)
		})
	}
}

func TestWithLogging_SizeAccumulated(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("hello ")) //nolint:errcheck
		w.Write([]byte("world"))  //nolint:errcheck
	})

	req := makeRequest(http.MethodGet, "/users", &buf)
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, buf.String(), `"size":11`)
}
