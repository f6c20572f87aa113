package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		headers    map[string]string
		wantNext   bool
		wantOrigin bool
	}{
		{
			name:   "preflight is answered without reaching the handler",
			method: http.MethodOptions,
			headers: map[string]string{
				"Origin":                         "https://tickets.example.com",
				"Access-Control-Request-Method":  http.MethodPost,
				"Access-Control-Request-Headers": "Authorization",
			},
			wantOrigin: true,
		},
		{
			name:     "plain options request reaches the handler",
			method:   http.MethodOptions,
			headers:  map[string]string{"Origin": "https://tickets.example.com"},
			wantNext: true,
		},
		{
			name:       "cross-origin get",
			method:     http.MethodGet,
			headers:    map[string]string{"Origin": "https://tickets.example.com"},
			wantNext:   true,
			wantOrigin: true,
		},
		{
			name:     "same-origin get",
			method:   http.MethodGet,
			wantNext: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(tt.method, "/api/movies", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			CORS()(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantNext, called)
			assert.Less(t, w.Code, http.StatusMultipleChoices)
			if tt.wantOrigin {
				assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
				assert.Contains(t, w.Header().Values("Vary"), "Origin")
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}
