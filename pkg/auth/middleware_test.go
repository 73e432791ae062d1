package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret)
	m := NewMiddleware(jwtService)

	userToken, _ := jwtService.GenerateJWT(5, false, time.Now().Add(time.Hour))
	adminToken, _ := jwtService.GenerateJWT(1, true, time.Now().Add(time.Hour))

	var seenViewer int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenViewer = ViewerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		wrap           func(http.Handler) http.Handler
		header         string
		expectedCode   int
		expectedViewer int
	}{
		{name: "Required without header", wrap: m.Required, expectedCode: http.StatusUnauthorized},
		{name: "Required with bad scheme", wrap: m.Required, header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Required with garbage token", wrap: m.Required, header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "Required with valid token", wrap: m.Required, header: "Bearer " + userToken, expectedCode: http.StatusOK, expectedViewer: 5},
		{name: "Optional anonymous", wrap: m.Optional, expectedCode: http.StatusOK, expectedViewer: 0},
		{name: "Optional with invalid token stays anonymous", wrap: m.Optional, header: "Bearer nope", expectedCode: http.StatusOK, expectedViewer: 0},
		{name: "Optional with valid token", wrap: m.Optional, header: "Bearer " + userToken, expectedCode: http.StatusOK, expectedViewer: 5},
		{name: "Admin without token", wrap: m.Admin, expectedCode: http.StatusUnauthorized},
		{name: "Admin with user token", wrap: m.Admin, header: "Bearer " + userToken, expectedCode: http.StatusForbidden},
		{name: "Admin with admin token", wrap: m.Admin, header: "Bearer " + adminToken, expectedCode: http.StatusOK, expectedViewer: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenViewer = -1
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			tt.wrap(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedViewer, seenViewer)
			}
		})
	}
}
