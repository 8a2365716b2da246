package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, h gin.HandlerFunc, req *http.Request) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var got *gin.Context
	r := gin.New()
	r.Use(h)
	r.GET("/", func(c *gin.Context) {
		got = c
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, got
}

func TestRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w, c := serve(t, RequestIDMiddleware(), req)
	id := w.Header().Get(RequestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, c.GetString("request_id"))

	const given = "7c1c3f8e-8a46-4a4e-9b53-2f4f0f7d7a11"
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, given)
	w, _ = serve(t, RequestIDMiddleware(), req)
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w, _ = serve(t, RequestIDMiddleware(), req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Forwarded-For": "198.51.100.1"}, "203.0.113.9"},
		{"left-most forwarded", map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.1"}, "198.51.100.1"},
		{"garbage ignored", map[string]string{"CF-Connecting-IP": "nope"}, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			_, c := serve(t, RealIP(), req)
			assert.Equal(t, tt.want, c.GetString("real_ip"))
		})
	}
}

func TestSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", SessionToken(c, "session_token"))

	// a leftover cookie does not shadow the header
	c.Request.AddCookie(&http.Cookie{Name: "session_token", Value: "from-cookie"})
	assert.Equal(t, "abc", SessionToken(c, "session_token"))

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session_token", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", SessionToken(c, "session_token"))

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, SessionToken(c, "session_token"))
}
