package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atareao/bloc/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(manager *jwt.Manager) *gin.Engine {
	r := gin.New()
	r.Use(JWTAuth(manager))
	r.POST("/write", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetUserID(c), "nickname": GetNickname(c)})
	})
	return r
}

func doRequest(r http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_DisabledWithoutManager(t *testing.T) {
	w := doRequest(protectedRouter(nil), http.MethodPost, "/write", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_Rejects(t *testing.T) {
	manager := jwt.NewManager("secret", 0)
	other, err := jwt.NewManager("other", 0).GenerateToken("u1", "ana")
	require.NoError(t, err)

	tests := []struct {
		name    string
		auth    string
		message string
	}{
		{"missing header", "", "Missing authorization header"},
		{"wrong scheme", "Basic abc", "Invalid authorization header format"},
		{"empty token", "Bearer ", "Invalid authorization header format"},
		{"foreign signature", "Bearer " + other, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(protectedRouter(manager), http.MethodPost, "/write", tt.auth)
			require.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body["message"])
			assert.Equal(t, float64(401), body["status"])
		})
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	manager := jwt.NewManager("secret", 0)
	token, err := manager.GenerateToken("u1", "ana")
	require.NoError(t, err)

	w := doRequest(protectedRouter(manager), http.MethodPost, "/write", "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"u1","nickname":"ana"}`, w.Body.String())
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	w = doRequest(r, http.MethodGet, "/ping", "")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/api", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doRequest(r, http.MethodGet, "/api", "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))

	w = doRequest(r, http.MethodGet, "/swagger/index.html", "")
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}

func TestRateLimit_PassesWithoutRedis(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(nil, DefaultRateLimitConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/", "").Code)
	}
}

func TestMetrics_DoesNotBlock(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/v1/posts/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/api/v1/posts/1", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, "/nowhere", "").Code)
}
