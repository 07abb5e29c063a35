package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(allowed, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORSMiddleware(allowed))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	router.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	w := preflight("*", "http://anywhere.test")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_List(t *testing.T) {
	w := preflight("http://app.test, http://admin.test", "http://admin.test")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://admin.test", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("http://app.test", "http://evil.test")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
