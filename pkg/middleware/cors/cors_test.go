package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequest(t *testing.T, allowedOrigins []string, method, origin string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, "/students", nil)
	require.NoError(t, err)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	c.Request = req
	New(allowedOrigins)(c)
	return w
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	w := runRequest(t, []string{"http://localhost:3000"}, http.MethodGet, "http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	w := runRequest(t, []string{"http://localhost:3000"}, http.MethodGet, "http://evil.example")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	w := runRequest(t, nil, http.MethodOptions, "http://localhost:3000")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORSHeadersMatchUnauthenticatedAPI(t *testing.T) {
	w := runRequest(t, nil, http.MethodGet, "http://localhost:3000")
	headers := w.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, headers, "X-Request-ID")
	assert.NotContains(t, headers, "Authorization")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}
