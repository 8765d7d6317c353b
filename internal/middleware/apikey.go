package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/response"
)

// HeaderAPIKey carries the shared secret on every gated request.
const HeaderAPIKey = "X-API-Key"

// APIKeyAuth rejects requests whose X-API-Key header does not exactly match apiKey.
// Documentation paths and static assets pass through untouched. An empty apiKey
// fails closed: every gated request is answered with 500.
func APIKeyAuth(apiKey string, log zerolog.Logger) gin.HandlerFunc {
	l := log.With().Str("component", "api_key_auth").Logger()

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if IsPublicPath(path) {
			c.Next()
			return
		}

		values := c.Request.Header.Values(HeaderAPIKey)
		if len(values) == 0 {
			l.Warn().Str("path", path).Str("client_ip", c.ClientIP()).Msg("API key missing")
			response.AbortFail(c, http.StatusUnauthorized, response.ErrAPIKeyRequired)
			return
		}

		if apiKey == "" {
			l.Error().Str("path", path).Msg("API key is not configured, rejecting request")
			response.AbortFail(c, http.StatusInternalServerError, response.ErrMisconfigured)
			return
		}

		provided := strings.Join(values, ",")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			l.Warn().Str("path", path).Str("client_ip", c.ClientIP()).Msg("invalid API key")
			response.AbortFail(c, http.StatusUnauthorized, response.ErrAPIKeyInvalid)
			return
		}

		l.Info().Str("path", path).Str("client_ip", c.ClientIP()).Msg("API key accepted")
		c.Next()
	}
}

// IsPublicPath reports whether path is documentation or a static asset that
// skips the API key check.
func IsPublicPath(path string) bool {
	lower := strings.ToLower(path)
	if lower == "/swagger" || strings.HasPrefix(lower, "/swagger/") || strings.HasPrefix(lower, "/index.html") {
		return true
	}
	return strings.HasSuffix(path, ".css") || strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".json")
}
