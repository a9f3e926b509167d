package localset

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// CookieKey is the single well-known storage key for the visitor's
// local itinerary.
const CookieKey = "artweek_my_itinerary"

// cookieTTL keeps the set alive across the whole festival season.
const cookieTTL = 180 * 24 * 60 * 60 // seconds

// Load reads the visitor's set from the request cookie. A missing or
// malformed cookie is an empty set.
func Load(c *gin.Context) *Set {
	raw, err := c.Cookie(CookieKey)
	if err != nil {
		return New()
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return New()
	}
	return Decode(decoded)
}

// Store writes the set back to the response so the next page load sees
// every mutation applied this request.
func Store(c *gin.Context, s *Set) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieKey, url.QueryEscape(s.Encode()), cookieTTL, "/", "", false, false)
}
