package localset

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, cookie string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/my-itinerary", nil)
	if cookie != "" {
		c.Request.AddCookie(&http.Cookie{Name: CookieKey, Value: cookie})
	}
	return c, w
}

func TestLoadMissingCookie(t *testing.T) {
	c, _ := testContext(t, "")
	s := Load(c)
	assert.Equal(t, 0, s.Count())
}

func TestLoadMalformedCookie(t *testing.T) {
	c, _ := testContext(t, url.QueryEscape("definitely not json"))
	s := Load(c)
	assert.Equal(t, 0, s.Count())
}

func TestStoreThenLoadRoundTrip(t *testing.T) {
	c, w := testContext(t, "")
	s := FromIDs([]string{"evt-1", "evt-2"})
	Store(c, s)

	res := w.Result()
	cookies := res.Cookies()
	require.NotEmpty(t, cookies)

	var stored *http.Cookie
	for _, ck := range cookies {
		if ck.Name == CookieKey {
			stored = ck
		}
	}
	require.NotNil(t, stored)

	c2, _ := testContext(t, stored.Value)
	loaded := Load(c2)
	assert.Equal(t, []string{"evt-1", "evt-2"}, loaded.IDs())
}
