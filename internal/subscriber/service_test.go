package subscriber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.com", "maria.lopez@galerias.mx", "x+tag@sub.domain.org"}
	for _, addr := range valid {
		assert.True(t, ValidEmail(addr), "expected %q to be valid", addr)
	}

	invalid := []string{"", "plain", "@b.com", "a@", "a@b", "a b@c.com", "a@b .com"}
	for _, addr := range invalid {
		assert.False(t, ValidEmail(addr), "expected %q to be invalid", addr)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a@b.com", Normalize("  A@B.COM "))
	assert.Equal(t, "maria@galerias.mx", Normalize("Maria@Galerias.MX"))
}
