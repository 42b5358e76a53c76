package gravatar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLDeterministic(t *testing.T) {
	assert.Equal(t, URL("a@x.com"), URL("a@x.com"))
}

func TestURLNormalizesEmail(t *testing.T) {
	assert.Equal(t, URL("a@x.com"), URL("  A@X.COM  "))
}

func TestURLShape(t *testing.T) {
	u := URL("a@x.com")
	assert.True(t, strings.HasPrefix(u, "https://www.gravatar.com/avatar/"))
	assert.True(t, strings.HasSuffix(u, "?s=200&r=pg&d=mm"))

	hash := strings.TrimSuffix(strings.TrimPrefix(u, "https://www.gravatar.com/avatar/"), "?s=200&r=pg&d=mm")
	assert.Len(t, hash, 32)
}

func TestURLDiffersPerEmail(t *testing.T) {
	assert.NotEqual(t, URL("a@x.com"), URL("b@x.com"))
}
