package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	l, o := Clamp(0, -3)
	assert.Equal(t, DefaultLimit, l)
	assert.Equal(t, 0, o)

	l, o = Clamp(1000, 20)
	assert.Equal(t, MaxLimit, l)
	assert.Equal(t, 20, o)
}

func TestFromRequest(t *testing.T) {
	l, o := FromRequest(httptest.NewRequest("GET", "/weight?limit=10&offset=5", nil))
	assert.Equal(t, 10, l)
	assert.Equal(t, 5, o)

	l, o = FromRequest(httptest.NewRequest("GET", "/weight?limit=abc", nil))
	assert.Equal(t, DefaultLimit, l)
	assert.Equal(t, 0, o)
}
