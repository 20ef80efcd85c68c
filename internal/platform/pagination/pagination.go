package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Clamp aplica los defaults: limit en 1..200 (50 si no viene), offset >= 0.
func Clamp(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// FromRequest lee ?limit=&offset=. Valores no numéricos se ignoran (como en el listado de eventos).
func FromRequest(r *http.Request) (int, int) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(strings.TrimSpace(q.Get("limit")))
	offset, _ := strconv.Atoi(strings.TrimSpace(q.Get("offset")))
	return Clamp(limit, offset)
}
