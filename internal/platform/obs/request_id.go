package obs

import (
	"context"

	"github.com/rs/xid"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// HeaderRequestID carries the request ID in and out of the HTTP API.
const HeaderRequestID = "X-Request-ID"

// Client-supplied IDs longer than this are replaced.
const maxRequestIDLen = 64

func NewRequestID() string {
	return xid.New().String()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request ID stored in ctx, or "" when there is none.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// ValidRequestID reports whether a client-supplied ID is short enough and
// limited to [A-Za-z0-9._:-], so it is safe to echo and log.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}
