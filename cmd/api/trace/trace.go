package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

const maxRequestIDLen = 128

type ctxKey struct{}

// state is shared by every copy of a request context. span counts the
// outbound calls made while serving the request.
type state struct {
	requestID string
	span      atomic.Int64
}

func GenerateID() string {
	return uuid.NewString()
}

// ValidRequestID reports whether an upstream X-Request-Id can be reused.
// Ids are logged verbatim, so only short tokens of [A-Za-z0-9._-] pass.
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch ch := id[i]; {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-' || ch == '_' || ch == '.':
		default:
			return false
		}
	}
	return true
}

// WithRequestAndSpan starts tracing for an inbound request. initialSpan is
// usually 0.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	st := &state{requestID: requestID}
	st.span.Store(initialSpan)
	return context.WithValue(ctx, ctxKey{}, st)
}

func fromContext(ctx context.Context) *state {
	if ctx == nil {
		return nil
	}
	st, _ := ctx.Value(ctxKey{}).(*state)
	return st
}

// RequestIDFromContext returns "" outside a traced request.
func RequestIDFromContext(ctx context.Context) string {
	if st := fromContext(ctx); st != nil {
		return st.requestID
	}
	return ""
}

// CurrentSpanID reads the span without advancing it.
func CurrentSpanID(ctx context.Context) string {
	st := fromContext(ctx)
	if st == nil {
		return "0"
	}
	return strconv.FormatInt(max(st.span.Load(), 0), 10)
}

// NextSpanID advances the span and returns (requestID, spanID). Outside a
// traced request it returns a fresh id and span "1".
func NextSpanID(ctx context.Context) (string, string) {
	st := fromContext(ctx)
	if st == nil {
		return GenerateID(), "1"
	}
	return st.requestID, strconv.FormatInt(max(st.span.Add(1), 1), 10)
}
