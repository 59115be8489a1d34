package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type contextKey string

const (
	// ContextKeySecure marks a request that arrived over a secure context.
	ContextKeySecure contextKey = "secure"
)

// SecureContext records whether each request came from a secure context:
// TLS, a TLS-terminating proxy, or a loopback peer.
type SecureContext struct {
	trustProxy bool
}

// NewSecureContext creates the middleware. With trustProxy set, an
// X-Forwarded-Proto of https counts as secure.
func NewSecureContext(trustProxy bool) *SecureContext {
	return &SecureContext{trustProxy: trustProxy}
}

// Detect stores the secure flag in the request context.
func (m *SecureContext) Detect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithSecure(r.Context(), m.isSecure(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SecureContext) isSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if m.trustProxy && strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		return true
	}
	return isLoopbackPeer(r.RemoteAddr)
}

// WithSecure returns a copy of ctx carrying the secure flag.
func WithSecure(ctx context.Context, secure bool) context.Context {
	return context.WithValue(ctx, ContextKeySecure, secure)
}

// IsSecure reports whether ctx was marked secure. Unmarked contexts, such
// as those of CLI invocations, are local and count as secure.
func IsSecure(ctx context.Context) bool {
	secure, ok := ctx.Value(ContextKeySecure).(bool)
	if !ok {
		return true
	}
	return secure
}

// isLoopbackPeer checks the connection's remote address. The Host header
// is client-controlled and never consulted.
func isLoopbackPeer(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return false
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
