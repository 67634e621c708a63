package clientip

import "context"

type ipKey struct{}

// WithIP returns a copy of ctx carrying the resolved client address.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipKey{}, ip)
}

// IPFromContext returns the address stored by WithIP, or "" when the
// request never passed through Middleware.
func IPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(ipKey{}).(string); ok {
		return ip
	}
	return ""
}
