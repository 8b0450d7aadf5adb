package upstream

import "context"

type tokenKey struct{}

// WithToken attaches the caller's bearer token to the context. The token is
// issued elsewhere; the client only forwards it, so auth state stays explicit
// instead of living in a global.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extracts the bearer token, if any, from the context.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
