package auth

import "context"

type userKey struct{}

// WithUser records the authenticated username (the token's sub) so
// handlers can scope sessions and audit entries to it.
func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func UserFromContext(ctx context.Context) string {
	if v := ctx.Value(userKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
