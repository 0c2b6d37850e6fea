package httpx

import "context"

type ctxKey string

const (
	ctxKeyIdentity     ctxKey = "identity"
	ctxKeyExposeStacks ctxKey = "expose_stacks"
)

// Identity is the minimal view of the authenticated user that downstream
// handlers get to see.
type Identity struct {
	UserID   string
	Email    string
	Username string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the identity attached by the session verifier.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(Identity)
	return id, ok && id.UserID != ""
}
