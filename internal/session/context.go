package session

import "context"

type ctxKey struct{}

// NewContext returns a child context carrying the coordinator, making
// it available to any presentation code reached from that context.
func NewContext(ctx context.Context, c *Coordinator) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the coordinator provisioned via NewContext.
// Accessing it from a context that was never provisioned is a
// programming error and panics immediately.
func FromContext(ctx context.Context) *Coordinator {
	c, ok := ctx.Value(ctxKey{}).(*Coordinator)
	if !ok {
		panic("session: coordinator not provisioned in context")
	}
	return c
}
