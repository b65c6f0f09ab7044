package reqctx

import "context"

type ctxKey int

const (
	bearerKey ctxKey = iota
	requestIDKey
)

// WithBearer carries the customer's access token so outbound calls to the
// storefront services act on the customer's behalf.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey, token)
}

func Bearer(ctx context.Context) string {
	token, _ := ctx.Value(bearerKey).(string)
	return token
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
