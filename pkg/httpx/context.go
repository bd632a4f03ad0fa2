package httpx

import "context"

type ctxKey string

const CtxKeyUserID ctxKey = "user_id"

// UserIDFromContext returns the id stored by BasicAuth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(CtxKeyUserID).(string)
	return uid, ok && uid != ""
}

func contextWithUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}
