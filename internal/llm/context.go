package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose labels every Generate call made under ctx for the event
// log, e.g. "auto-population".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the label back. Calls made outside WithPurpose are
// logged as "unattributed".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok && p != "" {
		return p
	}
	return "unattributed"
}
