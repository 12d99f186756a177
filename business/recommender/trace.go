package recommender

import "context"

type ctxKey string

// TraceIDKey carries the request trace id. The HTTP middleware stores the
// X-Trace-ID header value (or a generated uuid) under it so engine logs can
// be correlated with the request that produced them.
const TraceIDKey ctxKey = "trace_id"

// TraceIDFromContext returns the trace id, or "" for untraced contexts such
// as tests and background work.
func TraceIDFromContext(ctx context.Context) string {
	if v := ctx.Value(TraceIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
