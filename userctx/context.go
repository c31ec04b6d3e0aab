package userctx

import "context"

// Context key type
type contextKey string

const submitterEmailKey contextKey = "submitter_email"

// SetSubmitterEmail adds the submitter email to request context
func SetSubmitterEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, submitterEmailKey, email)
}

// GetSubmitterEmail retrieves the submitter email from request context.
// It returns an empty string when none was set so callers can fall back to
// the configured default.
func GetSubmitterEmail(ctx context.Context) string {
	email, ok := ctx.Value(submitterEmailKey).(string)
	if !ok {
		return ""
	}
	return email
}
