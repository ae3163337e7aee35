package util

import (
	"context"
	"net/http"

	"github.com/timeexchange/timeexchange"
)

// TEContextType is the string type for all context values
type TEContextType string

const (
	// LocaleKey is the key for the locale resolved for the current page load
	LocaleKey = TEContextType("locale")
)

// Locale returns the active locale from request context
func Locale(r *http.Request) timeexchange.Locale {
	return LocaleContext(r.Context())
}

// LocaleContext returns the active locale stored in ctx, or the default
// locale if none was resolved.
func LocaleContext(ctx context.Context) timeexchange.Locale {
	if l, ok := ctx.Value(LocaleKey).(timeexchange.Locale); ok {
		return l
	}
	return timeexchange.DefaultLocale
}

// WithLocale stores the active locale in ctx.
func WithLocale(ctx context.Context, l timeexchange.Locale) context.Context {
	return context.WithValue(ctx, LocaleKey, l)
}
