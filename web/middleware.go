package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/timeexchange/timeexchange"
	"github.com/timeexchange/timeexchange/internal/util"
)

// initLanguage resolves the active locale for this page load from the
// visitor's primary language preference. Anything that isn't Greek gets the
// default locale.
func (rt *Web) initLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pref := timeexchange.PrimaryPreference(r.Header.Get("Accept-Language"))
		locale := timeexchange.SelectLocale(pref)
		next.ServeHTTP(w, r.WithContext(util.WithLocale(r.Context(), locale)))
	})
}

func (rt *Web) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote", r.RemoteAddr),
		}
		if locale := ww.Header().Get("Content-Language"); locale != "" {
			attrs = append(attrs, slog.String("locale", locale))
		}
		slog.LogAttrs(r.Context(), slog.LevelInfo, "Request", attrs...)
	})
}
