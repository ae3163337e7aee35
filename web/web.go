// Package web serves the landing page.
// The visitor's language is resolved once per page load from Accept-Language,
// and the rendered page for each locale is cached since rendering only
// depends on the locale.
package web

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Yiling-J/theine-go"
	"github.com/benbjohnson/hashfs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"
	"github.com/riandyrn/otelchi"

	"github.com/timeexchange/timeexchange"
	"github.com/timeexchange/timeexchange/integrations/prometheus"
	"github.com/timeexchange/timeexchange/internal/util"
	"github.com/timeexchange/timeexchange/web/views"
)

// Options configures the web handler.
type Options struct {
	Form views.Form

	// CacheSize bounds the page cache. Defaults to 16 pages.
	CacheSize int64
	// RequestTimeout defaults to 20 seconds.
	RequestTimeout time.Duration

	Metrics *prometheus.Metrics
}

// Web is the struct representing this whole package
type Web struct {
	catalog *timeexchange.Catalog
	opts    Options

	pages *theine.LoadingCache[timeexchange.Locale, []byte]
}

// NewWeb returns a new web instance serving the copy in catalog.
func NewWeb(catalog *timeexchange.Catalog, opts Options) (*Web, error) {
	if catalog == nil {
		return nil, fmt.Errorf("web: catalog is required")
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 16
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 20 * time.Second
	}

	rt := &Web{catalog: catalog, opts: opts}

	pages, err := theine.NewBuilder[timeexchange.Locale, []byte](opts.CacheSize).BuildWithLoader(func(ctx context.Context, l timeexchange.Locale) (theine.Loaded[[]byte], error) {
		page, err := rt.Render(ctx, l, false)
		if err != nil {
			return theine.Loaded[[]byte]{}, err
		}
		rt.opts.Metrics.PageRendered(l)
		return theine.Loaded[[]byte]{
			Value: page,
			Cost:  1,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not build page cache: %w", err)
	}
	rt.pages = pages

	return rt, nil
}

// Page returns the render input for l.
func (rt *Web) Page(l timeexchange.Locale) views.Page {
	return views.Page{
		Locale:        l,
		Content:       rt.catalog.Content(l),
		Form:          rt.opts.Form,
		StylesheetURL: StylesheetURL(),
	}
}

// Render renders the landing page for l. With inlineCSS the stylesheet is
// embedded in the document so it can be served from anywhere.
func (rt *Web) Render(ctx context.Context, l timeexchange.Locale, inlineCSS bool) ([]byte, error) {
	page := rt.Page(l)
	if inlineCSS {
		css, err := Stylesheet()
		if err != nil {
			return nil, fmt.Errorf("could not read stylesheet: %w", err)
		}
		page.InlineCSS = css
		page.StylesheetURL = ""
	}

	var buf bytes.Buffer
	if err := views.Landing(page).Render(ctx, &buf); err != nil {
		return nil, timeexchange.WrapStatus(err, 500, "Could not render page")
	}
	return buf.Bytes(), nil
}

// Handler returns the router for the whole site
func (rt *Web) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(otelchi.Middleware(timeexchange.Name, otelchi.WithChiRoutes(r)))
	r.Use(rt.accessLog)
	r.Use(middleware.GetHead)
	r.Use(middleware.Timeout(rt.opts.RequestTimeout))
	r.Use(func(next http.Handler) http.Handler { return gzhttp.GzipHandler(next) })

	r.With(rt.initLanguage).Get("/", rt.landing)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	r.Route("/assets", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "HEAD"},
			MaxAge:         300,
		}))
		r.Handle("/*", http.StripPrefix("/assets", hashfs.FileServer(Assets)))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.statusPage(w, r, timeexchange.ErrNotFound)
	})

	return r
}

func (rt *Web) landing(w http.ResponseWriter, r *http.Request) {
	locale := util.Locale(r)
	page, err := rt.pages.Get(r.Context(), locale)
	if err != nil {
		rt.statusPage(w, r, err)
		return
	}
	rt.opts.Metrics.PageViewed(locale)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", locale.String())
	w.Header().Add("Vary", "Accept-Language")
	if _, err := w.Write(page); err != nil {
		slog.DebugContext(r.Context(), "Could not write page", slog.Any("err", err))
	}
}

func (rt *Web) statusPage(w http.ResponseWriter, r *http.Request, err error) {
	code := timeexchange.ErrorCode(err)
	if code >= 500 {
		slog.ErrorContext(r.Context(), "Error serving page", slog.Any("err", err), slog.String("path", r.URL.Path))
	}
	http.Error(w, http.StatusText(code), code)
}
