// Package views renders the landing page as templ components.
//
// Every component is a pure function of its arguments: the same content
// always renders byte-identical markup, which is what lets the web package
// cache whole pages per locale.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/timeexchange/timeexchange"
)

// Section anchors used for same-page navigation.
const (
	FeaturesID   = "features"
	HowItWorksID = "how-it-works"
	SignupID     = "signup"
)

// Form describes the external form processor the signup form posts to.
type Form struct {
	Name   string
	Action string
	Method string
}

// Page is everything the landing page needs to render.
type Page struct {
	Locale  timeexchange.Locale
	Content timeexchange.Content
	Form    Form

	// StylesheetURL links an external stylesheet. When InlineCSS is set it
	// is embedded in a <style> element instead.
	StylesheetURL string
	InlineCSS     string
}

// writer accumulates the first write error so components read top to bottom.
type writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *writer {
	return &writer{ctx: ctx, w: w}
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) attr(name, value string) {
	w.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (w *writer) render(c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}
