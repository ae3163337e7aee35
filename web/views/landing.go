package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/timeexchange/timeexchange"
)

// Landing renders the whole document: header, hero, features, how it works,
// signup form and footer, in that order.
func Landing(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw("<!DOCTYPE html>\n<html")
		wr.attr("lang", page.Locale.String())
		wr.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		wr.text(page.Content.Title)
		wr.raw("</title>")
		switch {
		case page.InlineCSS != "":
			wr.raw("<style>", page.InlineCSS, "</style>")
		case page.StylesheetURL != "":
			wr.raw(`<link rel="stylesheet"`)
			wr.attr("href", string(templ.URL(page.StylesheetURL)))
			wr.raw(">")
		}
		wr.raw(`</head><body class="page">`)

		wr.render(Header(page.Content))
		wr.raw("<main>")
		wr.render(Hero(page.Content.Hero))
		wr.render(FeatureGrid(page.Content.Features))
		wr.render(Steps(page.Content.HowItWorks))
		wr.render(SignupForm(page.Content.Signup, page.Form))
		wr.raw("</main>")
		wr.render(Footer(page.Content.Footer))

		wr.raw("</body></html>\n")
		return wr.err
	})
}

func Header(c timeexchange.Content) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw(`<header class="container header"><h1 class="brand">`)
		wr.text(c.Title)
		wr.raw(`</h1><nav><ul class="nav">`)
		navLink(wr, FeaturesID, "nav-link", c.Nav.Features)
		navLink(wr, HowItWorksID, "nav-link", c.Nav.HowItWorks)
		navLink(wr, SignupID, "nav-cta", c.Nav.SignUp)
		wr.raw("</ul></nav></header>")
		return wr.err
	})
}

func navLink(wr *writer, anchor, class, label string) {
	wr.raw("<li><a")
	wr.attr("href", "#"+anchor)
	wr.attr("class", class)
	wr.raw(">")
	wr.text(label)
	wr.raw("</a></li>")
}

func Hero(h timeexchange.Hero) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw(`<section class="container hero"><h2 class="hero-headline">`)
		wr.text(h.Headline)
		wr.raw(`</h2><p class="lead">`)
		wr.text(h.Subheadline)
		wr.raw("</p><a")
		wr.attr("href", "#"+SignupID)
		wr.raw(` class="button button-pill">`)
		wr.text(h.CTA)
		wr.raw("</a></section>")
		return wr.err
	})
}

// FeatureGrid renders one card per item. Icons are paired by index with
// FeatureIcons.
func FeatureGrid(f timeexchange.Features) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw("<section")
		wr.attr("id", FeaturesID)
		wr.raw(` class="container features"><h2 class="section-title">`)
		wr.text(f.Title)
		wr.raw(`</h2><div class="feature-grid">`)
		for i, item := range f.Items {
			wr.raw(`<div class="feature-card"`)
			if i < len(FeatureIcons) {
				wr.attr("data-icon", FeatureIcons[i].Name)
				wr.raw(`><div class="feature-icon">`)
				wr.render(FeatureIcons[i].Component())
				wr.raw("</div>")
			} else {
				wr.raw(">")
			}
			wr.raw(`<h3 class="feature-title">`)
			wr.text(item.Title)
			wr.raw("</h3><p>")
			wr.text(item.Description)
			wr.raw("</p></div>")
		}
		wr.raw("</div></section>")
		return wr.err
	})
}

func Steps(h timeexchange.HowItWorks) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw("<section")
		wr.attr("id", HowItWorksID)
		wr.raw(` class="container how-it-works"><h2 class="section-title">`)
		wr.text(h.Title)
		wr.raw(`</h2><ol class="step-list">`)
		for _, step := range h.Steps {
			wr.raw(`<li class="step">`)
			wr.text(step)
			wr.raw("</li>")
		}
		wr.raw("</ol></section>")
		return wr.err
	})
}

// SignupForm renders the email capture form. Submissions go to the external
// form processor named by form; the only validation is the browser's own
// required/type=email check.
func SignupForm(s timeexchange.Signup, form Form) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw("<section")
		wr.attr("id", SignupID)
		wr.raw(` class="container signup"><h2 class="section-title">`)
		wr.text(s.Title)
		wr.raw(`</h2><p class="lead">`)
		wr.text(s.Subtitle)
		wr.raw(`</p><form class="signup-form"`)
		wr.attr("name", form.Name)
		wr.attr("method", form.Method)
		wr.attr("action", string(templ.URL(form.Action)))
		wr.raw(` data-netlify="true"><input type="hidden" name="form-name"`)
		wr.attr("value", form.Name)
		wr.raw(`><input type="email" name="email" class="signup-input"`)
		wr.attr("placeholder", s.Placeholder)
		wr.raw(` required><button type="submit" class="button signup-button">`)
		wr.text(s.Button)
		wr.raw("</button></form></section>")
		return wr.err
	})
}

func Footer(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw(`<footer class="footer"><div class="container"><p>`)
		wr.text(text)
		wr.raw("</p></div></footer>")
		return wr.err
	})
}
