package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/timeexchange/timeexchange"
	"github.com/timeexchange/timeexchange/internal/config"
	"github.com/timeexchange/timeexchange/web"
	"github.com/timeexchange/timeexchange/web/views"
)

type RenderCmd struct {
	Lang string `help:"Language preference, as the browser would send it" default:"en"`
	Out  string `short:"o" help:"Output file, stdout when empty" type:"path"`
}

func (c *RenderCmd) Run(g *Globals) error {
	ctx := context.Background()
	cfg, err := config.Load(ctx, g.Config)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(cfg.Translations)
	if err != nil {
		return err
	}
	rt, err := web.NewWeb(catalog, web.Options{Form: views.Form{
		Name:   cfg.Signup.FormName,
		Action: cfg.Signup.FormAction,
		Method: cfg.Signup.FormMethod,
	}})
	if err != nil {
		return err
	}

	locale := timeexchange.SelectLocale(timeexchange.PrimaryPreference(c.Lang))
	page, err := rt.Render(ctx, locale, true)
	if err != nil {
		return err
	}
	return c.write(ctx, os.Stdout, locale, page)
}

// write stores page in the output file, or w when none was given. The size
// is logged to stderr so it never mixes with a page written to stdout.
func (c *RenderCmd) write(ctx context.Context, w io.Writer, locale timeexchange.Locale, page []byte) error {
	dest := c.Out
	if dest == "" {
		dest = "stdout"
		if _, err := w.Write(page); err != nil {
			return fmt.Errorf("could not write page: %w", err)
		}
	} else if err := os.WriteFile(c.Out, page, 0644); err != nil {
		return fmt.Errorf("could not write page: %w", err)
	}

	slog.InfoContext(ctx, "Rendered page",
		slog.String("locale", locale.String()),
		slog.String("path", dest),
		slog.String("size", humanize.Bytes(uint64(len(page)))),
	)
	return nil
}
