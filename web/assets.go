package web

import (
	"embed"
	"io/fs"

	"github.com/benbjohnson/hashfs"
)

const stylesheetName = "style.css"

//go:embed assets
var embedded embed.FS

// Assets serves the embedded static files under content-hashed names so they
// can be cached forever.
var Assets = hashfs.NewFS(mustSub(embedded, "assets"))

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// StylesheetURL is the cache-busted URL of the page stylesheet.
func StylesheetURL() string {
	return "/assets/" + Assets.HashName(stylesheetName)
}

// Stylesheet returns the page stylesheet, for rendering self-contained pages.
func Stylesheet() (string, error) {
	data, err := fs.ReadFile(Assets, stylesheetName)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
