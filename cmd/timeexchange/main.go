package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/timeexchange/timeexchange"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config string
}

type CLI struct {
	Config  string           `help:"Config path" default:"./config.toml" type:"path"`
	Version kong.VersionFlag `help:"Print the version and exit"`

	Serve  ServeCmd  `cmd:"" default:"1" help:"Serve the landing page"`
	Render RenderCmd `cmd:"" help:"Render the landing page to a file or stdout"`
	Check  CheckCmd  `cmd:"" help:"Validate a translations file"`
}

func main() {
	slog.SetDefault(slog.New(timeexchange.GetSlogHandler(false, os.Stderr)))

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name(timeexchange.Name),
		kong.Description("Time Exchange landing page"),
		kong.UsageOnError(),
		kong.Vars{"version": timeexchange.Version},
	)
	if err := ctx.Run(&Globals{Config: cli.Config}); err != nil {
		slog.Error("Command failed", slog.Any("err", err))
		os.Exit(1)
	}
}

// loadCatalog returns the catalog at path, or the embedded one when path is empty.
func loadCatalog(path string) (*timeexchange.Catalog, error) {
	if path == "" {
		return timeexchange.DefaultCatalog()
	}
	return timeexchange.LoadCatalog(path)
}
