package main

import (
	"fmt"
	"os"

	"github.com/timeexchange/timeexchange"
)

type CheckCmd struct {
	File string `arg:"" optional:"" help:"Translations file, the embedded table when empty" type:"existingfile"`
}

func (c *CheckCmd) Run(*Globals) error {
	catalog, err := loadCatalog(c.File)
	if err != nil {
		return err
	}
	name := c.File
	if name == "" {
		name = "embedded translations"
	}
	for _, l := range timeexchange.Locales() {
		content := catalog.Content(l)
		fmt.Fprintf(os.Stdout, "%s: %q, %d features, %d steps\n", l, content.Title, len(content.Features.Items), len(content.HowItWorks.Steps))
	}
	fmt.Fprintf(os.Stdout, "%s: OK\n", name)
	return nil
}
