package timeexchange

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed translations.toml
var defaultTranslations []byte

// DefaultCatalog returns the catalog built from the embedded translations.
func DefaultCatalog() (*Catalog, error) {
	return DecodeCatalog(defaultTranslations)
}

// DecodeCatalog parses a translations TOML document, one table per locale,
// and validates it into a Catalog. Keys the Content type does not know about
// are rejected so typos don't silently drop copy.
func DecodeCatalog(data []byte) (*Catalog, error) {
	var contents map[Locale]Content
	md, err := toml.Decode(string(data), &contents)
	if err != nil {
		return nil, fmt.Errorf("could not decode translations: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidContents, undecoded[0].String())
	}
	return NewCatalog(contents)
}

// ReadCatalog decodes a catalog from r.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read translations: %w", err)
	}
	return DecodeCatalog(data)
}

// LoadCatalog decodes the catalog stored at path.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open translations: %w", err)
	}
	defer f.Close()
	return ReadCatalog(f)
}
