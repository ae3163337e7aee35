package timeexchange

import (
	"fmt"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// FeatureCount is the number of cards in the features grid.
	FeatureCount = 4
	// StepCount is the number of steps in the how-it-works list.
	StepCount = 5
)

var (
	ErrUnknownLocale   = Statusf(500, "Unknown locale in catalog")
	ErrMissingLocale   = Statusf(500, "Catalog is missing a locale")
	ErrInvalidContents = Statusf(500, "Invalid locale content")
)

// Content is the full set of translated strings for one language.
type Content struct {
	Title      string     `toml:"title"`
	Nav        Nav        `toml:"nav"`
	Hero       Hero       `toml:"hero"`
	Features   Features   `toml:"features"`
	HowItWorks HowItWorks `toml:"how_it_works"`
	Signup     Signup     `toml:"signup"`
	Footer     string     `toml:"footer"`
}

type Nav struct {
	Features   string `toml:"features"`
	HowItWorks string `toml:"how_it_works"`
	SignUp     string `toml:"sign_up"`
}

type Hero struct {
	Headline    string `toml:"headline"`
	Subheadline string `toml:"subheadline"`
	CTA         string `toml:"cta"`
}

type Features struct {
	Title string        `toml:"title"`
	Items []FeatureItem `toml:"items"`
}

type FeatureItem struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

type HowItWorks struct {
	Title string   `toml:"title"`
	Steps []string `toml:"steps"`
}

type Signup struct {
	Title       string `toml:"title"`
	Subtitle    string `toml:"subtitle"`
	Placeholder string `toml:"placeholder"`
	Button      string `toml:"button"`
}

func (c Content) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Nav),
		validation.Field(&c.Hero),
		validation.Field(&c.Features),
		validation.Field(&c.HowItWorks),
		validation.Field(&c.Signup),
		validation.Field(&c.Footer, validation.Required),
	)
}

func (n Nav) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Features, validation.Required),
		validation.Field(&n.HowItWorks, validation.Required),
		validation.Field(&n.SignUp, validation.Required),
	)
}

func (h Hero) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Headline, validation.Required),
		validation.Field(&h.Subheadline, validation.Required),
		validation.Field(&h.CTA, validation.Required),
	)
}

func (f Features) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Items, validation.Required, validation.Length(FeatureCount, FeatureCount)),
	)
}

func (f FeatureItem) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required),
		validation.Field(&f.Description, validation.Required),
	)
}

func (h HowItWorks) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.Title, validation.Required),
		validation.Field(&h.Steps, validation.Required, validation.Length(StepCount, StepCount), validation.Each(validation.Required)),
	)
}

func (s Signup) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Subtitle, validation.Required),
		validation.Field(&s.Placeholder, validation.Required),
		validation.Field(&s.Button, validation.Required),
	)
}

func (c Content) clone() Content {
	c.Features.Items = slices.Clone(c.Features.Items)
	c.HowItWorks.Steps = slices.Clone(c.HowItWorks.Steps)
	return c
}

// Catalog is the translation table. It is validated once when built and is
// read-only afterwards, so it can be shared between goroutines freely.
type Catalog struct {
	contents map[Locale]Content
}

// NewCatalog validates that every supported locale is present with a
// complete, identically shaped Content and returns the resulting table.
func NewCatalog(contents map[Locale]Content) (*Catalog, error) {
	for l := range contents {
		if _, ok := ParseLocale(string(l)); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, l)
		}
	}

	cat := &Catalog{contents: make(map[Locale]Content, len(supportedLocales))}
	for _, l := range supportedLocales {
		content, ok := contents[l]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingLocale, l)
		}
		if err := content.Validate(); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidContents, l, err)
		}
		cat.contents[l] = content.clone()
	}
	return cat, nil
}

// Content returns the strings for l. Unsupported locales get the default
// locale's content.
func (c *Catalog) Content(l Locale) Content {
	content, ok := c.contents[l]
	if !ok {
		content = c.contents[DefaultLocale]
	}
	return content.clone()
}
