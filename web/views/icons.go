package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/timeexchange/timeexchange"
)

// Icon is a Lucide outline icon.
type Icon struct {
	Name string
	body string
}

var (
	IconClock = Icon{Name: "clock", body: `<circle cx="12" cy="12" r="10"></circle><polyline points="12 6 12 12 16 14"></polyline>`}
	IconUsers = Icon{Name: "users", body: `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"></path><circle cx="9" cy="7" r="4"></circle><path d="M22 21v-2a4 4 0 0 0-3-3.87"></path><path d="M16 3.13a4 4 0 0 1 0 7.75"></path>`}
	IconBook  = Icon{Name: "book", body: `<path d="M4 19.5v-15A2.5 2.5 0 0 1 6.5 2H20v20H6.5a2.5 2.5 0 0 1 0-5H20"></path>`}
	IconStar  = Icon{Name: "star", body: `<polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"></polygon>`}
)

// FeatureIcons decorate the feature cards by position: card i gets icon i,
// whatever the card says.
var FeatureIcons = [timeexchange.FeatureCount]Icon{IconClock, IconUsers, IconBook, IconStar}

func (i Icon) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr := newWriter(ctx, w)
		wr.raw(`<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`)
		wr.attr("class", "lucide lucide-"+i.Name)
		wr.raw(">", i.body, "</svg>")
		return wr.err
	})
}
