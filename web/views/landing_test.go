package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/timeexchange/timeexchange"
	"golang.org/x/net/html"
)

func testPage(t *testing.T, l timeexchange.Locale) Page {
	t.Helper()
	cat, err := timeexchange.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	return Page{
		Locale:        l,
		Content:       cat.Content(l),
		Form:          Form{Name: "signup", Action: "/", Method: "POST"},
		StylesheetURL: "/assets/style.css",
	}
}

func renderString(t *testing.T, page Page) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Landing(page).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func parse(t *testing.T, doc string) *html.Node {
	t.Helper()
	node, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Rendered page is not HTML: %v", err)
	}
	return node
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func findOne(t *testing.T, n *html.Node, what string, match func(*html.Node) bool) *html.Node {
	t.Helper()
	nodes := findAll(n, match)
	if len(nodes) != 1 {
		t.Fatalf("Expected exactly one %s, found %d", what, len(nodes))
	}
	return nodes[0]
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

func tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

func id(value string) func(*html.Node) bool {
	return func(n *html.Node) bool { return attr(n, "id") == value }
}

func class(value string) func(*html.Node) bool {
	return func(n *html.Node) bool { return hasClass(n, value) }
}

func TestLandingScenarios(t *testing.T) {
	var tests = []struct {
		locale timeexchange.Locale
		title  string
		button string
	}{
		{timeexchange.English, "Time Exchange", "Get Early Access"},
		{timeexchange.Greek, "ΤράπεζαΧρόνου", "Αποκτήστε Πρόσβαση"},
	}

	for _, test := range tests {
		t.Run(test.locale.String(), func(t *testing.T) {
			doc := parse(t, renderString(t, testPage(t, test.locale)))

			if lang := attr(findOne(t, doc, "html", tag("html")), "lang"); lang != test.locale.String() {
				t.Errorf("html lang = %q", lang)
			}
			if got := textOf(findOne(t, doc, "title", tag("title"))); got != test.title {
				t.Errorf("title = %q", got)
			}
			if got := textOf(findOne(t, doc, "brand", class("brand"))); got != test.title {
				t.Errorf("header title = %q", got)
			}
			if got := textOf(findOne(t, doc, "signup button", tag("button"))); got != test.button {
				t.Errorf("signup button = %q", got)
			}
		})
	}
}

func TestLandingRegionOrder(t *testing.T) {
	out := renderString(t, testPage(t, timeexchange.English))
	markers := []string{"<header", `class="container hero"`, `id="features"`, `id="how-it-works"`, `id="signup"`, "<footer"}
	last := -1
	for _, m := range markers {
		idx := strings.Index(out, m)
		if idx < 0 {
			t.Fatalf("Missing region %s", m)
		}
		if idx < last {
			t.Fatalf("Region %s is out of order", m)
		}
		last = idx
	}
}

func TestNavAnchors(t *testing.T) {
	doc := parse(t, renderString(t, testPage(t, timeexchange.English)))
	nav := findOne(t, doc, "nav", tag("nav"))

	var hrefs []string
	for _, a := range findAll(nav, tag("a")) {
		hrefs = append(hrefs, attr(a, "href"))
	}
	want := []string{"#features", "#how-it-works", "#signup"}
	if strings.Join(hrefs, ",") != strings.Join(want, ",") {
		t.Fatalf("nav links = %v, want %v", hrefs, want)
	}
	for _, target := range []string{FeaturesID, HowItWorksID, SignupID} {
		findOne(t, doc, "#"+target, id(target))
	}
}

func TestFeatureGrid(t *testing.T) {
	page := testPage(t, timeexchange.Greek)
	doc := parse(t, renderString(t, page))

	cards := findAll(findOne(t, doc, "features section", id(FeaturesID)), class("feature-card"))
	if len(cards) != timeexchange.FeatureCount {
		t.Fatalf("Got %d feature cards", len(cards))
	}
	wantIcons := []string{"clock", "users", "book", "star"}
	for i, card := range cards {
		if got := attr(card, "data-icon"); got != wantIcons[i] {
			t.Errorf("card %d has icon %q, want %q", i, got, wantIcons[i])
		}
		if len(findAll(card, tag("svg"))) != 1 {
			t.Errorf("card %d has no svg icon", i)
		}
		if got := textOf(findOne(t, card, "feature title", tag("h3"))); got != page.Content.Features.Items[i].Title {
			t.Errorf("card %d title = %q", i, got)
		}
		if got := textOf(findOne(t, card, "feature description", tag("p"))); got != page.Content.Features.Items[i].Description {
			t.Errorf("card %d description = %q", i, got)
		}
	}
}

func TestIconsStayPositional(t *testing.T) {
	page := testPage(t, timeexchange.English)
	items := page.Content.Features.Items
	items[0], items[3] = items[3], items[0]
	doc := parse(t, renderString(t, page))

	cards := findAll(doc, class("feature-card"))
	if attr(cards[0], "data-icon") != "clock" || attr(cards[3], "data-icon") != "star" {
		t.Fatal("Reordering items moved the icons")
	}
	if textOf(findOne(t, cards[0], "feature title", tag("h3"))) != items[0].Title {
		t.Fatal("Reordered item is not rendered first")
	}
}

func TestSwappedContentKeepsStructure(t *testing.T) {
	en := testPage(t, timeexchange.English)
	el := testPage(t, timeexchange.Greek)
	swapped := en
	swapped.Content = el.Content

	a := parse(t, renderString(t, en))
	b := parse(t, renderString(t, swapped))

	for _, c := range []string{"feature-card", "step"} {
		if len(findAll(a, class(c))) != len(findAll(b, class(c))) {
			t.Errorf("Swapping content changed the number of %s elements", c)
		}
	}
	var iconsA, iconsB []string
	for _, n := range findAll(a, class("feature-card")) {
		iconsA = append(iconsA, attr(n, "data-icon"))
	}
	for _, n := range findAll(b, class("feature-card")) {
		iconsB = append(iconsB, attr(n, "data-icon"))
	}
	if strings.Join(iconsA, ",") != strings.Join(iconsB, ",") {
		t.Errorf("Icon order changed: %v vs %v", iconsA, iconsB)
	}
	if textOf(findOne(t, b, "brand", class("brand"))) != el.Content.Title {
		t.Error("Swapped content did not change the visible strings")
	}
}

func TestSteps(t *testing.T) {
	page := testPage(t, timeexchange.English)
	doc := parse(t, renderString(t, page))

	section := findOne(t, doc, "how it works", id(HowItWorksID))
	steps := findAll(findOne(t, section, "step list", tag("ol")), tag("li"))
	if len(steps) != timeexchange.StepCount {
		t.Fatalf("Got %d steps", len(steps))
	}
	for i, step := range steps {
		if got := textOf(step); got != page.Content.HowItWorks.Steps[i] {
			t.Errorf("step %d = %q", i, got)
		}
	}
}

func TestSignupForm(t *testing.T) {
	page := testPage(t, timeexchange.English)
	page.Form = Form{Name: "early-access", Action: "/thanks", Method: "POST"}
	doc := parse(t, renderString(t, page))

	form := findOne(t, doc, "form", tag("form"))
	if attr(form, "data-netlify") != "true" || attr(form, "action") != "/thanks" || attr(form, "name") != "early-access" {
		t.Fatalf("Unexpected form attributes: %v", form.Attr)
	}
	email := findOne(t, form, "email input", func(n *html.Node) bool { return n.Data == "input" && attr(n, "type") == "email" })
	if attr(email, "name") != "email" {
		t.Errorf("email input name = %q", attr(email, "name"))
	}
	if attr(email, "placeholder") != "Enter your email" {
		t.Errorf("placeholder = %q", attr(email, "placeholder"))
	}
	hasRequired := false
	for _, a := range email.Attr {
		hasRequired = hasRequired || a.Key == "required"
	}
	if !hasRequired {
		t.Error("email input is not required")
	}
	hidden := findOne(t, form, "form-name input", func(n *html.Node) bool { return attr(n, "name") == "form-name" })
	if attr(hidden, "value") != "early-access" {
		t.Errorf("form-name = %q", attr(hidden, "value"))
	}
}

func TestUnsafeFormActionIsSanitized(t *testing.T) {
	page := testPage(t, timeexchange.English)
	page.Form.Action = "javascript:alert(1)"
	out := renderString(t, page)
	if strings.Contains(out, "javascript:") {
		t.Fatal("Unsafe URL rendered as form action")
	}
}

func TestTextIsEscaped(t *testing.T) {
	page := testPage(t, timeexchange.English)
	page.Content.Footer = "<script>alert(1)</script>"
	out := renderString(t, page)
	if strings.Contains(out, "<script>") {
		t.Fatal("Content was not escaped")
	}
}

func TestInlineCSS(t *testing.T) {
	page := testPage(t, timeexchange.English)
	page.InlineCSS = "body{margin:0}"
	out := renderString(t, page)
	if !strings.Contains(out, "<style>body{margin:0}</style>") || strings.Contains(out, `rel="stylesheet"`) {
		t.Fatal("Inline CSS should replace the stylesheet link")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	page := testPage(t, timeexchange.Greek)
	if renderString(t, page) != renderString(t, page) {
		t.Fatal("Rendering the same page twice gave different output")
	}
}
