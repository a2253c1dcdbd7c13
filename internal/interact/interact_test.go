package interact_test

import (
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaenextech/website/internal/interact"
	"github.com/zaenextech/website/web"
)

// fakeElement is an in-memory DOM node.
type fakeElement struct {
	id      string
	href    string
	top     float64
	classes map[string]bool
	styles  map[string]string
	html    string
}

func newElement(id, href string, top float64, classes ...string) *fakeElement {
	e := &fakeElement{id: id, href: href, top: top, classes: map[string]bool{}, styles: map[string]string{}}
	for _, c := range classes {
		e.classes[c] = true
	}
	return e
}

func (e *fakeElement) ID() string                  { return e.id }
func (e *fakeElement) Href() string                { return e.href }
func (e *fakeElement) AddClass(name string)        { e.classes[name] = true }
func (e *fakeElement) RemoveClass(name string)     { delete(e.classes, name) }
func (e *fakeElement) HasClass(name string) bool   { return e.classes[name] }
func (e *fakeElement) SetStyle(prop, value string) { e.styles[prop] = value }
func (e *fakeElement) SetInnerHTML(html string)    { e.html = html }
func (e *fakeElement) Top() float64                { return e.top }

// fakeDocument resolves selectors from a fixed table. The scroll position is
// mutable; ScrollTo records its argument and moves there.
type fakeDocument struct {
	bySelector map[string][]*fakeElement
	byID       map[string]*fakeElement
	viewport   float64
	scrollY    float64
	scrolledTo []float64
}

func (d *fakeDocument) QuerySelector(sel string) interact.Element {
	if els := d.bySelector[sel]; len(els) > 0 {
		return els[0]
	}
	return nil
}

func (d *fakeDocument) QuerySelectorAll(sel string) []interact.Element {
	out := make([]interact.Element, 0, len(d.bySelector[sel]))
	for _, e := range d.bySelector[sel] {
		out = append(out, e)
	}
	return out
}

func (d *fakeDocument) GetElementByID(id string) interact.Element {
	if e, ok := d.byID[id]; ok {
		return e
	}
	return nil
}

func (d *fakeDocument) ViewportHeight() float64 { return d.viewport }
func (d *fakeDocument) ScrollY() float64        { return d.scrollY }
func (d *fakeDocument) ScrollTo(y float64) {
	d.scrolledTo = append(d.scrolledTo, y)
	d.scrollY = y
}

// page is a home page layout: header, navbar with one link per section, the
// menu button, back-to-top and five sections.
type page struct {
	doc       *fakeDocument
	header    *fakeElement
	navbar    *fakeElement
	menuBtn   *fakeElement
	backToTop *fakeElement
	links     map[string]*fakeElement
	sections  map[string]*fakeElement
}

func newPage(tops map[string]float64, cards ...*fakeElement) *page {
	p := &page{
		header:    newElement("", "", 0),
		navbar:    newElement("", "", 0),
		menuBtn:   newElement("", "", 0),
		backToTop: newElement("", "", 0),
		links:     map[string]*fakeElement{},
		sections:  map[string]*fakeElement{},
	}
	p.doc = &fakeDocument{
		bySelector: map[string][]*fakeElement{
			".header":          {p.header},
			".navbar":          {p.navbar},
			".mobile-menu-btn": {p.menuBtn},
			".back-to-top":     {p.backToTop},
		},
		byID:     map[string]*fakeElement{},
		viewport: 800,
	}
	p.doc.bySelector[".service-card, .project-card, .testimonial-card"] = cards
	for _, id := range interact.Sections {
		link := newElement("", "/#"+id, 0)
		p.links[id] = link
		p.doc.bySelector[".navbar a"] = append(p.doc.bySelector[".navbar a"], link)

		sec := newElement(id, "", tops[id])
		p.sections[id] = sec
		p.doc.byID[id] = sec
	}
	return p
}

func (p *page) activeLinks() []string {
	var out []string
	for _, id := range interact.Sections {
		if p.links[id].classes["active"] {
			out = append(out, id)
		}
	}
	return out
}

func farAway() map[string]float64 {
	return map[string]float64{"home": 0, "about": 900, "services": 1800, "projects": 2700, "contact": 3600}
}

// ---- scroll-spy --------------------------------------------------------------

func TestScrollSpy_lastSectionAtOrAboveThreshold(t *testing.T) {
	p := newPage(map[string]float64{"home": -50, "about": 90, "services": 300, "projects": 900, "contact": 1500})

	interact.Init(p.doc)

	assert.Equal(t, []string{"about"}, p.activeLinks())
}

func TestScrollSpy_thresholdIsInclusive(t *testing.T) {
	p := newPage(map[string]float64{"home": -400, "about": -200, "services": 100, "projects": 101, "contact": 900})

	interact.Init(p.doc)

	assert.Equal(t, []string{"services"}, p.activeLinks())
}

func TestScrollSpy_defaultsToHome(t *testing.T) {
	p := newPage(map[string]float64{"home": 150, "about": 900, "services": 1800, "projects": 2700, "contact": 3600})

	interact.Init(p.doc)

	assert.Equal(t, []string{"home"}, p.activeLinks())
}

func TestScrollSpy_followsScroll(t *testing.T) {
	p := newPage(farAway())
	pg := interact.Init(p.doc)
	require.Equal(t, []string{"home"}, p.activeLinks())

	for _, sec := range p.sections {
		sec.top -= 2700
	}
	pg.OnScroll()

	assert.Equal(t, []string{"projects"}, p.activeLinks())
}

// ---- header and back-to-top --------------------------------------------------

func TestScrollClasses_thresholds(t *testing.T) {
	cases := []struct {
		y        float64
		scrolled bool
		backTop  bool
	}{
		{0, false, false},
		{80, false, false},
		{81, true, false},
		{300, true, false},
		{301, true, true},
	}
	for _, tc := range cases {
		p := newPage(farAway())
		p.doc.scrollY = tc.y

		interact.Init(p.doc)

		assert.Equal(t, tc.scrolled, p.header.classes["scrolled"], "y=%v", tc.y)
		assert.Equal(t, tc.backTop, p.backToTop.classes["active"], "y=%v", tc.y)
	}
}

func TestScrollClasses_removedWhenScrollingBack(t *testing.T) {
	p := newPage(farAway())
	p.doc.scrollY = 500
	pg := interact.Init(p.doc)
	require.True(t, p.header.classes["scrolled"])

	p.doc.scrollY = 10
	pg.OnScroll()

	assert.False(t, p.header.classes["scrolled"])
	assert.False(t, p.backToTop.classes["active"])
}

// ---- reveal ------------------------------------------------------------------

func TestReveal_cardsStartHidden(t *testing.T) {
	card := newElement("", "", 5000)
	p := newPage(farAway(), card)

	interact.Init(p.doc)

	assert.Equal(t, "0", card.styles["opacity"])
	assert.Equal(t, "translateY(20px)", card.styles["transform"])
	assert.Equal(t, "all 0.6s ease", card.styles["transition"])
}

func TestReveal_insideViewportBandOnly(t *testing.T) {
	near := newElement("", "", 0)
	far := newElement("", "", 0)
	p := newPage(farAway(), near, far)
	vh := p.doc.viewport
	near.top = vh + 10
	far.top = vh + 200
	pg := interact.Init(p.doc)
	require.Equal(t, "0", near.styles["opacity"])

	near.top = vh - 50
	pg.OnScroll()

	assert.Equal(t, "1", near.styles["opacity"])
	assert.Equal(t, "translateY(0)", near.styles["transform"])
	assert.Equal(t, "0", far.styles["opacity"])
}

func TestReveal_neverHidesAgain(t *testing.T) {
	card := newElement("", "", 100)
	p := newPage(farAway(), card)
	pg := interact.Init(p.doc)
	require.Equal(t, "1", card.styles["opacity"])

	card.top = 5000
	pg.OnScroll()

	assert.Equal(t, "1", card.styles["opacity"])
}

// ---- mobile menu -------------------------------------------------------------

func TestMenu_toggleSwapsGlyph(t *testing.T) {
	p := newPage(farAway())
	pg := interact.Init(p.doc)

	pg.ClickMenu()
	assert.True(t, p.navbar.classes["active"])
	assert.Contains(t, p.menuBtn.html, "fa-times")

	pg.ClickMenu()
	assert.False(t, p.navbar.classes["active"])
	assert.Contains(t, p.menuBtn.html, "fa-bars")
}

func TestMenu_navLinkClosesOpenMenu(t *testing.T) {
	p := newPage(farAway())
	pg := interact.Init(p.doc)
	pg.ClickMenu()

	pg.ClickNavLink()

	assert.False(t, p.navbar.classes["active"])
	assert.Contains(t, p.menuBtn.html, "fa-bars")
}

func TestMenu_navLinkWithClosedMenuIsNoop(t *testing.T) {
	p := newPage(farAway())
	pg := interact.Init(p.doc)

	pg.ClickNavLink()

	assert.False(t, p.navbar.classes["active"])
	assert.Empty(t, p.menuBtn.html)
}

func TestMenu_missingElements(t *testing.T) {
	p := newPage(farAway())
	delete(p.doc.bySelector, ".mobile-menu-btn")
	pg := interact.Init(p.doc)

	pg.ClickMenu()
	pg.ClickNavLink()

	assert.False(t, p.navbar.classes["active"])
}

// ---- anchors -----------------------------------------------------------------

func TestClickAnchor_scrollsWithHeaderOffsetAndMarksLink(t *testing.T) {
	for _, href := range []string{"#services", "/#services"} {
		p := newPage(map[string]float64{"home": -200, "about": 400, "services": 1000, "projects": 1600, "contact": 2200})
		p.doc.scrollY = 200
		pg := interact.Init(p.doc)

		handled := pg.ClickAnchor(href)

		require.True(t, handled, href)
		assert.Equal(t, []float64{1000 + 200 - interact.HeaderOffset}, p.doc.scrolledTo, href)
		assert.Equal(t, []string{"services"}, p.activeLinks(), href)
	}
}

func TestClickAnchor_ignored(t *testing.T) {
	for _, href := range []string{"#", "/#", "", "/about", "https://zaenextech.com/#about", "#missing"} {
		p := newPage(farAway())
		pg := interact.Init(p.doc)

		assert.False(t, pg.ClickAnchor(href), href)
		assert.Empty(t, p.doc.scrolledTo, href)
	}
}

// ---- browser script ----------------------------------------------------------

// TestBrowserScript_sharesConstants keeps web/static/js/main.js, the script
// the layout actually loads, in step with this package.
func TestBrowserScript_sharesConstants(t *testing.T) {
	src, err := fs.ReadFile(web.StaticFS(), "js/main.js")
	require.NoError(t, err)
	js := string(src)

	for name, v := range map[string]int{
		"HEADER_SCROLLED_AT": interact.HeaderScrolledAt,
		"BACK_TO_TOP_AT":     interact.BackToTopAt,
		"HEADER_OFFSET":      interact.HeaderOffset,
		"SPY_THRESHOLD":      interact.SpyThreshold,
	} {
		assert.Contains(t, js, fmt.Sprintf("const %s = %d;", name, v))
	}

	quoted := make([]string, len(interact.Sections))
	for i, s := range interact.Sections {
		quoted[i] = "'" + s + "'"
	}
	assert.Contains(t, js, "const SECTIONS = ["+strings.Join(quoted, ", ")+"];")
	assert.Contains(t, js, "'.service-card, .project-card, .testimonial-card'")
	assert.Contains(t, js, "getBoundingClientRect().top < window.innerHeight")
}
