// Package interact implements the page's client-side behaviors over an
// abstract DOM: the mobile menu toggle, header shadow, back-to-top control,
// smooth anchor scrolling, reveal-on-scroll cards and scroll-spy navigation.
//
// The browser build (cmd/interact) binds Document to the real DOM; tests bind
// it to an in-memory fake. web/static/js/main.js is the plain-script twin and
// uses the same thresholds and class names.
package interact

import "strings"

const (
	// HeaderScrolledAt is the scroll offset above which the header gets "scrolled".
	HeaderScrolledAt = 80
	// BackToTopAt is the scroll offset above which the back-to-top control shows.
	BackToTopAt = 300
	// HeaderOffset is subtracted from anchor targets to clear the fixed header.
	HeaderOffset = 80
	// SpyThreshold is the distance from the viewport top at which a section
	// becomes the current one.
	SpyThreshold = 100
)

// Sections are the scroll-spy targets in document order.
var Sections = []string{"home", "about", "services", "projects", "contact"}

const (
	classActive   = "active"
	classScrolled = "scrolled"

	glyphOpen   = `<i class="fas fa-bars"></i>`
	glyphClosed = `<i class="fas fa-times"></i>`

	selNavbar    = ".navbar"
	selNavLinks  = ".navbar a"
	selMenuBtn   = ".mobile-menu-btn"
	selHeader    = ".header"
	selBackToTop = ".back-to-top"
	selCards     = ".service-card, .project-card, .testimonial-card"
)

// Element is the subset of a DOM element the behaviors touch.
type Element interface {
	ID() string
	// Href returns the raw href attribute, or "" when absent.
	Href() string
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	SetStyle(prop, value string)
	SetInnerHTML(html string)
	// Top is the element's bounding-rect top relative to the viewport.
	Top() float64
}

// Document is the page plus its viewport. Lookups return nil when nothing
// matches.
type Document interface {
	QuerySelector(selector string) Element
	QuerySelectorAll(selector string) []Element
	GetElementByID(id string) Element
	ViewportHeight() float64
	ScrollY() float64
	// ScrollTo scrolls smoothly to the absolute document offset y.
	ScrollTo(y float64)
}

// Page holds the elements resolved at initialization. Event entry points
// are its methods.
type Page struct {
	doc       Document
	navbar    Element
	menuBtn   Element
	header    Element
	backToTop Element
	cards     []Element
	sections  []Element
}

// Init resolves the page's elements, hides every reveal card and evaluates
// the scroll-bound behaviors once.
func Init(doc Document) *Page {
	p := &Page{
		doc:       doc,
		navbar:    doc.QuerySelector(selNavbar),
		menuBtn:   doc.QuerySelector(selMenuBtn),
		header:    doc.QuerySelector(selHeader),
		backToTop: doc.QuerySelector(selBackToTop),
		cards:     doc.QuerySelectorAll(selCards),
	}
	for _, id := range Sections {
		if el := doc.GetElementByID(id); el != nil {
			p.sections = append(p.sections, el)
		}
	}
	for _, c := range p.cards {
		c.SetStyle("opacity", "0")
		c.SetStyle("transform", "translateY(20px)")
		c.SetStyle("transition", "all 0.6s ease")
	}
	p.OnScroll()
	return p
}

// OnScroll re-evaluates the header, back-to-top, reveal and scroll-spy state.
func (p *Page) OnScroll() {
	y := p.doc.ScrollY()
	toggle(p.header, classScrolled, y > HeaderScrolledAt)
	toggle(p.backToTop, classActive, y > BackToTopAt)
	p.reveal()
	p.setActiveLink(p.currentSection())
}

// ClickMenu flips the mobile menu open or closed.
func (p *Page) ClickMenu() {
	if p.navbar == nil || p.menuBtn == nil {
		return
	}
	open := !p.navbar.HasClass(classActive)
	toggle(p.navbar, classActive, open)
	if open {
		p.menuBtn.SetInnerHTML(glyphClosed)
	} else {
		p.menuBtn.SetInnerHTML(glyphOpen)
	}
}

// ClickNavLink closes the mobile menu if it is open.
func (p *Page) ClickNavLink() {
	if p.navbar == nil || p.menuBtn == nil || !p.navbar.HasClass(classActive) {
		return
	}
	p.navbar.RemoveClass(classActive)
	p.menuBtn.SetInnerHTML(glyphOpen)
}

// ClickAnchor handles a click on a link with the given href. It reports
// whether the click was handled, in which case the caller must suppress the
// browser's default navigation.
func (p *Page) ClickAnchor(href string) bool {
	target, ok := anchorTarget(href)
	if !ok {
		return false
	}
	el := p.doc.GetElementByID(target)
	if el == nil {
		return false
	}
	p.doc.ScrollTo(el.Top() + p.doc.ScrollY() - HeaderOffset)
	p.setActiveLink(target)
	return true
}

// anchorTarget extracts the element id from "#id" or "/#id". Bare "#" and
// other hrefs yield false.
func anchorTarget(href string) (string, bool) {
	h := strings.TrimPrefix(href, "/")
	if !strings.HasPrefix(h, "#") || len(h) <= 1 {
		return "", false
	}
	return h[1:], true
}

// reveal shows every card whose top has entered the viewport. Cards are
// never hidden again.
func (p *Page) reveal() {
	vh := p.doc.ViewportHeight()
	for _, c := range p.cards {
		if c.Top() < vh {
			c.SetStyle("opacity", "1")
			c.SetStyle("transform", "translateY(0)")
		}
	}
}

// currentSection is the last section whose top is at or above SpyThreshold,
// or "home" when none is.
func (p *Page) currentSection() string {
	current := Sections[0]
	for _, s := range p.sections {
		if s.Top() <= SpyThreshold {
			current = s.ID()
		}
	}
	return current
}

// setActiveLink marks the navigation link for id as the only active one.
func (p *Page) setActiveLink(id string) {
	links := p.doc.QuerySelectorAll(selNavLinks)
	for _, a := range links {
		a.RemoveClass(classActive)
	}
	for _, a := range links {
		if h := a.Href(); h == "/#"+id || h == "#"+id {
			a.AddClass(classActive)
			return
		}
	}
}

func toggle(el Element, class string, on bool) {
	if el == nil {
		return
	}
	if on {
		el.AddClass(class)
	} else {
		el.RemoveClass(class)
	}
}
