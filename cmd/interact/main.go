//go:build js && wasm

// Command interact is the WebAssembly build of the page behaviors. It binds
// internal/interact to the browser DOM and then blocks for the page lifetime.
//
//	GOOS=js GOARCH=wasm go build -o web/static/js/interact.wasm ./cmd/interact
package main

import (
	"syscall/js"

	"github.com/zaenextech/website/internal/interact"
)

type element struct{ v js.Value }

func wrap(v js.Value) interact.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return element{v}
}

func (e element) ID() string { return e.v.Get("id").String() }

func (e element) Href() string {
	h := e.v.Call("getAttribute", "href")
	if h.IsNull() {
		return ""
	}
	return h.String()
}

func (e element) AddClass(name string)      { e.v.Get("classList").Call("add", name) }
func (e element) RemoveClass(name string)   { e.v.Get("classList").Call("remove", name) }
func (e element) HasClass(name string) bool { return e.v.Get("classList").Call("contains", name).Bool() }
func (e element) SetStyle(prop, value string) {
	e.v.Get("style").Set(prop, value)
}
func (e element) SetInnerHTML(html string) { e.v.Set("innerHTML", html) }
func (e element) Top() float64 {
	return e.v.Call("getBoundingClientRect").Get("top").Float()
}

type document struct {
	doc js.Value
	win js.Value
}

func (d document) QuerySelector(sel string) interact.Element {
	return wrap(d.doc.Call("querySelector", sel))
}

func (d document) QuerySelectorAll(sel string) []interact.Element {
	return all(d.doc.Call("querySelectorAll", sel))
}

func (d document) GetElementByID(id string) interact.Element {
	return wrap(d.doc.Call("getElementById", id))
}

func (d document) ViewportHeight() float64 { return d.win.Get("innerHeight").Float() }
func (d document) ScrollY() float64        { return d.win.Get("pageYOffset").Float() }

func (d document) ScrollTo(y float64) {
	d.win.Call("scrollTo", map[string]any{"top": y, "behavior": "smooth"})
}

func all(list js.Value) []interact.Element {
	n := list.Length()
	out := make([]interact.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, element{list.Index(i)})
	}
	return out
}

func on(target js.Value, event string, fn func(ev js.Value)) {
	target.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	}))
}

func bind(d document) {
	page := interact.Init(d)

	if btn := d.doc.Call("querySelector", ".mobile-menu-btn"); !btn.IsNull() {
		on(btn, "click", func(js.Value) { page.ClickMenu() })
	}
	links := d.doc.Call("querySelectorAll", ".navbar a")
	for i := 0; i < links.Length(); i++ {
		on(links.Index(i), "click", func(js.Value) { page.ClickNavLink() })
	}

	anchors := d.doc.Call("querySelectorAll", `a[href^="#"], a[href^="/#"]`)
	for i := 0; i < anchors.Length(); i++ {
		a := anchors.Index(i)
		on(a, "click", func(ev js.Value) {
			if page.ClickAnchor(a.Call("getAttribute", "href").String()) {
				ev.Call("preventDefault")
			}
		})
	}

	on(d.win, "scroll", func(js.Value) { page.OnScroll() })
}

func main() {
	d := document{doc: js.Global().Get("document"), win: js.Global()}
	if d.doc.Get("readyState").String() == "loading" {
		on(d.doc, "DOMContentLoaded", func(js.Value) { bind(d) })
	} else {
		bind(d)
	}
	select {}
}
