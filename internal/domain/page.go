package domain

import "slices"

// Navigation tags used by the layout to highlight the current menu entry.
const (
	NavHome     = "home"
	NavAbout    = "about"
	NavServices = "services"
	NavProjects = "projects"
	NavContact  = "contact"
)

// PageRoute maps a fixed URL path to the template that renders it and the
// navigation entry marked active on that page.
type PageRoute struct {
	Path       string
	Template   string
	ActivePage string
}

// routes is the fixed page table. Order is the order pages appear in the
// sitemap and in `zaenex routes`.
var routes = []PageRoute{
	{Path: "/", Template: "index", ActivePage: NavHome},
	{Path: "/about", Template: "about", ActivePage: NavAbout},
	{Path: "/services", Template: "services", ActivePage: NavServices},
	{Path: "/projects", Template: "projects", ActivePage: NavProjects},
	{Path: "/contact", Template: "contact", ActivePage: NavContact},
	{Path: "/projects/pcb", Template: "project-pcb", ActivePage: NavProjects},
}

// Routes returns a copy of the fixed page table.
func Routes() []PageRoute {
	return slices.Clone(routes)
}
