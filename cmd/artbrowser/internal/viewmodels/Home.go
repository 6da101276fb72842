package viewmodels

import "html/template"

/*
Home is the page shell. The three components are rendered ahead of time
so the same markup serves the full page and htmx swaps.
*/
type Home struct {
	BaseViewModel
	Loading template.HTML
	Search  template.HTML
	Preview template.HTML
	Feature template.HTML
}
