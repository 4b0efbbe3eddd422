package server

import (
	"net/http"
	"strings"
)

// RouteDoc describes one registered endpoint for the admin surface.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

// RouteRegistry collects every route that passes through Handle, so the
// admin page lists the API without a hand-maintained table.
type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

// List returns a copy; callers may sort or filter freely.
func (rr *RouteRegistry) List() []RouteDoc {
	return append([]RouteDoc(nil), rr.routes...)
}

// Handle registers h on the mux and records the route in the registry.
// methodAndPattern uses the http.ServeMux "METHOD /path" form.
func Handle(mux *http.ServeMux, rr *RouteRegistry, methodAndPattern, summary, exampleBody string, h http.HandlerFunc) {
	method, pattern, _ := strings.Cut(methodAndPattern, " ")
	rr.Add(RouteDoc{Method: method, Pattern: pattern, Summary: summary, ExampleBody: exampleBody})
	mux.HandleFunc(methodAndPattern, h)
}
