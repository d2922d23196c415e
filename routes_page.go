package rroute

import (
	"strconv"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/rroute/core/rtr"
)

// routesPage renders a route table as a standalone HTML page.
type routesPage struct {
	Title  string
	Routes []rtr.RouteList
}

func (p routesPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T(p.Title),
			b.Style().T(`
				body { font-family: monospace; max-width: 960px; margin: 0 auto; padding: 20px; }
				.route { padding: 4px 0; border-bottom: 1px solid #e9ecef; }
				.method { display: inline-block; width: 80px; }
				.handler { color: #6c757d; margin-left: 12px; }
			`),
		),
		b.Body().R(
			b.H1().T(p.Title),
			b.P().T(strconv.Itoa(len(p.Routes))+" routes"),
			b.DivClass("routes").R(
				p.rows(b),
			),
		),
	)
	return nil
}

func (p routesPage) rows(b *element.Builder) any {
	for _, route := range p.Routes {
		b.DivClass("route").R(
			b.Span("class", "method").T(route.Method),
			b.T(route.Path),
			b.Span("class", "handler").T(route.HandlerRef),
		)
	}
	return nil
}

// RenderRoutes renders routes as an HTML page with the given title.
func RenderRoutes(title string, routes []rtr.RouteList) string {
	b := element.NewBuilder()
	element.RenderComponents(b, routesPage{Title: title, Routes: routes})
	return b.String()
}
