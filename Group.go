package rroute

import (
	"github.com/rohanthewiz/rroute/consts"
)

// Group represents a route group with a common prefix and middleware.
// This allows organizing routes under a common URL prefix (e.g., /api/v1)
// and applying middleware that only affects routes within this group.
// Groups can be nested to create hierarchical route structures.
type Group struct {
	prefix     string
	registry   *Registry
	middleware []Middleware
}

// Group creates a sub-group with additional prefix and optional middleware.
// The new group inherits all middleware from the parent group and can add its own.
// Example: api.Group("/users", auth) registers under /api/users with auth.
func (g *Group) Group(prefix string, middleware ...Middleware) *Group {
	return &Group{
		prefix:     joinPaths(g.prefix, prefix),
		registry:   g.registry,
		middleware: append(append([]Middleware(nil), g.middleware...), middleware...),
	}
}

// Use adds middleware to the group.
// It applies to routes registered on the group after this call.
func (g *Group) Use(middleware ...Middleware) {
	g.middleware = append(g.middleware, middleware...)
}

// Prefix returns the group's path prefix.
func (g *Group) Prefix() string {
	return g.prefix
}

// Register adds endpoints with the group prefix prepended to their paths.
func (g *Group) Register(endpoints ...Endpoint) error {
	for _, ep := range endpoints {
		if err := g.registry.add(ep, g.prefix, g.middleware); err != nil {
			return err
		}
	}
	return nil
}

// Handle registers fn for the given method and path under the group prefix.
func (g *Group) Handle(method string, path string, fn PerformFunc) error {
	return g.Register(NewEndpoint(method, path, fn))
}

// Get registers a GET route with the group prefix
func (g *Group) Get(path string, fn PerformFunc) {
	g.mustHandle(consts.MethodGet, path, fn)
}

// Head registers a HEAD route with the group prefix
func (g *Group) Head(path string, fn PerformFunc) {
	g.mustHandle(consts.MethodHead, path, fn)
}

// Post registers a POST route with the group prefix
func (g *Group) Post(path string, fn PerformFunc) {
	g.mustHandle(consts.MethodPost, path, fn)
}

// Put registers a PUT route with the group prefix
func (g *Group) Put(path string, fn PerformFunc) {
	g.mustHandle(consts.MethodPut, path, fn)
}

// Patch registers a PATCH route with the group prefix
func (g *Group) Patch(path string, fn PerformFunc) {
	g.mustHandle(consts.MethodPatch, path, fn)
}

// Delete registers a DELETE route with the group prefix
func (g *Group) Delete(path string, fn PerformFunc) {
	g.mustHandle(consts.MethodDelete, path, fn)
}

// Options registers an OPTIONS route with the group prefix
func (g *Group) Options(path string, fn PerformFunc) {
	g.mustHandle(consts.MethodOptions, path, fn)
}

func (g *Group) mustHandle(method string, path string, fn PerformFunc) {
	if err := g.Handle(method, path, fn); err != nil {
		panic(err)
	}
}
