package rroute

import (
	"errors"
	"fmt"

	"github.com/rohanthewiz/rroute/consts"
	"github.com/rohanthewiz/rroute/core/rtr"
)

var errNilEndpoint = errors.New("cannot register a nil endpoint")

// Registry collects endpoints during the registration phase.
// Once registration is complete, Build returns a Dispatcher holding an
// immutable snapshot of the routes. A Registry is not safe for concurrent use.
type Registry struct {
	router     *rtr.Router[Endpoint]
	middleware []Middleware
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{router: rtr.New[Endpoint]()}
}

// Use adds middleware applied to every endpoint registered after this call.
// Middleware runs in the order it was added.
func (reg *Registry) Use(middleware ...Middleware) {
	reg.middleware = append(reg.middleware, middleware...)
}

// Register adds endpoints under their own method and path.
// It stops at the first endpoint that fails: an unknown method yields
// rtr.ErrUnknownMethod and an invalid pattern a *rtr.MalformedRouteError.
// Registering a structurally identical method and path again replaces the earlier endpoint.
func (reg *Registry) Register(endpoints ...Endpoint) error {
	for _, ep := range endpoints {
		if err := reg.add(ep, "", reg.middleware); err != nil {
			return err
		}
	}
	return nil
}

// Handle registers fn for the given method and path.
func (reg *Registry) Handle(method string, path string, fn PerformFunc) error {
	return reg.Register(NewEndpoint(method, path, fn))
}

// Get registers fn for GET requests on path. It panics on an invalid pattern.
func (reg *Registry) Get(path string, fn PerformFunc) {
	reg.mustHandle(consts.MethodGet, path, fn)
}

// Head registers fn for HEAD requests on path. It panics on an invalid pattern.
func (reg *Registry) Head(path string, fn PerformFunc) {
	reg.mustHandle(consts.MethodHead, path, fn)
}

// Post registers fn for POST requests on path. It panics on an invalid pattern.
func (reg *Registry) Post(path string, fn PerformFunc) {
	reg.mustHandle(consts.MethodPost, path, fn)
}

// Put registers fn for PUT requests on path. It panics on an invalid pattern.
func (reg *Registry) Put(path string, fn PerformFunc) {
	reg.mustHandle(consts.MethodPut, path, fn)
}

// Patch registers fn for PATCH requests on path. It panics on an invalid pattern.
func (reg *Registry) Patch(path string, fn PerformFunc) {
	reg.mustHandle(consts.MethodPatch, path, fn)
}

// Delete registers fn for DELETE requests on path. It panics on an invalid pattern.
func (reg *Registry) Delete(path string, fn PerformFunc) {
	reg.mustHandle(consts.MethodDelete, path, fn)
}

// Options registers fn for OPTIONS requests on path. It panics on an invalid pattern.
func (reg *Registry) Options(path string, fn PerformFunc) {
	reg.mustHandle(consts.MethodOptions, path, fn)
}

// Group creates a route group whose endpoints share a path prefix and middleware.
// The group starts with the registry's current middleware followed by the given ones.
func (reg *Registry) Group(prefix string, middleware ...Middleware) *Group {
	return &Group{
		prefix:     prefix,
		registry:   reg,
		middleware: append(append([]Middleware(nil), reg.middleware...), middleware...),
	}
}

// Routes lists the registered routes.
func (reg *Registry) Routes() []rtr.RouteList {
	return reg.router.Routes()
}

// Len returns the number of registered routes.
func (reg *Registry) Len() int {
	return reg.router.Len()
}

// Build returns a Dispatcher serving a snapshot of the routes registered so far.
// Later registrations do not affect dispatchers already built.
func (reg *Registry) Build(options ...Option) *Dispatcher {
	return newDispatcher(reg.router.Clone(), options...)
}

func (reg *Registry) mustHandle(method string, path string, fn PerformFunc) {
	if err := reg.Handle(method, path, fn); err != nil {
		panic(err)
	}
}

// add binds ep under prefix with the given middleware chain and stores it.
func (reg *Registry) add(ep Endpoint, prefix string, middleware []Middleware) error {
	if ep == nil {
		return errNilEndpoint
	}

	bound := &boundEndpoint{
		inner:   ep,
		path:    joinPaths(prefix, ep.Path()),
		perform: chain(ep.Perform, middleware),
	}

	route, err := reg.router.Add(ep.Method(), bound.path, bound)
	if err != nil {
		return fmt.Errorf("register %s %s: %w", ep.Method(), bound.path, err)
	}

	bound.path = route.Pattern
	return nil
}

// joinPaths concatenates a group prefix and a pattern with a single slash between them.
// Splitting discards empty components anyway, so only readability is at stake.
func joinPaths(prefix string, path string) string {
	if prefix == "" {
		return path
	}

	switch {
	case len(path) == 0:
		return prefix
	case prefix[len(prefix)-1] == consts.RuneFwdSlash && path[0] == consts.RuneFwdSlash:
		return prefix + path[1:]
	case prefix[len(prefix)-1] != consts.RuneFwdSlash && path[0] != consts.RuneFwdSlash:
		return prefix + consts.StrFwdSlash + path
	default:
		return prefix + path
	}
}
