package rtr

import (
	"fmt"
	"sort"

	"github.com/rohanthewiz/rroute/consts"
)

// Router keeps one segment trie per HTTP method, plus a hash index for
// routes that have no parameters.
type Router[T any] struct {
	trees  map[string]*Tree[T]
	static *HashRouter[T]
}

// New creates an empty router. Trees are created as methods get their first route.
func New[T any]() *Router[T] {
	return &Router[T]{
		trees:  make(map[string]*Tree[T], len(consts.Methods)),
		static: NewHashRouter[T](),
	}
}

// Add compiles the pattern and registers data for the given method and path.
// It fails with ErrUnknownMethod for an unrecognized method and with a
// *MalformedRouteError for an invalid pattern.
func (router *Router[T]) Add(method string, pattern string, data T) (*Route[T], error) {
	if !consts.IsMethod(method) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	segments, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	route := &Route[T]{
		Method:   method,
		Pattern:  Pattern(segments),
		Segments: segments,
		Data:     data,
	}

	router.selectTree(method, true).Add(route)

	if !hasParams(segments) {
		router.static.Add(route)
	}

	return route, nil
}

// Lookup splits the path and finds the data and parameters for the given route.
func (router *Router[T]) Lookup(method string, path string) (T, Params, bool) {
	route, params, ok := router.LookupRoute(method, SplitPath(path))
	if !ok {
		var empty T
		return empty, nil, false
	}
	return route.Data, params, true
}

// LookupRoute finds the route and parameter bindings for already split (and decoded) path components.
func (router *Router[T]) LookupRoute(method string, components []string) (*Route[T], Params, bool) {
	tree := router.selectTree(method, false)
	if tree == nil {
		return nil, nil, false
	}

	if route := router.static.Lookup(method, components); route != nil {
		return route, nil, true
	}

	return tree.Lookup(components)
}

// LookupNoAlloc finds the route for the given components, reporting bindings through addParameter.
func (router *Router[T]) LookupNoAlloc(method string, components []string, addParameter func(string, string)) *Route[T] {
	tree := router.selectTree(method, false)
	if tree == nil {
		return nil
	}

	if route := router.static.Lookup(method, components); route != nil {
		return route
	}

	return tree.LookupNoAlloc(components, addParameter)
}

// HasMethod reports whether any route was registered for method.
func (router *Router[T]) HasMethod(method string) bool {
	return router.selectTree(method, false) != nil
}

// Len returns the number of routes across all methods.
func (router *Router[T]) Len() (n int) {
	for _, tree := range router.trees {
		n += tree.Len()
	}
	return
}

// Map traverses all trees and calls the given function on every route's data.
func (router *Router[T]) Map(transform func(T) T) {
	for _, tree := range router.trees {
		tree.Map(transform)
	}
}

// Routes lists every route, ordered by method (in consts.Methods order) then pattern.
func (router *Router[T]) Routes() (routes []RouteList) {
	for _, method := range consts.Methods {
		tree := router.trees[method]
		if tree == nil {
			continue
		}

		batch := tree.Routes()
		sort.Slice(batch, func(i, j int) bool { return batch[i].Pattern < batch[j].Pattern })

		for _, r := range batch {
			routes = append(routes, RouteList{Method: method, Path: r.Pattern, HandlerRef: fmt.Sprintf("%v", r.Data)})
		}
	}
	return
}

// Clone returns a deep copy of the router. Routes added to either copy afterwards are not seen by the other.
func (router *Router[T]) Clone() *Router[T] {
	cp := New[T]()

	for method, tree := range router.trees {
		cpTree := tree.Clone()
		cp.trees[method] = cpTree

		for _, route := range cpTree.Routes() {
			if !hasParams(route.Segments) {
				cp.static.Add(route)
			}
		}
	}

	return cp
}

// selectTree returns the tree for the given HTTP method,
// creating it when create is set.
func (router *Router[T]) selectTree(method string, create bool) *Tree[T] {
	tree := router.trees[method]
	if tree == nil && create {
		tree = &Tree[T]{}
		router.trees[method] = tree
	}
	return tree
}

func hasParams(segments []PathSegment) bool {
	for _, seg := range segments {
		if seg.Kind == ParamSegment {
			return true
		}
	}
	return false
}
