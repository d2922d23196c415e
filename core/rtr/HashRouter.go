package rtr

import "strings"

// HashRouter indexes routes without parameters by their canonical path for a
// single map lookup. It is a fast path in front of the trees: for a route with
// only literal segments the trie walk would land on the same route anyway,
// because static children always win.
type HashRouter[T any] struct {
	methods map[string]map[string]*Route[T]
}

// NewHashRouter creates an empty hash router. Method maps are created on first use.
func NewHashRouter[T any]() *HashRouter[T] {
	return &HashRouter[T]{methods: make(map[string]map[string]*Route[T], 4)}
}

// Add indexes the route under its canonical pattern, replacing any previous entry.
func (hr *HashRouter[T]) Add(route *Route[T]) {
	hashMap := hr.methods[route.Method]
	if hashMap == nil {
		hashMap = make(map[string]*Route[T], 16)
		hr.methods[route.Method] = hashMap
	}
	hashMap[route.Pattern] = route
}

// Lookup finds the static route for the given method and path components.
func (hr *HashRouter[T]) Lookup(method string, components []string) *Route[T] {
	hashMap := hr.methods[method]
	if len(hashMap) == 0 {
		return nil
	}
	return hashMap[joinComponents(components)]
}

// joinComponents renders components in the canonical form used by Pattern.
func joinComponents(components []string) string {
	if len(components) == 0 {
		return "/"
	}
	return "/" + strings.Join(components, "/")
}
