package rtr

// Route is a compiled (method, pattern) pair bound to its data.
type Route[T any] struct {
	Method   string
	Pattern  string // canonical form, see Pattern
	Segments []PathSegment
	Data     T
}

// Params returns the bindings for components matched against this route.
// Parameter names come from the route's own segments, so routes sharing a
// parameter level may name that parameter differently.
func (r *Route[T]) Params(components []string) Params {
	var params Params
	r.bind(components, func(key string, value string) {
		params = append(params, Parameter{Key: key, Value: value})
	})
	return params
}

func (r *Route[T]) bind(components []string, addParameter func(key string, value string)) {
	for i, seg := range r.Segments {
		if seg.Kind == ParamSegment {
			addParameter(seg.Value, components[i])
		}
	}
}

// Tree is a prefix tree over path segments. A Router keeps one Tree per HTTP method.
//
// Zero value is ready to use - the root node is embedded, not a pointer.
type Tree[T any] struct {
	root  treeNode[T]
	count int
}

// Add stores the route at the node its segments lead to, creating nodes as needed.
// A route already stored at that node is replaced: the last registration
// for a structurally identical path wins.
func (tree *Tree[T]) Add(route *Route[T]) {
	node := &tree.root

	for _, seg := range route.Segments {
		if seg.Kind == ParamSegment {
			node = node.param()
			continue
		}
		node = node.child(seg.Value)
	}

	if node.route == nil {
		tree.count++
	}
	node.route = route
}

// Len returns the number of distinct routes in the tree.
func (tree *Tree[T]) Len() int {
	return tree.count
}

// Lookup finds the route for the given path components along with its parameter bindings.
// This is a convenience wrapper around LookupNoAlloc that collects parameters into a slice.
func (tree *Tree[T]) Lookup(components []string) (*Route[T], Params, bool) {
	var params Params

	route := tree.LookupNoAlloc(components, func(key string, value string) {
		params = append(params, Parameter{Key: key, Value: value})
	})

	if route == nil {
		return nil, nil, false
	}
	return route, params, true
}

// LookupNoAlloc finds the route for the given path components, reporting each
// parameter binding through addParameter. It returns nil when nothing matches.
//
// At every level a static child equal to the component wins. The parameter
// child is taken only when no such static child exists. There is no
// backtracking: once a static child is taken, a dead end below it is a miss.
// The walk must end exactly on a node holding a route; partial matches miss.
func (tree *Tree[T]) LookupNoAlloc(components []string, addParameter func(key string, value string)) *Route[T] {
	node := &tree.root

	for _, comp := range components {
		if next, ok := node.children[comp]; ok {
			node = next
			continue
		}

		if node.parameter == nil {
			return nil
		}
		node = node.parameter
	}

	if node.route == nil {
		return nil
	}

	node.route.bind(components, addParameter)
	return node.route
}

// Map binds all route data to a new value provided by the callback.
// The transformation is applied in-place.
func (tree *Tree[T]) Map(transform func(T) T) {
	tree.root.each(func(node *treeNode[T]) {
		if node.route != nil {
			node.route.Data = transform(node.route.Data)
		}
	})
}

// Routes returns every route stored in the tree, in no particular order.
func (tree *Tree[T]) Routes() []*Route[T] {
	routes := make([]*Route[T], 0, tree.count)

	tree.root.each(func(node *treeNode[T]) {
		if node.route != nil {
			routes = append(routes, node.route)
		}
	})

	return routes
}

// Clone returns a deep copy of the tree.
func (tree *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: *tree.root.clone(), count: tree.count}
}
