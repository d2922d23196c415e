package rtr

// treeNode is one level of a segment trie.
// Static children are keyed by their literal segment; all parameter segments
// at a level share the single parameter child, whatever their names.
//
// Example tree for /users, /users/:id, /users/:id/posts, /users/me:
//
//	root
//	 └── "users" (route: /users)
//	      ├── "me" (route: /users/me)
//	      └── parameter (route: /users/:id)
//	           └── "posts" (route: /users/:id/posts)
type treeNode[T any] struct {
	children  map[string]*treeNode[T] // Static children by literal segment
	parameter *treeNode[T]            // Parameter child (e.g. :id)
	route     *Route[T]               // Route terminating here, if any
}

// child returns the static child for segment, creating it if absent.
func (node *treeNode[T]) child(segment string) *treeNode[T] {
	if next, ok := node.children[segment]; ok {
		return next
	}

	if node.children == nil {
		node.children = make(map[string]*treeNode[T], 2)
	}

	next := &treeNode[T]{}
	node.children[segment] = next
	return next
}

// param returns the parameter child, creating it if absent.
func (node *treeNode[T]) param() *treeNode[T] {
	if node.parameter == nil {
		node.parameter = &treeNode[T]{}
	}
	return node.parameter
}

// clone deep-copies the node and everything below it.
// Routes are copied by value so the copy shares no mutable state with the original.
func (node *treeNode[T]) clone() *treeNode[T] {
	cp := &treeNode[T]{}

	if node.route != nil {
		r := *node.route
		cp.route = &r
	}

	if len(node.children) > 0 {
		cp.children = make(map[string]*treeNode[T], len(node.children))
		for seg, child := range node.children {
			cp.children[seg] = child.clone()
		}
	}

	if node.parameter != nil {
		cp.parameter = node.parameter.clone()
	}

	return cp
}

// each traverses the subtree depth-first and calls the given function on every node.
// Static children are visited before the parameter child.
func (node *treeNode[T]) each(callback func(*treeNode[T])) {
	callback(node)

	for _, child := range node.children {
		child.each(callback)
	}

	if node.parameter != nil {
		node.parameter.each(callback)
	}
}
