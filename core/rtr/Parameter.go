package rtr

// Parameter represents a URL parameter extracted from a dynamic route segment.
//
// Example:
//
//	Route: /user/:id/posts/:postId
//	URL:   /user/123/posts/456
//	Result: Params{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
type Parameter struct {
	Key   string
	Value string
}

// Params holds the bindings captured for one lookup, in route order.
type Params []Parameter

// Get returns the value bound to name and whether it was bound at all.
func (ps Params) Get(name string) (string, bool) {
	for i := range ps {
		if ps[i].Key == name {
			return ps[i].Value, true
		}
	}
	return "", false
}

// Value returns the value bound to name, or an empty string.
func (ps Params) Value(name string) string {
	val, _ := ps.Get(name)
	return val
}

// Map copies the bindings into a map keyed by parameter name.
func (ps Params) Map() map[string]string {
	m := make(map[string]string, len(ps))
	for _, p := range ps {
		m[p.Key] = p.Value
	}
	return m
}
