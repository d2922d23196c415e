package rtr

// RouteList represents a registered route for debugging and inspection purposes.
// HandlerRef is a printable reference to the route's data.
type RouteList struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	HandlerRef string `json:"handler"`
}
