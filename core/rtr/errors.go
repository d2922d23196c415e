package rtr

import "errors"

var (
	// ErrRouteNotFound is reported when no route matches a method and path.
	ErrRouteNotFound = errors.New("route not found")

	// ErrUnknownMethod is returned when registering for a method token the router does not recognize.
	ErrUnknownMethod = errors.New("unknown HTTP method")
)
