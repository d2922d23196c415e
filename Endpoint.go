package rroute

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"runtime"
	"strings"

	"github.com/rohanthewiz/rroute/core/rtr"
)

// Endpoint is a unit of application behavior bound to a method and path pattern.
// The router never looks inside an endpoint; it only reads Path and Method at
// registration and calls Perform once a request matches.
type Endpoint interface {
	// Path returns the unparsed route pattern, e.g. "/users/:id".
	Path() string
	// Method returns the HTTP method token the endpoint serves.
	Method() string
	// Perform handles one matched request. A non-nil error should be an
	// *ApplicationError; anything else is answered with a 500.
	Perform(req *Request) (Result, error)
}

// PerformFunc adapts a plain function to the Perform contract.
type PerformFunc func(req *Request) (Result, error)

// Request is the matched request handed to an endpoint.
// It is built fresh for each dispatch and is owned by that call.
type Request struct {
	ctx context.Context

	Method     string
	Route      string   // Pattern of the matched route
	Components []string // Decoded path components
	Params     rtr.Params
	Query      url.Values
	Headers    map[string]string
	Body       []byte // nil when the request carried no body
}

// Context returns the request's context. It is never nil.
func (req *Request) Context() context.Context {
	if req.ctx == nil {
		return context.Background()
	}
	return req.ctx
}

// Param retrieves a path parameter.
func (req *Request) Param(name string) string {
	return req.Params.Value(name)
}

// QueryValue returns the first query value for name.
func (req *Request) QueryValue(name string) string {
	return req.Query.Get(name)
}

// Header returns the header value for the exact key.
func (req *Request) Header(key string) string {
	return req.Headers[key]
}

// NewEndpoint creates an Endpoint from a method, a path pattern and a function.
func NewEndpoint(method string, path string, fn PerformFunc) Endpoint {
	return &funcEndpoint{method: method, path: path, fn: fn}
}

type funcEndpoint struct {
	method string
	path   string
	fn     PerformFunc
}

func (ep *funcEndpoint) Path() string   { return ep.path }
func (ep *funcEndpoint) Method() string { return ep.method }

func (ep *funcEndpoint) Perform(req *Request) (Result, error) {
	return ep.fn(req)
}

func (ep *funcEndpoint) String() string {
	return funcName(ep.fn)
}

// boundEndpoint is an endpoint as stored in the router: its full path
// (group prefixes applied) and its Perform wrapped by middleware.
type boundEndpoint struct {
	inner   Endpoint
	path    string
	perform PerformFunc
}

func (ep *boundEndpoint) Path() string   { return ep.path }
func (ep *boundEndpoint) Method() string { return ep.inner.Method() }

func (ep *boundEndpoint) Perform(req *Request) (Result, error) {
	return ep.perform(req)
}

func (ep *boundEndpoint) String() string {
	if s, ok := ep.inner.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", ep.inner)
}

// funcName returns the fully qualified name of fn, for route listings.
// Closure suffixes (.func1, .gowrap2, -fm) are trimmed so a handler built by a
// helper is listed under the helper's name.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<unknown>"
	}
	return trimClosureSuffix(f.Name())
}

func trimClosureSuffix(name string) string {
	name = strings.TrimSuffix(name, "-fm")

	for {
		dot := strings.LastIndexByte(name, '.')
		if dot < 0 {
			return name
		}

		last := name[dot+1:]
		switch {
		case strings.HasPrefix(last, "func"):
			last = strings.TrimPrefix(last, "func")
		case strings.HasPrefix(last, "gowrap"):
			last = strings.TrimPrefix(last, "gowrap")
		}
		if last == "" || strings.Trim(last, "0123456789") != "" {
			return name
		}
		name = name[:dot]
	}
}
