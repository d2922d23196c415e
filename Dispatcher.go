package rroute

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/rohanthewiz/rroute/consts"
	"github.com/rohanthewiz/rroute/core/rtr"
)

// Dispatcher matches requests against a fixed set of routes and turns each
// endpoint's outcome into a Response. It holds no per-request state, so one
// Dispatcher may serve any number of requests concurrently.
type Dispatcher struct {
	router       *rtr.Router[Endpoint]
	logger       *log.Logger
	errorHandler func(req *Request, err error)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used to report endpoint defects.
func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithErrorHandler sets a function called for every error an endpoint returns
// that is not an *ApplicationError, after the 500 response has been chosen.
// The default logs the error.
func WithErrorHandler(fn func(req *Request, err error)) Option {
	return func(d *Dispatcher) {
		if fn != nil {
			d.errorHandler = fn
		}
	}
}

func newDispatcher(router *rtr.Router[Endpoint], options ...Option) *Dispatcher {
	d := &Dispatcher{
		router: router,
		logger: log.Default(),
	}

	d.errorHandler = func(req *Request, err error) {
		d.logger.Error("unrecognized endpoint error", "method", req.Method, "route", req.Route, "err", err)
	}

	for _, opt := range options {
		opt(d)
	}
	return d
}

// Dispatch routes one request and returns the response to send.
// rawPath is still percent-encoded; rawQuery excludes the '?'.
func (d *Dispatcher) Dispatch(method, rawPath, rawQuery string, headers []Header, body []byte) Response {
	return d.DispatchContext(context.Background(), method, rawPath, rawQuery, headers, body)
}

// DispatchContext is Dispatch with a context made available to the endpoint
// through Request.Context. The dispatcher itself never waits on ctx.
func (d *Dispatcher) DispatchContext(ctx context.Context, method, rawPath, rawQuery string, headers []Header, body []byte) Response {
	res := &response{status: http.StatusOK}

	// A method nobody registered for is a routing miss like any other.
	if !d.router.HasMethod(method) {
		res.SetStatus(http.StatusNotFound)
		return res
	}

	// Split before decoding so an encoded slash stays inside its component.
	components := rtr.SplitPath(rawPath)
	for i, comp := range components {
		decoded, err := url.PathUnescape(comp)
		if err != nil {
			res.SetStatus(http.StatusBadRequest)
			return res
		}
		components[i] = decoded
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		res.SetStatus(http.StatusBadRequest)
		return res
	}

	route, params, ok := d.router.LookupRoute(method, components)
	if !ok {
		res.SetStatus(http.StatusNotFound)
		return res
	}

	req := &Request{
		ctx:        ctx,
		Method:     method,
		Route:      route.Pattern,
		Components: components,
		Params:     params,
		Query:      query,
		Headers:    FlattenHeaders(headers),
		Body:       body,
	}
	res.route = route.Pattern

	result, err := perform(route.Data, req)
	if err != nil {
		d.writeError(res, req, err)
		return res
	}

	status := result.Status
	if status == 0 {
		status = http.StatusOK
	}

	if status < 100 || status > 999 {
		d.writeError(res, req, fmt.Errorf("endpoint returned invalid status %d", result.Status))
		return res
	}

	res.SetStatus(status)
	res.headers = append(res.headers, result.Headers...)
	res.body = result.Body
	return res
}

// Request performs a synthetic request and returns the response.
// The target may be a bare path with query or an absolute URL.
// It is very useful inside tests where you don't want to spin up a real web server.
func (d *Dispatcher) Request(method string, target string, headers []Header, body io.Reader) Response {
	var payload []byte

	if body != nil {
		var err error
		if payload, err = io.ReadAll(body); err != nil {
			return &response{status: http.StatusBadRequest}
		}
	}

	path, query := splitTarget(target)
	return d.Dispatch(method, path, query, headers, payload)
}

// Lookup finds the endpoint and parameters for a method and an already decoded path.
func (d *Dispatcher) Lookup(method string, path string) (Endpoint, rtr.Params, error) {
	ep, params, ok := d.router.Lookup(method, path)
	if !ok {
		return nil, nil, rtr.ErrRouteNotFound
	}
	return ep, params, nil
}

// Routes lists the routes this dispatcher serves.
func (d *Dispatcher) Routes() []rtr.RouteList {
	return d.router.Routes()
}

// Len returns the number of routes this dispatcher serves.
func (d *Dispatcher) Len() int {
	return d.router.Len()
}

// writeError fills res from the Error Mapper's verdict on err.
func (d *Dispatcher) writeError(res *response, req *Request, err error) {
	status, body, recognized := MapError(err)
	if !recognized {
		var appErr *ApplicationError
		if errors.As(err, &appErr) && appErr != nil {
			err = fmt.Errorf("application error status %d is outside 400-599, sent 500: %w", appErr.Status, err)
		}
		d.errorHandler(req, err)
	}

	res.SetStatus(status)
	res.headers = res.headers[:0]
	res.SetHeader(consts.HeaderContentType, consts.ContentTypeJSON)
	res.body = body
}

// perform calls the endpoint, turning a panic into an error.
func perform(ep Endpoint, req *Request) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("endpoint panic: %v\n%s", r, debug.Stack())
		}
	}()

	return ep.Perform(req)
}
