// Package server adapts a rroute.Dispatcher to net/http.
// It owns the listener, the request time and size bounds, and the
// process-level concerns the dispatcher stays out of: request ids,
// rate limiting, metrics, tracing and access logging.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/consts"
	"github.com/rohanthewiz/rroute/internal/config"
	"github.com/rohanthewiz/serr"
	"golang.org/x/time/rate"
)

const (
	defaultShutdownTimeout = 10 * time.Second

	// statusClientClosedRequest marks spans whose client disconnected before a response.
	statusClientClosedRequest = 499
)

// Server serves the current Dispatcher snapshot over HTTP.
type Server struct {
	dispatcher atomic.Pointer[rroute.Dispatcher]

	cfg      config.Config
	logger   *log.Logger
	limiter  *rate.Limiter
	registry *prometheus.Registry
	metrics  *metrics
	tracer   *tracer
	handler  http.Handler
}

// New creates a server for d configured by cfg. A nil logger uses log.Default().
func New(d *rroute.Dispatcher, cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		cfg:      *cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		tracer:   newTracer(cfg.Tracing.TracerName),
	}
	s.metrics = newMetrics(s.registry, cfg.Metrics.Namespace)

	if cfg.Limits.RequestsPerSecond > 0 {
		burst := cfg.Limits.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.Limits.RequestsPerSecond), burst)
	}

	s.dispatcher.Store(d)
	s.handler = s.routes()
	return s
}

// Dispatcher returns the snapshot currently serving requests.
func (s *Server) Dispatcher() *rroute.Dispatcher {
	return s.dispatcher.Load()
}

// Swap publishes d to all subsequent requests and returns the previous snapshot.
// Requests already in flight finish on the snapshot they started with.
func (s *Server) Swap(d *rroute.Dispatcher) *rroute.Dispatcher {
	return s.dispatcher.Swap(d)
}

// Gatherer exposes the server's private metrics registry.
func (s *Server) Gatherer() prometheus.Gatherer {
	return s.registry
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.requestInfo)
	r.Use(middleware.Recoverer)

	if s.cfg.Metrics.Enabled && s.cfg.Metrics.Path != "" {
		r.Method(consts.MethodGet, s.cfg.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	if s.cfg.Routes.PageEnabled && s.cfg.Routes.PagePath != "" {
		r.Get(s.cfg.Routes.PagePath, s.serveRoutes)
	}

	// Everything chi does not serve itself goes to the dispatcher,
	// including methods chi has never heard of.
	dispatch := s.rateLimit(http.HandlerFunc(s.serveDispatch)).ServeHTTP
	r.NotFound(dispatch)
	r.MethodNotAllowed(dispatch)
	return r
}

func (s *Server) serveRoutes(w http.ResponseWriter, r *http.Request) {
	html := rroute.RenderRoutes("Routes", s.Dispatcher().Routes())
	w.Header().Set(consts.HeaderContentType, consts.ContentTypeHTML)
	_, _ = io.WriteString(w, html)
}

// dispatchResult carries a finished dispatch back from its goroutine.
type dispatchResult struct {
	res     rroute.Response
	elapsed time.Duration
}

func (s *Server) serveDispatch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	method := methodLabel(r.Method)

	body, err := s.readBody(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			s.metrics.observe(method, "", http.StatusRequestEntityTooLarge, time.Since(start))
			return
		}
		s.logger.Warn("reading request body", "err", err, "request_id", RequestID(r.Context()))
		w.WriteHeader(http.StatusBadRequest)
		s.metrics.observe(method, "", http.StatusBadRequest, time.Since(start))
		return
	}

	ctx, span := s.tracer.start(r.Context(), r.Method, r.URL.Path, RequestID(r.Context()))

	if timeout := s.cfg.Server.HandlerTimeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	d := s.Dispatcher()
	rawPath, rawQuery := r.URL.EscapedPath(), r.URL.RawQuery
	headers := collectHeaders(r)
	done := make(chan dispatchResult, 1)

	go func() {
		res := d.DispatchContext(ctx, r.Method, rawPath, rawQuery, headers, body)
		done <- dispatchResult{res: res, elapsed: time.Since(start)}
	}()

	select {
	case out := <-done:
		writeResponse(w, out.res)
		s.metrics.observe(method, out.res.Route(), out.res.Status(), out.elapsed)
		s.tracer.finish(span, r.Method, out.res.Route(), out.res.Status())

	case <-ctx.Done():
		// The endpoint keeps running on its own goroutine; its result is dropped.
		if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			s.logger.Debug("client went away", "method", r.Method, "path", r.URL.Path,
				"request_id", RequestID(r.Context()))
			s.tracer.finish(span, r.Method, "", statusClientClosedRequest)
			return
		}

		s.logger.Warn("handler timed out", "method", r.Method, "path", r.URL.Path,
			"request_id", RequestID(r.Context()))
		s.writeError(w, http.StatusServiceUnavailable, "request timed out")
		s.metrics.observe(method, "", http.StatusServiceUnavailable, time.Since(start))
		s.tracer.finish(span, r.Method, "", http.StatusServiceUnavailable)
	}
}

// readBody reads at most the configured number of bytes. An empty body is nil.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	reader := io.Reader(r.Body)
	if limit := s.cfg.Server.MaxBodyBytes; limit > 0 {
		reader = http.MaxBytesReader(w, r.Body, limit)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}
	return body, nil
}

// writeError sends an adapter-level failure in the dispatcher's JSON error shape.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	status, body, _ := rroute.MapError(rroute.NewError(status, message))
	w.Header().Set(consts.HeaderContentType, consts.ContentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeResponse(w http.ResponseWriter, res rroute.Response) {
	for _, header := range res.Headers() {
		w.Header().Add(header.Key, header.Value)
	}
	w.WriteHeader(res.Status())

	if len(res.Body()) > 0 {
		_, _ = w.Write(res.Body())
	}
}

// collectHeaders flattens net/http's header map into ordered pairs.
// Keys are sorted so the last-wins rule is deterministic; Host is added back.
func collectHeaders(r *http.Request) []rroute.Header {
	keys := make([]string, 0, len(r.Header))
	for key := range r.Header {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	headers := make([]rroute.Header, 0, len(keys)+1)
	if r.Host != "" {
		headers = append(headers, rroute.Header{Key: "Host", Value: r.Host})
	}

	for _, key := range keys {
		for _, value := range r.Header[key] {
			headers = append(headers, rroute.Header{Key: key, Value: value})
		}
	}
	return headers
}

// methodLabel keeps unknown methods from creating new metric series.
func methodLabel(method string) string {
	if consts.IsMethod(method) {
		return method
	}
	return "OTHER"
}

type RunOpts struct {
	Verbose bool
	// StatusChan is a channel signalling that the server is about to enter its listen loop
	// It should be a buffered chan (cap 1 is all that is needed), so the server will not hang
	StatusChan chan struct{}
}

// Run listens on the configured address and serves until ctx is cancelled
// or the process receives SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, runOpts ...RunOpts) error {
	opts := RunOpts{}

	if len(runOpts) == 1 {
		opts.Verbose = runOpts[0].Verbose

		if runOpts[0].StatusChan != nil && cap(runOpts[0].StatusChan) < 1 && opts.Verbose {
			s.logger.Warn("running channel capacity should be at least 1, or we may hang")
		}
		opts.StatusChan = runOpts[0].StatusChan
	}

	address := s.cfg.Server.Address
	listener, err := net.Listen(consts.ProtocolTCP, address)
	if err != nil {
		return serr.Wrap(err, "address", address)
	}

	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: s.cfg.Server.WriteTimeout.Duration,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		if opts.StatusChan != nil {
			opts.StatusChan <- struct{}{}
		}

		if opts.Verbose {
			s.logger.Info(fmt.Sprintf("Server is running at %s", listener.Addr()), "routes", s.Dispatcher().Len())
		}

		errs <- srv.Serve(listener)
	}()

	select {
	case err := <-errs:
		return serr.Wrap(err, "address", address)
	case <-ctx.Done():
	}

	timeout := s.cfg.Server.ShutdownTimeout.Duration
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return serr.Wrap(err, "address", address)
	}

	if opts.Verbose {
		s.logger.Info("Server stopped")
	}
	return nil
}
