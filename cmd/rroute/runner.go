package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/core/rtr"
	"github.com/rohanthewiz/rroute/internal/config"
	"github.com/rohanthewiz/rroute/internal/demo"
	"github.com/rohanthewiz/rroute/internal/shared"
	"github.com/rohanthewiz/rroute/server"
	"github.com/rohanthewiz/serr"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	logger  *log.Logger
	output  io.Writer
	palette *palette
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided options
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		logger:  opts.Logger,
		output:  opts.Output,
		palette: newPalette(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, routesCommand, configCommand, callCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig reads the file named by --config. The default file may be absent,
// in which case the embedded defaults apply; an explicitly named file must exist.
func (r *Runner) loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")

	if _, err := os.Stat(path); err != nil {
		if cmd.IsSet("config") {
			return nil, serr.Wrap(err, "path", path)
		}
		return config.DefaultConfig(), nil
	}

	return config.LoadConfig(path)
}

// build registers the demo endpoints and returns the dispatcher serving them.
// The returned store must be closed by the caller.
func (r *Runner) build(cfg *config.Config) (*rroute.Dispatcher, demo.Store, error) {
	var store demo.Store = demo.NewMemoryStore()

	if cfg.Demo.Database != "" {
		sqliteStore, err := demo.NewSQLiteStore(cfg.Demo.Database)
		if err != nil {
			return nil, nil, err
		}
		store = sqliteStore
	}

	reg := rroute.NewRegistry()
	reg.Use(rroute.RequestInfo(r.logger))

	if err := demo.Register(reg, store); err != nil {
		store.Close()
		return nil, nil, err
	}

	return reg.Build(rroute.WithLogger(r.logger)), store, nil
}

// Serve runs the HTTP server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	if address := cmd.String("address"); address != "" {
		cfg.Server.Address = address
	}

	if err := shared.SetLogLevel(r.logger, cfg.Log.Level); err != nil {
		return err
	}

	d, store, err := r.build(cfg)
	if err != nil {
		var malformed *rtr.MalformedRouteError
		if errors.As(err, &malformed) {
			r.logger.Fatal("refusing to start with a malformed route", "pattern", malformed.Pattern, "err", err)
		}
		return err
	}
	defer store.Close()

	srv := server.New(d, cfg, shared.WithLogger(r.logger, "component", "server"))
	return srv.Run(ctx, server.RunOpts{Verbose: true})
}

// Routes prints the route table.
func (r *Runner) Routes(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	d, store, err := r.build(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	routes := d.Routes()

	if cmd.Bool("json") {
		encoder := json.NewEncoder(r.output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(routes)
	}

	fmt.Fprintln(r.output, r.palette.title.Render(fmt.Sprintf("%d routes", len(routes))))
	for _, route := range routes {
		fmt.Fprintln(r.output, r.palette.method.Render(route.Method)+
			r.palette.path.Render(route.Path)+"  "+
			r.palette.handler.Render(route.HandlerRef))
	}
	return nil
}

// ConfigInit writes the default configuration file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := config.CreateConfigFile(path); err != nil {
		return err
	}

	fmt.Fprintf(r.output, "wrote %s\n", path)
	return nil
}

// Call dispatches one request in-process and prints the response.
func (r *Runner) Call(ctx context.Context, cmd *cli.Command) error {
	method := strings.ToUpper(cmd.StringArg("method"))
	target := cmd.StringArg("url")
	if method == "" || target == "" {
		return serr.New("usage: rroute call METHOD URL")
	}

	headers, err := parseHeaders(cmd.StringSlice("header"))
	if err != nil {
		return err
	}

	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	d, store, err := r.build(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var body io.Reader
	if data := cmd.String("data"); data != "" {
		body = strings.NewReader(data)
	}

	res := d.Request(method, target, headers, body)

	fmt.Fprintln(r.output, r.palette.status(res.Status(), fmt.Sprintf("%d %s", res.Status(), res.Route())))
	for _, header := range res.Headers() {
		fmt.Fprintf(r.output, "%s: %s\n", header.Key, header.Value)
	}
	if len(res.Body()) > 0 {
		fmt.Fprintf(r.output, "\n%s\n", res.Body())
	}
	return nil
}

// parseHeaders turns "Key: Value" strings into header pairs, keeping their order.
func parseHeaders(raw []string) ([]rroute.Header, error) {
	headers := make([]rroute.Header, 0, len(raw))
	for _, line := range raw {
		key, value, ok := strings.Cut(line, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, serr.New("header must look like 'Key: Value'", "header", line)
		}
		headers = append(headers, rroute.Header{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
	}
	return headers, nil
}
