package rroute_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/send"
)

// setHeader is a middleware adding a response header after the endpoint ran.
func setHeader(key, value string) rroute.Middleware {
	return func(next rroute.PerformFunc) rroute.PerformFunc {
		return func(req *rroute.Request) (rroute.Result, error) {
			res, err := next(req)
			res.Headers = append(res.Headers, rroute.Header{Key: key, Value: value})
			return res, err
		}
	}
}

func TestGroup(t *testing.T) {
	reg := rroute.NewRegistry()

	api := reg.Group("/api")
	api.Get("/users", func(req *rroute.Request) (rroute.Result, error) {
		return send.Text(http.StatusOK, "users list"), nil
	})
	api.Post("/users", func(req *rroute.Request) (rroute.Result, error) {
		return send.Text(http.StatusOK, "user created"), nil
	})

	d := reg.Build()

	response := d.Request("GET", "/api/users", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "users list", string(response.Body()))
	assert.Equal(t, "/api/users", response.Route())

	response = d.Request("POST", "/api/users", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "user created", string(response.Body()))

	// Non-existent route
	response = d.Request("GET", "/users", nil, nil)
	assert.Equal(t, http.StatusNotFound, response.Status())
}

func TestGroupMiddleware(t *testing.T) {
	reg := rroute.NewRegistry()

	var executionOrder []string

	reg.Use(func(next rroute.PerformFunc) rroute.PerformFunc {
		return func(req *rroute.Request) (rroute.Result, error) {
			executionOrder = append(executionOrder, "registry-middleware")
			return next(req)
		}
	})

	api := reg.Group("/api", func(next rroute.PerformFunc) rroute.PerformFunc {
		return func(req *rroute.Request) (rroute.Result, error) {
			executionOrder = append(executionOrder, "api-middleware")
			return next(req)
		}
	}, setHeader("X-API", "true"))

	api.Get("/test", func(req *rroute.Request) (rroute.Result, error) {
		executionOrder = append(executionOrder, "handler")
		return send.Text(http.StatusOK, "test response"), nil
	})

	response := reg.Build().Request("GET", "/api/test", nil, nil)

	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "test response", string(response.Body()))
	assert.Equal(t, "true", response.Header("X-API"))
	assert.Equal(t, "registry-middleware,api-middleware,handler", strings.Join(executionOrder, ","))
}

func TestNestedGroups(t *testing.T) {
	reg := rroute.NewRegistry()

	api := reg.Group("/api/")
	v1 := api.Group("v1")
	v2 := api.Group("/v2")

	assert.Equal(t, "/api/v1", v1.Prefix())

	v1.Get("/status", func(req *rroute.Request) (rroute.Result, error) {
		return send.Text(http.StatusOK, "v1 status"), nil
	})

	v2.Get("/items/:id", func(req *rroute.Request) (rroute.Result, error) {
		return send.Text(http.StatusOK, "v2 item "+req.Param("id")), nil
	})

	d := reg.Build()

	response := d.Request("GET", "/api/v1/status", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "v1 status", string(response.Body()))

	response = d.Request("GET", "/api/v2/items/5", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "v2 item 5", string(response.Body()))
	assert.Equal(t, "/api/v2/items/:id", response.Route())
}

func TestGroupAllMethods(t *testing.T) {
	reg := rroute.NewRegistry()
	api := reg.Group("/api")

	echoMethod := func(req *rroute.Request) (rroute.Result, error) {
		return send.Text(http.StatusOK, req.Method), nil
	}

	api.Get("/resource", echoMethod)
	api.Post("/resource", echoMethod)
	api.Put("/resource", echoMethod)
	api.Patch("/resource", echoMethod)
	api.Delete("/resource", echoMethod)
	api.Options("/resource", echoMethod)
	api.Head("/resource", func(req *rroute.Request) (rroute.Result, error) {
		return rroute.Result{Headers: []rroute.Header{{Key: "X-Method", Value: "HEAD"}}}, nil
	})

	d := reg.Build()

	methods := []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	for _, method := range methods {
		response := d.Request(method, "/api/resource", nil, nil)
		assert.Equal(t, http.StatusOK, response.Status())
		assert.Equal(t, method, string(response.Body()))
	}

	response := d.Request("HEAD", "/api/resource", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "HEAD", response.Header("X-Method"))
}

func TestGroupMiddlewareIndependence(t *testing.T) {
	reg := rroute.NewRegistry()

	auth := reg.Group("/auth", setHeader("X-Auth", "required"))
	public := reg.Group("/public", setHeader("X-Public", "true"))

	auth.Get("/profile", func(req *rroute.Request) (rroute.Result, error) {
		return send.Text(http.StatusOK, "auth profile"), nil
	})

	public.Get("/info", func(req *rroute.Request) (rroute.Result, error) {
		return send.Text(http.StatusOK, "public info"), nil
	})

	d := reg.Build()

	response := d.Request("GET", "/auth/profile", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "auth profile", string(response.Body()))
	assert.Equal(t, "required", response.Header("X-Auth"))
	assert.Equal(t, "", response.Header("X-Public"))

	response = d.Request("GET", "/public/info", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "public info", string(response.Body()))
	assert.Equal(t, "true", response.Header("X-Public"))
	assert.Equal(t, "", response.Header("X-Auth"))
}

func TestGroupUseMethod(t *testing.T) {
	reg := rroute.NewRegistry()

	var middlewareOrder []string

	mark := func(name string) rroute.Middleware {
		return func(next rroute.PerformFunc) rroute.PerformFunc {
			return func(req *rroute.Request) (rroute.Result, error) {
				middlewareOrder = append(middlewareOrder, name)
				return next(req)
			}
		}
	}

	api := reg.Group("/api")
	api.Use(mark("first"))
	api.Use(mark("second"))

	api.Get("/test", func(req *rroute.Request) (rroute.Result, error) {
		middlewareOrder = append(middlewareOrder, "handler")
		return send.Text(http.StatusOK, "done"), nil
	})

	response := reg.Build().Request("GET", "/api/test", nil, nil)
	assert.Equal(t, http.StatusOK, response.Status())
	assert.Equal(t, "first,second,handler", strings.Join(middlewareOrder, ","))
}

func TestGroupMalformedRoute(t *testing.T) {
	reg := rroute.NewRegistry()
	api := reg.Group("/api")

	err := api.Handle("GET", "/items/:", func(req *rroute.Request) (rroute.Result, error) {
		return rroute.Result{}, nil
	})
	assert.True(t, err != nil)
	assert.Contains(t, err.Error(), "/api/items/:")
	assert.Equal(t, 0, reg.Len())
}
