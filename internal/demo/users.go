// Package demo provides a small users API served through rroute.
// It is what `rroute serve` registers, and it exercises parameters,
// query strings, request bodies and application errors end to end.
package demo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/consts"
	"github.com/rohanthewiz/rroute/internal/shared"
	"github.com/rohanthewiz/rroute/send"
)

// Register adds the users endpoints and a health check to reg.
func Register(reg *rroute.Registry, store Store) error {
	if err := reg.Handle(consts.MethodGet, "/health", health); err != nil {
		return err
	}

	users := reg.Group("/users")
	return users.Register(
		listUsers{store: store},
		getUser{store: store},
		createUser{store: store},
		updateUser{store: store},
		deleteUser{store: store},
	)
}

func health(req *rroute.Request) (rroute.Result, error) {
	return send.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type listUsers struct{ store Store }

func (listUsers) Path() string   { return "/" }
func (listUsers) Method() string { return consts.MethodGet }

// Perform lists users, optionally filtered by ?name= prefix and capped by ?limit=.
func (ep listUsers) Perform(req *rroute.Request) (rroute.Result, error) {
	limit := -1
	if raw := req.QueryValue("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return rroute.Result{}, rroute.NewError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = n
	}

	users, err := ep.store.List(req.Context())
	if err != nil {
		return rroute.Result{}, err
	}

	prefix := req.QueryValue("name")
	matched := make([]User, 0, len(users))
	for _, user := range users {
		if limit >= 0 && len(matched) == limit {
			break
		}
		if strings.HasPrefix(user.Name, prefix) {
			matched = append(matched, user)
		}
	}

	return send.JSON(http.StatusOK, matched)
}

type getUser struct{ store Store }

func (getUser) Path() string   { return "/:userId" }
func (getUser) Method() string { return consts.MethodGet }

func (ep getUser) Perform(req *rroute.Request) (rroute.Result, error) {
	user, err := ep.store.Get(req.Context(), req.Param("userId"))
	if err != nil {
		return rroute.Result{}, storeError(err, req.Param("userId"))
	}
	return send.JSON(http.StatusOK, user)
}

type createUser struct{ store Store }

func (createUser) Path() string   { return "/" }
func (createUser) Method() string { return consts.MethodPost }

// Perform creates a user from a JSON body. A missing id is generated.
func (ep createUser) Perform(req *rroute.Request) (rroute.Result, error) {
	user, err := decodeUser(req.Body)
	if err != nil {
		return rroute.Result{}, err
	}

	if user.ID == "" {
		user.ID = shared.GenerateID()
	}

	if err := ep.store.Create(req.Context(), user); err != nil {
		return rroute.Result{}, storeError(err, user.ID)
	}

	res, err := send.JSON(http.StatusCreated, user)
	if err != nil {
		return res, err
	}
	res.Headers = append(res.Headers, rroute.Header{Key: "Location", Value: "/users/" + user.ID})
	return res, nil
}

type updateUser struct{ store Store }

func (updateUser) Path() string   { return "/:userId" }
func (updateUser) Method() string { return consts.MethodPut }

func (ep updateUser) Perform(req *rroute.Request) (rroute.Result, error) {
	user, err := decodeUser(req.Body)
	if err != nil {
		return rroute.Result{}, err
	}

	id := req.Param("userId")
	if user.ID != "" && user.ID != id {
		return rroute.Result{}, rroute.NewError(http.StatusBadRequest, "id in body does not match path")
	}
	user.ID = id

	if err := ep.store.Update(req.Context(), user); err != nil {
		return rroute.Result{}, storeError(err, id)
	}
	return send.JSON(http.StatusOK, user)
}

type deleteUser struct{ store Store }

func (deleteUser) Path() string   { return "/:userId" }
func (deleteUser) Method() string { return consts.MethodDelete }

func (ep deleteUser) Perform(req *rroute.Request) (rroute.Result, error) {
	id := req.Param("userId")
	if err := ep.store.Delete(req.Context(), id); err != nil {
		return rroute.Result{}, storeError(err, id)
	}
	return send.NoContent(), nil
}

func decodeUser(body []byte) (User, error) {
	var user User
	if len(body) == 0 {
		return user, rroute.NewError(http.StatusBadRequest, "request body is required")
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return user, rroute.Errorf(http.StatusBadRequest, "invalid user: %w", err)
	}
	if strings.TrimSpace(user.Name) == "" {
		return user, rroute.NewError(http.StatusBadRequest, "name is required")
	}
	return user, nil
}

// storeError translates store failures into application errors.
// Anything unexpected is passed through and answered with a 500.
func storeError(err error, id string) error {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return rroute.Errorf(http.StatusNotFound, "user %s not found", id)
	case errors.Is(err, ErrUserExists):
		return rroute.NewError(http.StatusConflict, "conflict")
	case errors.Is(err, context.DeadlineExceeded):
		return rroute.NewError(http.StatusServiceUnavailable, "request timed out")
	default:
		return err
	}
}
