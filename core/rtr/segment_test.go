package rtr_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute/core/rtr"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		Path string
		Want []string
	}{
		{Path: "", Want: nil},
		{Path: "/", Want: nil},
		{Path: "//", Want: nil},
		{Path: "/a", Want: []string{"a"}},
		{Path: "a", Want: []string{"a"}},
		{Path: "/a/b", Want: []string{"a", "b"}},
		{Path: "/a/b/", Want: []string{"a", "b"}},
		{Path: "a/b/", Want: []string{"a", "b"}},
		{Path: "/a//b", Want: []string{"a", "b"}},
		{Path: "/users/:id/orders", Want: []string{"users", ":id", "orders"}},
	}

	for _, test := range tests {
		t.Run(test.Path, func(t *testing.T) {
			got := rtr.SplitPath(test.Path)
			assert.Equal(t, len(got), len(test.Want))
			for i := range test.Want {
				assert.Equal(t, got[i], test.Want[i])
			}
		})
	}
}

func TestCompile(t *testing.T) {
	segments, err := rtr.Compile("/users/:id/orders")
	assert.Nil(t, err)
	assert.Equal(t, len(segments), 3)
	assert.Equal(t, segments[0], rtr.PathSegment{Kind: rtr.LiteralSegment, Value: "users"})
	assert.Equal(t, segments[1], rtr.PathSegment{Kind: rtr.ParamSegment, Value: "id"})
	assert.Equal(t, segments[2], rtr.PathSegment{Kind: rtr.LiteralSegment, Value: "orders"})
	assert.True(t, segments[1].IsParam())
	assert.False(t, segments[0].IsParam())
}

func TestSegmentKindAndBinding(t *testing.T) {
	segments, err := rtr.Compile("/users/:id")
	assert.Nil(t, err)
	assert.Equal(t, segments[0].Kind.String(), "literal")
	assert.Equal(t, segments[1].Kind.String(), "parameter")
	assert.Equal(t, segments[1].String(), ":id")

	params := rtr.Params{rtr.Parameter{Key: segments[1].Value, Value: "42"}}
	assert.Equal(t, params.Value("id"), "42")
}

func TestCompileRoot(t *testing.T) {
	segments, err := rtr.Compile("/")
	assert.Nil(t, err)
	assert.Equal(t, len(segments), 0)
	assert.Equal(t, rtr.Pattern(segments), "/")
}

func TestCompileNoDecoding(t *testing.T) {
	segments, err := rtr.Compile("/files/a%20b")
	assert.Nil(t, err)
	assert.Equal(t, segments[1].Value, "a%20b")
}

func TestCompileMalformed(t *testing.T) {
	patterns := []string{
		"/users/:",
		"/:/orders",
		":",
		"/a/:id/b/:id",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			segments, err := rtr.Compile(pattern)
			assert.Equal(t, len(segments), 0)

			var malformed *rtr.MalformedRouteError
			assert.True(t, errors.As(err, &malformed))
			assert.Equal(t, malformed.Pattern, pattern)
		})
	}
}

func TestPatternCanonical(t *testing.T) {
	tests := map[string]string{
		"/users/:id/":  "/users/:id",
		"users//:id":   "/users/:id",
		"/a/b/c":       "/a/b/c",
		"":             "/",
		"/:one/:two/x": "/:one/:two/x",
	}

	for in, want := range tests {
		segments, err := rtr.Compile(in)
		assert.Nil(t, err)
		assert.Equal(t, rtr.Pattern(segments), want)
	}
}
