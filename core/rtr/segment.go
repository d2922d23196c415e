package rtr

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// SegmentKind tells whether a path segment is matched literally or captured as a parameter.
type SegmentKind uint8

const (
	LiteralSegment SegmentKind = iota
	ParamSegment
)

func (k SegmentKind) String() string {
	if k == ParamSegment {
		return "parameter"
	}
	return "literal"
}

// PathSegment is one `/`-delimited component of a compiled route pattern.
// For a LiteralSegment, Value is the text to match. For a ParamSegment, Value is the
// parameter name without its ':' prefix.
//
// Example:
//
//	/users/:id/orders -> [{LiteralSegment users} {ParamSegment id} {LiteralSegment orders}]
type PathSegment struct {
	Kind  SegmentKind
	Value string
}

// IsParam reports whether the segment captures a path parameter.
func (seg PathSegment) IsParam() bool {
	return seg.Kind == ParamSegment
}

func (seg PathSegment) String() string {
	if seg.Kind == ParamSegment {
		return consts.StrColon + seg.Value
	}
	return seg.Value
}

// MalformedRouteError is returned when a route pattern cannot be compiled.
type MalformedRouteError struct {
	Pattern string
	Reason  string
}

func (e *MalformedRouteError) Error() string {
	return fmt.Sprintf("malformed route %q: %s", e.Pattern, e.Reason)
}

// SplitPath splits a path on '/' and drops the empty components produced by
// leading, trailing or doubled slashes. Route patterns and request paths are
// split by this same rule, so `/a/b` and `/a/b/` address the same route.
func SplitPath(path string) []string {
	if path == "" || path == consts.StrFwdSlash {
		return nil
	}

	components := make([]string, 0, strings.Count(path, consts.StrFwdSlash)+1)

	for len(path) > 0 {
		end := strings.IndexByte(path, consts.RuneFwdSlash)
		if end == -1 {
			end = len(path)
		}

		if end > 0 {
			components = append(components, path[:end])
		}

		if end == len(path) {
			break
		}
		path = path[end+1:]
	}

	return components
}

// Compile parses a route pattern such as `/users/:id/orders` into its segments.
// No percent-decoding is done here; request paths are decoded before matching.
func Compile(pattern string) ([]PathSegment, error) {
	components := SplitPath(pattern)
	segments := make([]PathSegment, 0, len(components))

	var seen map[string]struct{}

	for _, comp := range components {
		if comp[0] != consts.RuneColon {
			segments = append(segments, PathSegment{Kind: LiteralSegment, Value: comp})
			continue
		}

		name := comp[1:]
		if name == "" {
			return nil, &MalformedRouteError{Pattern: pattern, Reason: "parameter name is empty"}
		}

		if seen == nil {
			seen = make(map[string]struct{}, 2)
		}
		if _, dup := seen[name]; dup {
			return nil, &MalformedRouteError{Pattern: pattern, Reason: fmt.Sprintf("parameter %q appears more than once", name)}
		}
		seen[name] = struct{}{}

		segments = append(segments, PathSegment{Kind: ParamSegment, Value: name})
	}

	return segments, nil
}

// Pattern renders segments back into canonical pattern form: a leading
// slash, no trailing slash.
func Pattern(segments []PathSegment) string {
	if len(segments) == 0 {
		return consts.StrFwdSlash
	}

	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteByte(consts.RuneFwdSlash)
		sb.WriteString(seg.String())
	}
	return sb.String()
}
