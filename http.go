package rroute

import (
	"strings"

	"github.com/rohanthewiz/rroute/consts"
)

// splitTarget splits a request target into its raw path and raw query.
// The target may be "path?query" or an absolute "scheme://host/path?query".
// Though we could have used the standard URL package we wanted to keep the
// path exactly as sent, still percent-encoded.
func splitTarget(target string) (path string, query string) {
	if schemeEndPos := strings.Index(target, consts.SchemeDelimiter); schemeEndPos != -1 && target[0] != consts.RuneFwdSlash {
		target = target[schemeEndPos+len(consts.SchemeDelimiter):]

		// Drop the authority; whatever follows it is the path and query.
		switch pos := strings.IndexAny(target, "/?#"); {
		case pos == -1:
			target = consts.StrFwdSlash
		case target[pos] != consts.RuneFwdSlash:
			target = consts.StrFwdSlash + target[pos:]
		default:
			target = target[pos:]
		}
	}

	if fragPos := strings.IndexByte(target, '#'); fragPos != -1 {
		target = target[:fragPos]
	}

	if queryPos := strings.IndexByte(target, consts.RuneQuestion); queryPos != -1 {
		path = target[:queryPos]
		query = target[queryPos+1:]
	} else {
		path = target
	}

	if path == "" {
		path = consts.StrFwdSlash
	}
	return
}
