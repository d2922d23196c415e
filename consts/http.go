package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

// Methods lists every method a route can be registered for, in display order.
var Methods = []string{
	MethodGet, MethodHead, MethodPost, MethodPut,
	MethodPatch, MethodDelete, MethodOptions, MethodConnect, MethodTrace,
}

// IsMethod reports whether method is one of the recognized HTTP method tokens.
// Matching is case-sensitive, as method tokens are on the wire.
func IsMethod(method string) bool {
	switch method {
	case MethodGet, MethodHead, MethodPost, MethodPut,
		MethodDelete, MethodConnect, MethodOptions, MethodTrace, MethodPatch:
		return true
	default:
		return false
	}
}

const (
	HTTP  = "http"
	HTTPS = "https"

	ProtocolTCP = "tcp"

	SchemeDelimiter = "://"
	Localhost       = "localhost"
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderRequestID     = "X-Request-Id"
	HeaderRetryAfter    = "Retry-After"
)

const (
	RuneColon    = ':'
	RuneFwdSlash = '/'
	RuneQuestion = '?'
	StrFwdSlash  = "/"
	StrColon     = ":"
)
