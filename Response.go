package rroute

// Result is what an endpoint returns on success.
// A zero Status is sent as 200.
type Result struct {
	Status  int
	Headers []Header
	Body    []byte
}

// Response is the interface for a dispatched HTTP response.
type Response interface {
	Body() []byte
	Header(string) string
	Headers() []Header
	Status() int
	// Route returns the pattern of the matched route, or "" when nothing matched.
	Route() string
}

// response represents the HTTP response produced by one dispatch.
type response struct {
	body    []byte
	headers []Header
	status  uint16
	route   string
}

// Body returns the response body.
func (res *response) Body() []byte {
	return res.body
}

// Header returns the header value for the given key.
func (res *response) Header(key string) string {
	return findHeader(res.headers, key)
}

// Headers returns all response headers in the order they were set.
func (res *response) Headers() []Header {
	return res.headers
}

// Status returns the HTTP status code.
func (res *response) Status() int {
	return int(res.status)
}

// Route returns the matched route pattern.
func (res *response) Route() string {
	return res.route
}

// SetHeader sets the header value for the given key.
func (res *response) SetHeader(key string, value string) {
	res.headers = setHeader(res.headers, key, value)
}

// SetStatus sets the HTTP status code.
func (res *response) SetStatus(status int) {
	res.status = uint16(status)
}
