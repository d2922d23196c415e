package rroute

// Header is used to store HTTP headers.
type Header struct {
	Key   string
	Value string
}

// FlattenHeaders collapses header pairs into a map keyed by the exact header name.
// Keys are case-sensitive and when a name repeats the last occurrence wins;
// multi-value headers are not preserved.
func FlattenHeaders(headers []Header) map[string]string {
	flat := make(map[string]string, len(headers))
	for _, header := range headers {
		flat[header.Key] = header.Value
	}
	return flat
}

// setHeader replaces the value of an existing header or appends a new one.
func setHeader(headers []Header, key string, value string) []Header {
	for i, header := range headers {
		if header.Key == key {
			headers[i].Value = value
			return headers
		}
	}

	return append(headers, Header{Key: key, Value: value})
}

// findHeader returns the value for key, or an empty string.
func findHeader(headers []Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return header.Value
		}
	}

	return ""
}
