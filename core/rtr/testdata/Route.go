package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Route is one "METHOD /pattern" line of a route fixture.
type Route struct {
	Method string
	Path   string
}

// Routes parses a route fixture. Blank lines and # comments are skipped.
// A missing or unreadable fixture panics since every caller is a test.
func Routes(fileName string) []Route {
	file, err := os.Open(fileName)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	var routes []Route
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		method, path, ok := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		if !ok || strings.HasPrefix(method, "#") {
			continue
		}
		routes = append(routes, Route{Method: method, Path: strings.TrimSpace(path)})
	}

	if err := scanner.Err(); err != nil {
		panic(err)
	}
	return routes
}
