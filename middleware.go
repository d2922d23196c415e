package rroute

import (
	"time"

	"github.com/charmbracelet/log"
)

// Middleware wraps an endpoint's Perform with additional behavior.
type Middleware func(next PerformFunc) PerformFunc

// chain wraps perform so the first middleware runs outermost.
func chain(perform PerformFunc, middleware []Middleware) PerformFunc {
	for i := len(middleware) - 1; i >= 0; i-- {
		perform = middleware[i](perform)
	}
	return perform
}

// RequestInfo is a middleware logging basic stats for every performed request.
func RequestInfo(logger *log.Logger) Middleware {
	return func(next PerformFunc) PerformFunc {
		return func(req *Request) (Result, error) {
			start := time.Now()
			res, err := next(req)

			if err != nil {
				logger.Debug("endpoint failed", "method", req.Method, "route", req.Route,
					"err", err, "elapsed", time.Since(start))
				return res, err
			}

			logger.Debug("endpoint performed", "method", req.Method, "route", req.Route,
				"status", res.Status, "elapsed", time.Since(start))
			return res, nil
		}
	}
}
