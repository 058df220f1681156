// Package httpkit is what modules import to register routes: the router
// seam, envelope adapters, the /api stack and the bearer guard
package httpkit

import (
	"net/http"

	phttp "gadash/internal/platform/net/http"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

// NoContent answers 204 with no envelope
func NoContent() Response { return phttp.NoContent() }

// Get mounts a handler that takes no input; its result is enveloped
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// GetQuery mounts a handler whose query string binds and validates into T
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.GetQuery(r, path, h)
}

// Post mounts a handler that ignores the body
func Post(r Router, path string, h func(*http.Request) (any, error)) { phttp.PostEmpty(r, path, h) }

// PostJSON mounts a handler whose JSON body binds and validates into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}
