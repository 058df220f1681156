package httpkit

import "gadash/internal/platform/net/middleware"

// Protected groups routes under bearer auth
// a nil port leaves the routes open, which is how ALLOW_ANONYMOUS mode runs
func Protected(r Router, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		if p != nil {
			gr.Use(Auth(p))
		}
		fn(gr)
	})
}
