package httpkit

import "net/http"

// APIPrefix is where every dashboard module mounts
const APIPrefix = "/api"

// MountAPI scopes mw to /api and lets mount register routes inside it
// probes, /metrics and the docs stay outside this scope
//
//	httpkit.MountAPI(r, httpkit.CommonStack(opts), func(api httpkit.Router) {
//		meta.MountRoutes(api)
//	})
func MountAPI(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIPrefix, func(api Router) {
		api.Use(mw...)
		mount(api)
	})
}
