package routerhelper

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers httprouter handles under a shared path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	if prefix == "/" {
		prefix = ""
	}
	return &RouteGroup{router: router, prefix: prefix}
}

func (rg *RouteGroup) Group(path string) *RouteGroup {
	return NewRouteGroup(rg.router, rg.subPath(path))
}

func (rg *RouteGroup) subPath(path string) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	return rg.prefix + path
}

func (rg *RouteGroup) Handle(method, path string, handle httprouter.Handle) {
	rg.router.Handle(method, rg.subPath(path), handle)
}

func (rg *RouteGroup) GET(path string, handle httprouter.Handle) {
	rg.Handle(http.MethodGet, path, handle)
}

func (rg *RouteGroup) POST(path string, handle httprouter.Handle) {
	rg.Handle(http.MethodPost, path, handle)
}
