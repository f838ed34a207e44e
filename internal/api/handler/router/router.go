package router

import (
	"net/http"
	"slices"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

type Middleware func(http.Handler) http.Handler

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []Middleware // aplicados só nesta rota, na ordem da lista
}

// Use anexa middlewares a um grupo de rotas; nil é ignorado
func Use(routes []Route, middlewares ...Middleware) []Route {
	extra := make([]Middleware, 0, len(middlewares))
	for _, middleware := range middlewares {
		if middleware != nil {
			extra = append(extra, middleware)
		}
	}

	grouped := make([]Route, 0, len(routes))
	for _, route := range routes {
		route.Middlewares = append(slices.Clip(route.Middlewares), extra...)
		grouped = append(grouped, route)
	}
	return grouped
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	// Rotas e métodos desconhecidos respondem no mesmo formato de erro da API
	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada", r.URL.Path)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", r.Method)
	})

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas; o primeiro middleware da rota é o mais externo
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
