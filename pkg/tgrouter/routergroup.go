package tgrouter

import (
	"maison/pkg/logger"
)

const maxMiddlewares = 32

type route struct {
	filter  Filter
	handler Handler
}

// RouterGroup shares middlewares between routes. Routes registered on any
// group end up on the root in registration order.
type RouterGroup struct {
	parent      *RouterGroup
	routes      []route
	middlewares []Middleware
	logger      logger.Logger
}

// Group returns a child group that inherits the current middlewares.
func (group *RouterGroup) Group() *RouterGroup {
	return &RouterGroup{
		parent:      group,
		middlewares: append([]Middleware(nil), group.middlewares...),
		logger:      group.logger,
	}
}

func (group *RouterGroup) Use(middleware ...Middleware) {
	if len(group.middlewares)+len(middleware) > maxMiddlewares {
		panic("tgrouter: too many middlewares")
	}
	group.middlewares = append(group.middlewares, middleware...)
}

// On registers handler for updates matching filter. Routes are tried in
// registration order; the first match wins. Group middlewares run before
// the route ones, each in the order given.
func On(group *RouterGroup, filter Filter, handler Handler, mws ...Middleware) {
	chain := append(append([]Middleware(nil), group.middlewares...), mws...)
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	group.root().routes = append(group.root().routes, route{filter: filter, handler: handler})
}

func (group *RouterGroup) root() *RouterGroup {
	for group.parent != nil {
		group = group.parent
	}
	return group
}
