package modkit

import (
	"net/http"

	"sentilex/internal/modkit/httpkit"
	str "sentilex/internal/platform/strings"
)

// Built is the resolved option set a module constructor works from
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts in order. Mw is copied so later edits to the caller's slice do not leak in
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}

// Base returns the routing half of a module: register runs on a router scoped
// to Prefix with extra middleware applied ahead of Mw
func (b Built) Base(register func(httpkit.Router), extra ...func(http.Handler) http.Handler) Base {
	mws := append(append([]func(http.Handler) http.Handler(nil), extra...), b.Mw...)
	return Base{name: b.Name, prefix: b.Prefix, mws: mws, register: register}
}

// Base implements Name, Prefix, Middlewares and MountRoutes. Modules embed it and add Ports
type Base struct {
	name     string
	prefix   string
	mws      []func(http.Handler) http.Handler
	register func(httpkit.Router)
}

// Name returns the module name, panicking when the module was built without one
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the normalized route prefix, "" at the API root
func (b Base) Prefix() string { return str.Prefix(b.prefix) }

// Middlewares returns the module middleware in the order it runs
func (b Base) Middlewares() []func(http.Handler) http.Handler { return b.mws }

// MountRoutes mounts the module. Modules without routes mount nothing
func (b Base) MountRoutes(r httpkit.Router) {
	if b.register == nil {
		return
	}
	httpkit.MountUnder(r, b.Prefix(), b.mws, b.register)
}
