package api

import (
	"context"
	"net/http"
)

// Handler is a middleware step running before or after an endpoint handler.
// It may replace ctx.Context to enrich it, or write a response and abort.
type Handler func(ctx *Context)

// Context bundles the request pair with the enriched request context.
type Context struct {
	context.Context

	r       *http.Request
	w       http.ResponseWriter
	aborted bool
}

// Abort stops the endpoint chain after the current step.
func (ctx *Context) Abort() {
	ctx.aborted = true
}

func (ctx *Context) Request() *http.Request {
	return ctx.r
}

func (ctx *Context) Writer() http.ResponseWriter {
	return ctx.w
}
