// SPDX-License-Identifier: MIT

package dbg

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	xlog "github.com/graphicfox/dbg/internal/log"
	"github.com/graphicfox/dbg/render"
)

// RequestBinding carries the per-request dump context established by the
// HTTP middleware: the request identifier, the referrer, the negotiated
// renderer mode and the writer dumps go to (normally the response writer).
type RequestBinding struct {
	ID      string
	Referer string
	Mode    render.Mode
	Output  io.Writer
}

type bindingKey struct{}

type binding struct {
	id      string
	referer string
	mode    render.Mode
	out     io.Writer
}

// BindRequest attaches a request binding to ctx. Dumps made with the
// returned context use the binding's renderer and writer, and Enabled
// treats the context as a web request rather than CLI execution.
func BindRequest(ctx context.Context, b RequestBinding) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, bindingKey{}, binding{
		id:      b.ID,
		referer: b.Referer,
		mode:    b.Mode,
		out:     b.Output,
	})
}

func boundRequest(ctx context.Context) (binding, bool) {
	if ctx == nil {
		return binding{}, false
	}
	b, ok := ctx.Value(bindingKey{}).(binding)
	return b, ok
}

var (
	processIDOnce sync.Once
	processID     string
)

// RequestID returns the identifier for the current execution. Inside a
// request it is the bound identifier (inbound header value or a generated
// token, cached for the life of the request). Outside a request a
// process-wide token is generated once, so repeated calls agree.
func RequestID(ctx context.Context) string {
	if b, ok := boundRequest(ctx); ok && b.id != "" {
		return b.id
	}
	if rid := xlog.RequestIDFromContext(ctx); rid != "" {
		return rid
	}
	processIDOnce.Do(func() {
		processID = uuid.NewString()
	})
	return processID
}
