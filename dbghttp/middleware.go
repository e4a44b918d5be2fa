// SPDX-License-Identifier: MIT

// Package dbghttp binds the dbg facade into an HTTP request lifecycle:
// request-ID extraction, renderer negotiation from headers, and a small
// diagnostics router.
package dbghttp

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/graphicfox/dbg"
	xlog "github.com/graphicfox/dbg/internal/log"
	"github.com/graphicfox/dbg/render"
)

// Middleware establishes the per-request dump context. It reads the
// configured request-ID header, generating a fresh token when absent,
// echoes it on the response, negotiates the renderer from the request
// headers and binds everything into the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := requestIDHeader()
		id := r.Header.Get(header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(header, id)

		ctx := dbg.BindRequest(r.Context(), dbg.RequestBinding{
			ID:      id,
			Referer: r.Referer(),
			Mode:    render.Negotiate(r.Header),
			Output:  w,
		})
		ctx = xlog.ContextWithRequestID(ctx, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDHeader() string {
	v, err := dbg.Get(dbg.OptRequestIDHeader)
	if err != nil {
		return "X-Request-ID"
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "X-Request-ID"
	}
	return s
}
