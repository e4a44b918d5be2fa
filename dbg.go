// SPDX-License-Identifier: MIT

// Package dbg is a configuration shim around the go-spew dumping library
// for request-scoped debugging in web applications. It decides per call
// whether debug output is shown, which renderer frames it (rich HTML,
// plain text or CLI), and how file locations become clickable editor
// links. Value introspection itself is delegated entirely to spew.
package dbg

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/graphicfox/dbg/editor"
	xlog "github.com/graphicfox/dbg/internal/log"
	"github.com/graphicfox/dbg/internal/metrics"
	"github.com/graphicfox/dbg/render"
)

// Dump renders the values to the writer bound to ctx (the HTTP response
// inside a request, stdout otherwise). It is a no-op when Enabled(ctx)
// is false.
func Dump(ctx context.Context, values ...any) {
	if err := emit(ctx, "Dump", output(ctx), values); err != nil {
		logger := xlog.WithContext(ctx, xlog.WithComponent("dump"))
		logger.Warn().Err(err).Msg("dump failed")
	}
}

// Fdump renders the values to w using the renderer bound to ctx.
func Fdump(ctx context.Context, w io.Writer, values ...any) error {
	return emit(ctx, "Fdump", w, values)
}

// Sdump renders the values to a string. It returns "" when output is
// disabled for ctx.
func Sdump(ctx context.Context, values ...any) string {
	var buf bytes.Buffer
	if err := emit(ctx, "Sdump", &buf, values); err != nil {
		return ""
	}
	return buf.String()
}

// emit is the single dump path: enablement gate, call-site resolution,
// pre hooks, rendering, post hooks. All three facade functions call it
// directly so the stack depth to the user's frame is identical.
func emit(ctx context.Context, fn string, w io.Writer, values []any) error {
	Init()

	if !render.Enabled() || !Enabled(ctx) {
		metrics.IncSuppressed()
		return nil
	}

	file, line := callSite()
	loc := render.Location{File: file, Line: line}
	if format := render.LinkFormat(); format != "" && file != "" {
		loc.Link = editor.Link(format, file, line)
	}

	RunHooks(PhasePre, fn, values)

	mode := render.ModeCLI
	if b, ok := boundRequest(ctx); ok {
		mode = b.mode
	}
	if err := render.For(mode).Render(w, loc, values...); err != nil {
		return err
	}
	metrics.IncDump(mode.String())

	RunHooks(PhasePost, fn, values)
	return nil
}

// output picks the writer for Dump: the bound response writer inside a
// request, stdout otherwise.
func output(ctx context.Context) io.Writer {
	if b, ok := boundRequest(ctx); ok && b.out != nil {
		return b.out
	}
	return os.Stdout
}
