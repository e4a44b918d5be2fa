// SPDX-License-Identifier: MIT

package dbg_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphicfox/dbg"
	"github.com/graphicfox/dbg/render"
)

func TestSdumpReportsCallSite(t *testing.T) {
	t.Cleanup(dbg.Reset)

	out := dbg.Sdump(context.Background(), "payload")
	_, file, line, ok := runtime.Caller(0)
	require.True(t, ok)

	assert.Contains(t, out, fmt.Sprintf("%s:%d", file, line-1))
	assert.Contains(t, out, "payload")
}

func TestSdumpIncludesEditorLink(t *testing.T) {
	t.Cleanup(dbg.Reset)
	require.NoError(t, dbg.Set(dbg.OptEditorFileFormat, "vscode"))

	out := dbg.Sdump(context.Background(), 1)
	assert.Contains(t, out, "vscode://file/")
}

func TestDumpSuppressedWhenDisabled(t *testing.T) {
	t.Cleanup(dbg.Reset)
	require.NoError(t, dbg.Set(dbg.OptEnabled, false))

	var buf bytes.Buffer
	require.NoError(t, dbg.Fdump(context.Background(), &buf, "hidden"))
	assert.Empty(t, buf.String())

	assert.Empty(t, dbg.Sdump(context.Background(), "hidden"))
}

func TestFdumpUsesBoundRendererMode(t *testing.T) {
	t.Cleanup(dbg.Reset)

	rich := dbg.BindRequest(context.Background(), dbg.RequestBinding{Mode: render.ModeRich})
	// A web request context is only enabled when detection passes.
	require.NoError(t, dbg.Set(dbg.OptDetectEnvironment, false))

	var buf bytes.Buffer
	require.NoError(t, dbg.Fdump(rich, &buf, "value"))
	assert.Contains(t, buf.String(), `<div class="dbg-dump">`)

	text := dbg.BindRequest(context.Background(), dbg.RequestBinding{Mode: render.ModeText})
	buf.Reset()
	require.NoError(t, dbg.Fdump(text, &buf, "value"))
	assert.NotContains(t, buf.String(), "<div")
}

func TestDumpRunsHooksAroundRender(t *testing.T) {
	t.Cleanup(dbg.Reset)

	var order []string
	require.NoError(t, dbg.Set(dbg.OptPreHooks, dbg.Hook(func(phase dbg.Phase, fn string, args []any) {
		order = append(order, "pre:"+fn)
		assert.Equal(t, []any{"v"}, args)
	})))
	require.NoError(t, dbg.Set(dbg.OptPostHooks, dbg.Hook(func(phase dbg.Phase, fn string, args []any) {
		order = append(order, "post:"+fn)
	})))

	var buf bytes.Buffer
	require.NoError(t, dbg.Fdump(context.Background(), &buf, "v"))
	assert.Equal(t, []string{"pre:Fdump", "post:Fdump"}, order)
}

func TestHooksNotRunWhenSuppressed(t *testing.T) {
	t.Cleanup(dbg.Reset)
	require.NoError(t, dbg.Set(dbg.OptEnabled, false))

	var called bool
	require.NoError(t, dbg.Set(dbg.OptPreHooks, dbg.Hook(func(dbg.Phase, string, []any) { called = true })))

	var buf bytes.Buffer
	require.NoError(t, dbg.Fdump(context.Background(), &buf, "v"))
	assert.False(t, called)
}

// sdumpThrough is a project-style wrapper used by the alias test.
func sdumpThrough(ctx context.Context, values ...any) string {
	return dbg.Sdump(ctx, values...)
}

func TestAliasSkipsWrapperFrame(t *testing.T) {
	t.Cleanup(dbg.Reset)
	require.NoError(t, dbg.Set(dbg.OptAliases, []string{"sdumpThrough"}))

	out := sdumpThrough(context.Background(), "x")
	_, file, line, ok := runtime.Caller(0)
	require.True(t, ok)

	assert.Contains(t, out, fmt.Sprintf("%s:%d", file, line-1),
		"dump should report the wrapper's caller, not the wrapper")
}

// failingWriter simulates a response writer whose client went away.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestDumpLogsWriteFailure(t *testing.T) {
	t.Cleanup(dbg.Reset)
	require.NoError(t, dbg.Set(dbg.OptDetectEnvironment, false))

	ctx := dbg.BindRequest(context.Background(), dbg.RequestBinding{
		Mode:   render.ModeText,
		Output: failingWriter{},
	})

	// The failure is logged, never surfaced to the dump caller.
	assert.NotPanics(t, func() { dbg.Dump(ctx, "v") })
}

func TestRequestIDStableWithinProcess(t *testing.T) {
	ctx := context.Background()

	first := dbg.RequestID(ctx)
	require.NotEmpty(t, first)
	assert.Equal(t, first, dbg.RequestID(ctx))
}

func TestRequestIDPrefersBoundID(t *testing.T) {
	ctx := dbg.BindRequest(context.Background(), dbg.RequestBinding{ID: "bound-42"})
	assert.Equal(t, "bound-42", dbg.RequestID(ctx))
}
