// SPDX-License-Identifier: MIT

// Package render selects and drives the output strategy for debug dumps.
// Value introspection is owned by go-spew; this package only decides how a
// dump is framed (rich HTML, plain text, or ANSI-styled CLI output) and
// which source link accompanies it.
package render

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

// Mode identifies an output-formatting strategy.
type Mode int

const (
	// ModeCLI writes ANSI-styled text for terminal sessions.
	ModeCLI Mode = iota
	// ModeText writes plain text, used for AJAX and non-HTML clients.
	ModeText
	// ModeRich writes an HTML fragment with a clickable source link.
	ModeRich
)

func (m Mode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeRich:
		return "rich"
	default:
		return "cli"
	}
}

// Location describes the call site a dump originated from.
type Location struct {
	File string
	Line int
	Link string // resolved editor link, empty when no format is configured
}

// Renderer writes one dump (one or more values from a single call) to w.
type Renderer interface {
	Mode() Mode
	Render(w io.Writer, loc Location, values ...any) error
}

// Pipeline state mirrors the wrapped library's global settings: the enabled
// flag, depth limit and link format are mutated through the config store.
var (
	mu         sync.RWMutex
	enabled    = true
	linkFormat string
	plugins    []Plugin

	conf = spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true,
		MaxDepth:                7,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
)

// SetEnabled toggles the pipeline's master flag.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// Enabled reports the pipeline's master flag.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetMaxDepth limits how deep spew descends into nested values.
func SetMaxDepth(depth int) {
	mu.Lock()
	defer mu.Unlock()
	conf.MaxDepth = depth
}

// SetLinkFormat installs the resolved editor URI template used by renderers.
func SetLinkFormat(format string) {
	mu.Lock()
	defer mu.Unlock()
	linkFormat = format
}

// LinkFormat returns the currently installed editor URI template.
func LinkFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	return linkFormat
}

// dump runs a value through the registered plugins and spew.
func dump(v any) string {
	mu.RLock()
	ps := plugins
	c := conf
	mu.RUnlock()
	for _, p := range ps {
		v = p.Transform(v)
	}
	return c.Sdump(v)
}

// For returns the renderer implementing the given mode.
func For(m Mode) Renderer {
	switch m {
	case ModeRich:
		return richRenderer{}
	case ModeText:
		return textRenderer{}
	default:
		return cliRenderer{}
	}
}

// Negotiate chooses a renderer mode from request headers. AJAX requests and
// clients that do not accept HTML get plain text, everything else rich HTML.
func Negotiate(h http.Header) Mode {
	if strings.EqualFold(h.Get("X-Requested-With"), "XMLHttpRequest") {
		return ModeText
	}
	if accept := h.Get("Accept"); accept != "" &&
		!strings.Contains(accept, "text/html") && !strings.Contains(accept, "*/*") {
		return ModeText
	}
	return ModeRich
}
