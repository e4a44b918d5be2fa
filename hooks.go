// SPDX-License-Identifier: MIT

package dbg

import "github.com/graphicfox/dbg/internal/metrics"

// Phase identifies when a hook runs relative to the dump function.
type Phase string

const (
	// PhasePre runs before the dump is rendered.
	PhasePre Phase = "pre"
	// PhasePost runs after the dump has been rendered.
	PhasePost Phase = "post"
)

// Hook is a callback invoked around every dump. It receives the phase, the
// name of the facade function that triggered it ("Dump", "Fdump", "Sdump")
// and the values passed to that function.
type Hook func(phase Phase, fn string, args []any)

// RunHooks invokes every hook registered for the phase, in registration
// order, with exactly the three given values. Nil entries are skipped.
// Return values are not aggregated and panics are not contained: a
// panicking hook propagates to the dump caller.
func RunHooks(phase Phase, fn string, args []any) {
	key := OptPreHooks
	if phase == PhasePost {
		key = OptPostHooks
	}
	called := 0
	for _, h := range store.getHooks(key) {
		if h == nil {
			continue
		}
		h(phase, fn, args)
		called++
	}
	metrics.AddHookCalls(string(phase), called)
}
