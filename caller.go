// SPDX-License-Identifier: MIT

package dbg

import (
	"runtime"
	"strings"
)

const modulePath = "github.com/graphicfox/dbg"

// callSite locates the first stack frame outside this module and outside
// any function whose base name matches a configured alias, so that
// project-local wrappers around the dump facade report their caller's
// location rather than their own.
func callSite() (string, int) {
	aliases := store.getStrings(OptAliases)

	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File == "" {
			break
		}
		if ownFrame(frame.Function) || isAlias(frame.Function, aliases) {
			if !more {
				break
			}
			continue
		}
		return frame.File, frame.Line
	}
	return "", 0
}

// ownFrame reports whether the function belongs to this module's facade
// packages. Matching on the module path keeps the lookup correct even
// when the runtime inlines intermediate frames.
func ownFrame(fn string) bool {
	return strings.HasPrefix(fn, modulePath+".") ||
		strings.HasPrefix(fn, modulePath+"/")
}

// isAlias matches the function's base name (after the last dot) against
// the configured wrapper names.
func isAlias(fn string, aliases []string) bool {
	if len(aliases) == 0 || fn == "" {
		return false
	}
	base := fn
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		base = fn[i+1:]
	}
	for _, a := range aliases {
		if strings.EqualFold(base, a) {
			return true
		}
	}
	return false
}
