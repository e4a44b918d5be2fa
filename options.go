// SPDX-License-Identifier: MIT

package dbg

import (
	"fmt"
	"sync"

	"github.com/graphicfox/dbg/editor"
	"github.com/graphicfox/dbg/render"
)

// Option names accepted by Set and Get.
const (
	// OptEnabled is the master switch; false suppresses all output.
	OptEnabled = "enabled"
	// OptDetectEnvironment opts into the environment heuristic; when false
	// the enablement predicate is unconditionally true.
	OptDetectEnvironment = "detectEnvironment"
	// OptEnvironmentVar names the environment variable the predicate consults.
	OptEnvironmentVar = "environmentVar"
	// OptDevEnvironments lists values of that variable treated as development.
	OptDevEnvironments = "devEnvironments"
	// OptAllowedReferrers lists referrer hosts that force-enable output.
	OptAllowedReferrers = "allowedReferrers"
	// OptRequestIDHeader names the inbound header carrying the request ID.
	OptRequestIDHeader = "requestIDHeader"
	// OptEditorFileFormat is an editor alias or raw URI template for source links.
	OptEditorFileFormat = "editorFileFormat"
	// OptMaxDepth bounds how deep value introspection descends.
	OptMaxDepth = "maxDepth"
	// OptAliases lists wrapper function names skipped during call-site lookup.
	OptAliases = "aliases"
	// OptPreHooks and OptPostHooks hold the hook lists.
	OptPreHooks  = "preHooks"
	OptPostHooks = "postHooks"
)

// options is the process-wide configuration store: a flat map with fixed
// defaults, mutated only through Set. Values are never removed.
type options struct {
	mu     sync.RWMutex
	values map[string]any
}

func defaults() map[string]any {
	return map[string]any{
		OptEnabled:           true,
		OptDetectEnvironment: true,
		OptEnvironmentVar:    "APP_ENV",
		OptDevEnvironments:   []string{"dev", "development", "local", "test"},
		OptAllowedReferrers:  []string{},
		OptRequestIDHeader:   "X-Request-ID",
		OptEditorFileFormat:  "",
		OptMaxDepth:          7,
		OptAliases:           []string{},
		OptPreHooks:          []Hook{},
		OptPostHooks:         []Hook{},
	}
}

var store = &options{values: defaults()}

// Set validates and stores a single option. Unknown keys and values that
// fail the option's type check return an error wrapping ErrInvalidArgument.
func Set(key string, value any) error {
	switch key {
	case OptEnabled, OptDetectEnvironment:
		b, ok := value.(bool)
		if !ok {
			return typeError(key, "bool", value)
		}
		store.put(key, b)
		if key == OptEnabled {
			render.SetEnabled(b)
		}

	case OptEnvironmentVar, OptRequestIDHeader:
		s, ok := value.(string)
		if !ok {
			return typeError(key, "string", value)
		}
		store.put(key, s)

	case OptEditorFileFormat:
		s, ok := value.(string)
		if !ok {
			return typeError(key, "string", value)
		}
		resolved := editor.Resolve(s)
		store.put(key, resolved)
		render.SetLinkFormat(resolved)

	case OptMaxDepth:
		d, ok := toInt(value)
		if !ok || d < 0 {
			return typeError(key, "non-negative int", value)
		}
		store.put(key, d)
		render.SetMaxDepth(d)

	case OptDevEnvironments, OptAllowedReferrers, OptAliases:
		ss, ok := toStringSlice(value)
		if !ok {
			return typeError(key, "[]string", value)
		}
		store.put(key, ss)

	case OptPreHooks, OptPostHooks:
		return setHooks(key, value)

	default:
		return fmt.Errorf("%w: unknown option %q", ErrInvalidArgument, key)
	}
	return nil
}

// setHooks accepts a single hook (appended) or a whole slice (replacing the
// list). Anything else fails the type check.
func setHooks(key string, value any) error {
	switch v := value.(type) {
	case Hook:
		store.appendHook(key, v)
	case func(Phase, string, []any):
		store.appendHook(key, Hook(v))
	case []Hook:
		store.put(key, append([]Hook(nil), v...))
	default:
		return typeError(key, "Hook or []Hook", value)
	}
	return nil
}

// Get returns a single option value. Unknown keys return an error wrapping
// ErrInvalidArgument.
func Get(key string) (any, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()
	v, ok := store.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown option %q", ErrInvalidArgument, key)
	}
	return copyValue(v), nil
}

// All returns a copy of the whole configuration map.
func All() map[string]any {
	store.mu.RLock()
	defer store.mu.RUnlock()
	out := make(map[string]any, len(store.values))
	for k, v := range store.values {
		out[k] = copyValue(v)
	}
	return out
}

// Reset restores every option to its default and clears the mirrored
// settings on the render pipeline. Intended for tests.
func Reset() {
	store.mu.Lock()
	store.values = defaults()
	store.mu.Unlock()
	render.SetEnabled(true)
	render.SetLinkFormat("")
	render.SetMaxDepth(7)
}

func (o *options) put(key string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.values[key] = value
}

func (o *options) appendHook(key string, h Hook) {
	o.mu.Lock()
	defer o.mu.Unlock()
	hooks, _ := o.values[key].([]Hook)
	o.values[key] = append(hooks, h)
}

func (o *options) getBool(key string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	b, _ := o.values[key].(bool)
	return b
}

func (o *options) getString(key string) string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	s, _ := o.values[key].(string)
	return s
}

func (o *options) getInt(key string) int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	i, _ := o.values[key].(int)
	return i
}

func (o *options) getStrings(key string) []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	ss, _ := o.values[key].([]string)
	return append([]string(nil), ss...)
}

func (o *options) getHooks(key string) []Hook {
	o.mu.RLock()
	defer o.mu.RUnlock()
	hooks, _ := o.values[key].([]Hook)
	return append([]Hook(nil), hooks...)
}

func typeError(key, want string, got any) error {
	return fmt.Errorf("%w: option %q expects %s, got %T", ErrInvalidArgument, key, want, got)
}

// toInt widens the numeric types a YAML config file may produce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// toStringSlice accepts []string directly and []any from YAML decoding.
func toStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return append([]string(nil), s...), true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

// copyValue shields stored slices from caller mutation.
func copyValue(v any) any {
	switch s := v.(type) {
	case []string:
		return append([]string(nil), s...)
	case []Hook:
		return append([]Hook(nil), s...)
	}
	return v
}
