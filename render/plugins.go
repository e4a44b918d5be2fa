// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"time"
)

// Plugin pre-processes a value before it reaches spew. Plugins run in
// registration order; a plugin that does not recognise the value must
// return it unchanged.
type Plugin interface {
	Name() string
	Transform(v any) any
}

// Register appends a plugin to the pipeline. Plugin names are unique;
// registering an already-known name is a no-op.
func Register(p Plugin) {
	mu.Lock()
	defer mu.Unlock()
	for _, existing := range plugins {
		if existing.Name() == p.Name() {
			return
		}
	}
	plugins = append(plugins, p)
}

// Plugins returns the names of the registered plugins, in order.
func Plugins() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(plugins))
	for _, p := range plugins {
		names = append(names, p.Name())
	}
	return names
}

// Builtin returns the fixed plugin list registered at bootstrap.
func Builtin() []Plugin {
	return []Plugin{timePlugin{}, errorChainPlugin{}}
}

// timePlugin renders time.Time values as RFC3339 strings instead of the
// struct internals spew would otherwise show.
type timePlugin struct{}

func (timePlugin) Name() string { return "time" }

func (timePlugin) Transform(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return v
		}
		return t.Format(time.RFC3339Nano)
	}
	return v
}

// errorChainPlugin expands wrapped errors into the list of messages along
// the Unwrap chain.
type errorChainPlugin struct{}

func (errorChainPlugin) Name() string { return "errorchain" }

func (errorChainPlugin) Transform(v any) any {
	err, ok := v.(error)
	if !ok || err == nil {
		return v
	}
	var chain []string
	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}
	if len(chain) == 1 {
		return chain[0]
	}
	return chain
}
