// SPDX-License-Identifier: MIT

package dbg

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/graphicfox/dbg/internal/configfile"
	xlog "github.com/graphicfox/dbg/internal/log"
	"github.com/graphicfox/dbg/render"
)

var initOnce sync.Once

// Init performs the one-time bootstrap: it mirrors the option defaults
// into the render pipeline, registers the fixed plugin list and applies a
// project-local dbg.config.yaml when one exists. Init is idempotent and
// is also called lazily by the dump facade, so calling it explicitly is
// only needed to control when the config file is read.
func Init() {
	initOnce.Do(func() {
		logger := xlog.WithComponent("bootstrap")

		render.SetMaxDepth(store.getInt(OptMaxDepth))
		for _, p := range render.Builtin() {
			render.Register(p)
		}

		path, ok := configfile.Locate()
		if !ok {
			return
		}
		if err := applyConfigFile(path); err != nil {
			logger.Warn().
				Err(err).
				Str("path", path).
				Msg("config file rejected")
			return
		}
		logger.Debug().
			Str("path", path).
			Msg("config file applied")
	})
}

// applyConfigFile feeds every key of the file through Set, so unknown keys
// and type mismatches fail exactly like programmatic configuration. Keys
// are applied in sorted order to keep the first error deterministic.
func applyConfigFile(path string) error {
	values, err := configfile.Load(path)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := Set(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

// WatchConfig reloads the config file whenever it changes on disk. It
// returns fs.ErrNotExist when no config file is present, and otherwise
// watches until ctx is cancelled.
func WatchConfig(ctx context.Context) error {
	path, ok := configfile.Locate()
	if !ok {
		return fmt.Errorf("no %s found: %w", configfile.FileName, fs.ErrNotExist)
	}
	logger := xlog.WithComponent("bootstrap")
	return configfile.Watch(ctx, path, func() {
		if err := applyConfigFile(path); err != nil {
			logger.Warn().
				Err(err).
				Str("path", path).
				Msg("config file reload rejected")
		}
	})
}

// SaveConfig writes the current option values (hooks excluded, they are
// not serialisable) to the given path as YAML.
func SaveConfig(path string) error {
	values := All()
	delete(values, OptPreHooks)
	delete(values, OptPostHooks)
	return configfile.Save(path, values)
}
