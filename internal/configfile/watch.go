// SPDX-License-Identifier: MIT

package configfile

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"

	xlog "github.com/graphicfox/dbg/internal/log"
)

// Watch observes the config file and calls onChange after every write or
// create event. It returns once the watcher is installed; the watch loop
// runs until ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch config file: %w", err)
	}

	logger := xlog.WithComponent("configfile")
	logger.Debug().
		Str("path", path).
		Msg("watching config file for changes")

	go watchLoop(ctx, watcher, path, onChange)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, onChange func()) {
	defer func() {
		_ = watcher.Close()
	}()
	logger := xlog.WithComponent("configfile")
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug().
				Str("path", path).
				Str("op", event.Op.String()).
				Msg("config file changed, reloading")
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("config file watcher error")
		}
	}
}
