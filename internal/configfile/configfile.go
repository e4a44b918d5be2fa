// SPDX-License-Identifier: MIT

// Package configfile locates, loads and saves the optional project-local
// configuration file dbg.config.yaml.
package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the fixed name of the project-local configuration file.
const FileName = "dbg.config.yaml"

// SearchDirs returns the directories probed for the config file, in
// precedence order. Unset environment variables produce no entry.
func SearchDirs() []string {
	var dirs []string
	if d := os.Getenv("DBG_CONFIG_DIR"); d != "" {
		dirs = append(dirs, d)
	}
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		dirs = append(dirs, filepath.Join(d, "dbg"))
	}
	if d := os.Getenv("HOME"); d != "" {
		dirs = append(dirs, filepath.Join(d, ".config", "dbg"))
	}
	return append(dirs, ".")
}

// Locate returns the path of the first config file found in SearchDirs.
func Locate() (string, bool) {
	for _, dir := range SearchDirs() {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Load parses the file into a flat key-value map. Key validation happens
// in the config store, not here.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	values := map[string]any{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return values, nil
}

// Save writes the map as YAML, atomically replacing any existing file.
func Save(path string, values map[string]any) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()
	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}
