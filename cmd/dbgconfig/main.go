// SPDX-License-Identifier: MIT

// dbgconfig inspects and validates dbg configuration files.
//
// Usage:
//
//	dbgconfig              print the effective configuration as YAML
//	dbgconfig -check f     validate a config file
//	dbgconfig -save f      write the effective configuration to a file
//
// Exit codes:
//   - 0: success
//   - 1: configuration is invalid or could not be written
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/graphicfox/dbg"
	"github.com/graphicfox/dbg/internal/configfile"
)

var Version = "dev"

func main() {
	var checkPath string
	var savePath string
	var showVersion bool

	flag.StringVar(&checkPath, "check", "", "path to a config file to validate")
	flag.StringVar(&savePath, "save", "", "write the effective configuration to this path")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(Version)
		os.Exit(0)
	}

	if checkPath != "" {
		if err := check(checkPath); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration error in %s:\n", checkPath)
			fmt.Fprintf(os.Stderr, "  %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ %s is valid\n", checkPath)
		return
	}

	dbg.Init()

	if savePath != "" {
		if err := dbg.SaveConfig(savePath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ wrote %s\n", savePath)
		return
	}

	if err := printEffective(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// check applies every key of the file through the config store, so the
// validation matches exactly what Init would accept.
func check(path string) error {
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
		if err := dbg.Set(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}

func printEffective() error {
	values := dbg.All()
	for _, key := range []string{dbg.OptPreHooks, dbg.OptPostHooks} {
		if hooks, ok := values[key].([]dbg.Hook); ok {
			values[key] = len(hooks)
		}
	}
	data, err := yaml.Marshal(values)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
