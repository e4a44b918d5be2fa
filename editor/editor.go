// SPDX-License-Identifier: MIT

// Package editor maps editor names to URI templates that open a source
// file at a given line, and builds concrete links from those templates.
package editor

import (
	"strconv"
	"strings"
)

// Templates use %f for the absolute file path and %l for the line number.
var formats = map[string]string{
	"sublime":  "subl://open?url=file://%f&line=%l",
	"textmate": "txmt://open?url=file://%f&line=%l",
	"emacs":    "emacs://open?url=file://%f&line=%l",
	"macvim":   "mvim://open/?url=file://%f&line=%l",
	"phpstorm": "phpstorm://open?file=%f&line=%l",
	"idea":     "idea://open?file=%f&line=%l",
	"vscode":   "vscode://file/%f:%l",
	"atom":     "atom://core/open/file?filename=%f&line=%l",
	"espresso": "x-espresso://open?filepath=%f&lines=%l",
	"netbeans": "netbeans://open/?f=%f:%l",
}

// Known reports whether name is a recognised editor alias.
func Known(name string) bool {
	_, ok := formats[strings.ToLower(name)]
	return ok
}

// Resolve turns an editor alias into its URI template. Unrecognised
// non-empty values are returned verbatim so callers can supply a custom
// template directly; the empty string stays empty (no link format).
func Resolve(name string) string {
	if name == "" {
		return ""
	}
	if tmpl, ok := formats[strings.ToLower(name)]; ok {
		return tmpl
	}
	return name
}

// Link substitutes file and line into a resolved URI template. With an
// empty template it falls back to the conventional "file:line" form.
func Link(format, file string, line int) string {
	if format == "" {
		return file + ":" + strconv.Itoa(line)
	}
	out := strings.ReplaceAll(format, "%f", file)
	out = strings.ReplaceAll(out, "%l", strconv.Itoa(line))
	return out
}

// Names returns the recognised aliases, for diagnostics and docs.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	return names
}
