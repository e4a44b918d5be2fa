// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"html"
	"io"
	"strconv"
)

// richRenderer emits a self-contained HTML fragment. The location becomes a
// clickable editor link when a link format is configured.
type richRenderer struct{}

func (richRenderer) Mode() Mode { return ModeRich }

func (richRenderer) Render(w io.Writer, loc Location, values ...any) error {
	caption := html.EscapeString(loc.File) + ":" + strconv.Itoa(loc.Line)
	var header string
	if loc.Link != "" {
		header = fmt.Sprintf(`<a class="dbg-loc" href="%s">%s</a>`, html.EscapeString(loc.Link), caption)
	} else {
		header = fmt.Sprintf(`<span class="dbg-loc">%s</span>`, caption)
	}

	if _, err := fmt.Fprintf(w, "<div class=\"dbg-dump\">\n%s\n", header); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(w, "<pre>%s</pre>\n", html.EscapeString(dump(v))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}
