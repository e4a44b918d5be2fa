// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"
)

// textRenderer emits plain text with no markup, for AJAX responses and
// clients that did not ask for HTML.
type textRenderer struct{}

func (textRenderer) Mode() Mode { return ModeText }

func (textRenderer) Render(w io.Writer, loc Location, values ...any) error {
	caption := loc.File + ":" + strconv.Itoa(loc.Line)
	if loc.Link != "" {
		caption += " (" + loc.Link + ")"
	}
	if _, err := fmt.Fprintln(w, caption); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := io.WriteString(w, dump(v)); err != nil {
			return err
		}
	}
	return nil
}
