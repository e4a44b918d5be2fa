// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	cliLocStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	cliLinkStyle = lipgloss.NewStyle().Faint(true).Underline(true)
)

// cliRenderer emits terminal output. Styling is decided per destination:
// only writes that go to an interactive terminal get escape codes, so
// piped output, files and string captures stay clean.
type cliRenderer struct{}

func (cliRenderer) Mode() Mode { return ModeCLI }

func (cliRenderer) Render(w io.Writer, loc Location, values ...any) error {
	color := writerIsTerminal(w)

	caption := loc.File + ":" + strconv.Itoa(loc.Line)
	if color {
		caption = cliLocStyle.Render(caption)
	}
	if loc.Link != "" {
		link := loc.Link
		if color {
			link = cliLinkStyle.Render(link)
		}
		caption += " " + link
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

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
