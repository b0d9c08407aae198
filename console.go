package snaplist

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette maps snapshot outline roles to console colors.
type Palette struct {
	Section *color.Color
	Item    *color.Color
	Tag     *color.Color
}

func defaultPalette() Palette {
	return Palette{
		Section: color.New(color.FgBlue, color.Bold),
		Item:    color.New(color.FgWhite),
		Tag:     color.New(color.FgYellow),
	}
}

// Dump writes a colored outline of the snapshot to w, one element per line,
// items indented under their sections (for debugging purposes).
//
// If palette is nil, a default palette is used. Lines are truncated to the
// current terminal width if stdin is interactive.
func Dump[ID, Tag comparable](snap *Snapshot[ID, Tag], w io.Writer, palette *Palette) {
	p := defaultPalette()
	if palette != nil {
		p = *palette
	}
	linewidth := 0 // 0 means unbounded
	if term.IsTerminal(0) {
		if tw, _, err := term.GetSize(0); err == nil {
			linewidth = tw
		}
	}
	for s := range snap.structure().Sections() {
		writeLine(w, p.Section, p.Tag, fmt.Sprintf("▤ %s", s.Key()), fmt.Sprintf("  #%v", s.Tag()), linewidth)
		for it := range s.Items() {
			writeLine(w, p.Item, p.Tag, fmt.Sprintf("  · %v", it.ID()), fmt.Sprintf("  #%v", it.Tag()), linewidth)
		}
	}
}

// writeLine truncates the plain text to the line width before colorizing, so
// that escape sequences are never cut apart.
func writeLine(w io.Writer, hc, tc *color.Color, head, tag string, linewidth int) {
	if linewidth > 0 && len(head)+len(tag) > linewidth {
		if len(head) > linewidth {
			head, tag = head[:linewidth], ""
		} else {
			tag = tag[:linewidth-len(head)]
		}
	}
	hc.Fprint(w, head)
	tc.Fprint(w, tag)
	fmt.Fprintln(w)
}
