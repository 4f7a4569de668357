package tui

import (
	"io"
	"os"

	"github.com/aretw0/offhook/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var stateColors = map[domain.State]string{
	domain.OffHook:    "#60a5fa",
	domain.Connecting: "#fbbf24",
	domain.Connected:  "#4ade80",
	domain.OnHold:     "#c084fc",
	domain.OnHook:     "#f87171",
}

// Styler colours state labels for a given writer. Plain text is emitted when
// colour is disabled or the writer is not a terminal.
type Styler struct {
	out     *termenv.Output
	enabled bool
}

// NewStyler creates a Styler for w.
func NewStyler(w io.Writer, enabled bool) *Styler {
	return &Styler{
		out:     termenv.NewOutput(w),
		enabled: enabled && IsTerminal(w),
	}
}

// State renders the human label of s, bold and coloured.
func (s *Styler) State(st domain.State) string {
	if !s.enabled {
		return st.String()
	}
	return s.out.String(st.String()).Foreground(s.out.Color(stateColors[st])).Bold().String()
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
