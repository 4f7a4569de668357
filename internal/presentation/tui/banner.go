package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the offhook ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Warm gradient, receiver-red to dial-tone amber
	lines := []struct {
		text  string
		color string
	}{
		{`         __  __ _                 _    `, "#f87171"},
		{`   ___  / _|/ _| |__   ___   ___ | | __`, "#fb923c"},
		{`  / _ \| |_| |_| '_ \ / _ \ / _ \| |/ /`, "#fbbf24"},
		{` | (_) |  _|  _| | | | (_) | (_) |   < `, "#facc15"},
		{`  \___/|_| |_| |_| |_|\___/ \___/|_|\_\`, "#a3e635"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
