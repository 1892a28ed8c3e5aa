package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the brush ASCII art banner.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Warm gradient, dark to light
	lines := []struct {
		text  string
		color string
	}{
		{"  _                    _     ", "#f59e0b"},
		{" | |__  _ __ _   _ ___| |__  ", "#f97316"},
		{" | '_ \\| '__| | | / __| '_ \\ ", "#ef4444"},
		{" | |_) | |  | |_| \\__ \\ | | |", "#ec4899"},
		{" |_.__/|_|   \\__,_|___/_| |_|", "#d946ef"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  "+version).Faint())
	fmt.Fprintln(w)
}
