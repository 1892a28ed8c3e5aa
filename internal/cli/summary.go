package cli

import (
	"fmt"
	"strings"
	"time"
)

// Summary renders the result of a replay as markdown.
func Summary(r *ReplayResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Replay: %s\n\n", r.Trace)
	fmt.Fprintf(&sb, "%d ticks in %s.\n\n", r.Stats.Ticks, r.Stats.Elapsed.Round(time.Millisecond))

	sb.WriteString("| Hand | Strokes | Points | Length |\n")
	sb.WriteString("|------|--------:|-------:|-------:|\n")
	for _, h := range r.Hands {
		points := 0
		var length float32
		for _, s := range h.Strokes {
			points += len(s.Points)
			length += s.Length()
		}
		fmt.Fprintf(&sb, "| %s | %d | %d | %.3f |\n", h.Hand, len(h.Strokes), points, length)
	}

	for _, h := range r.Hands {
		if h.Open {
			fmt.Fprintf(&sb, "\n> The %s brush was still drawing when the trace ended.\n", h.Hand)
		}
	}
	return sb.String()
}
