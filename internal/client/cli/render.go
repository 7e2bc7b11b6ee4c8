package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/divergentflow/internal/client/models"
	"github.com/dustin/go-humanize"
)

const (
	maxTableText = 60
	timeLayout   = "2006-01-02 15:04"
)

// renderCaptures writes list in the layout of the given mode: a numbered
// table for typical, compact cards for divergent.
func renderCaptures(w io.Writer, list []models.Capture, mode models.NeuroMode, now time.Time) {
	if mode == models.NeuroModeDivergent {
		renderCards(w, list, now)
		return
	}
	renderTable(w, list)
}

func renderTable(w io.Writer, list []models.Capture) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No captures found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tCREATED\tSTATUS\tTEXT")
	for i, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, c.ID, c.CreatedAt.Local().Format(timeLayout), status(c), oneLine(c.RawText, maxTableText))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d capture(s)\n", len(list))
}

func renderCards(w io.Writer, list []models.Capture, now time.Time) {
	if len(list) == 0 {
		fmt.Fprintln(w, "Nothing here yet. Type 'capture' to dump a thought.")
		return
	}

	for _, c := range list {
		mark := "•"
		if c.Migrated() {
			mark = "✓"
		}
		fmt.Fprintf(w, "%s %s\n", mark, c.RawText)
		fmt.Fprintf(w, "  %s · %s\n", c.ID, humanize.RelTime(c.CreatedAt, now, "ago", "from now"))
	}
}

func status(c models.Capture) string {
	if c.Migrated() {
		return "migrated"
	}
	return "pending"
}

// oneLine collapses whitespace and cuts s to max runes.
func oneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
