package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/shortdeck/internal/equity"
	"github.com/lox/shortdeck/internal/oracle"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tieStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func printStart(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "%s %s\n", headerStyle.Render(label), handStyle.Render(detail))
}

func printResult(w io.Writer, res equity.Result, timed bool) {
	fmt.Fprintf(w, "%s %d\n", winStyle.Render("wins"), res.Wins)
	fmt.Fprintf(w, "%s %d\n", lossStyle.Render("losses"), res.Losses)
	fmt.Fprintf(w, "%s %d\n", tieStyle.Render("ties"), res.Ties)

	lower, upper := res.ConfidenceInterval()
	fmt.Fprintf(w, "%s %.2f%% %s\n",
		headerStyle.Render("equity"),
		res.Equity()*100,
		dimStyle.Render(fmt.Sprintf("(95%% %.2f%%-%.2f%%)", lower*100, upper*100)))
	if res.Misses > 0 {
		fmt.Fprintf(w, "%s %d\n", lossStyle.Render("unknown hands"), res.Misses)
	}
	if timed {
		fmt.Fprintf(w, "lookup duration %.6f s\n", res.LookupTime.Seconds())
	}
	fmt.Fprintf(w, "Time taken: %.6f s\n", res.Elapsed.Seconds())
}

func printStats(w io.Writer, path string, s oracle.Stats, deck string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", headerStyle.Render("table"), path)
	fmt.Fprintf(tw, "hands\t%d\n", s.Hands)
	fmt.Fprintf(tw, "seven card keys\t%d\n", s.SevenCard)
	fmt.Fprintf(tw, "in %s deck\t%d of %d (%.2f%%)\n", deck, s.InUniverse, s.Expected, s.Coverage()*100)
	fmt.Fprintf(tw, "distinct ranks\t%d\n", s.DistinctRank)
	fmt.Fprintf(tw, "rank span\t%d..%d\n", s.MinRank, s.MaxRank)
	tw.Flush()
}
