package main

import (
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"snapsort/internal/organizer"
)

const (
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

func renderSummary(summary organizer.Summary, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Outcome", "Files"})
	tw.AppendRow(table.Row{summaryLabel("Moved", colorize), summary.Moved})
	tw.AppendRow(table.Row{"Skipped", summary.Skipped})
	tw.AppendRow(table.Row{"Failed", summary.Failed})
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(summary.Total())})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft, AlignFooter: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}

func summaryLabel(label string, colorize bool) string {
	if !colorize {
		return label
	}
	return ansiGreen + label + ansiReset
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
