package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// listing is tabular command output. Terminals get a rendered table; pipes
// and files get one plain line per row.
type listing struct {
	headers []string
	aligns  []columnAlignment
	rows    [][]string
	plain   []string
}

func (l *listing) add(plain string, cells ...string) {
	l.plain = append(l.plain, plain)
	l.rows = append(l.rows, cells)
}

func (l *listing) write(cmd *cobra.Command, empty string) {
	out := cmd.OutOrStdout()
	if len(l.rows) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	if isTerminal(out) {
		fmt.Fprintln(out, renderTable(l.headers, l.rows, l.aligns))
		return
	}
	fmt.Fprintln(out, strings.Join(l.plain, "\n"))
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
