package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// resultWriter prints conversion results either one per line, columns
// separated by tabs, or collected into a table rendered by flush
type resultWriter struct {
	w       io.Writer
	headers []string
	table   bool
	rows    [][]string
}

func newResultWriter(w io.Writer, table bool, headers ...string) *resultWriter {
	return &resultWriter{w: w, headers: headers, table: table}
}

func (r *resultWriter) add(cols ...string) {
	if r.table {
		r.rows = append(r.rows, cols)
		return
	}
	fmt.Fprintln(r.w, strings.Join(cols, "\t"))
}

func (r *resultWriter) flush() {
	if !r.table || len(r.rows) == 0 {
		return
	}
	printTable(r.w, r.headers, r.rows)
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.AppendBulk(rows)
	table.Render()
}
