package util

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// NewTable returns a borderless, left aligned table
func NewTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)

	return table
}
