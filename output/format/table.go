package format

import (
	"errors"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dbpager/dbpager/core"
	"github.com/dbpager/dbpager/output"
)

var _ output.Formatter = (*Table)(nil)

type Table struct{}

func NewTable() *Table {
	return &Table{}
}

func (tf *Table) Name() string {
	return "table"
}

// Format lays out the stored rows using the descriptor's alignment and
// width metadata, without re-scanning cells for widths.
func (tf *Table) Format(store *core.RowStore, desc *core.PrintDescriptor, writer io.Writer) error {
	if store.Len() < 1 {
		return errors.New("store holds no rows")
	}

	configs := make([]table.ColumnConfig, desc.NumColumns())
	for i, col := range desc.Columns {
		configs[i] = table.ColumnConfig{
			Number:   i + 1,
			WidthMin: col.Width,
		}
		if col.Alignment == core.AlignNumeric {
			configs[i].Align = text.AlignRight
		}
	}

	var header table.Row
	for _, name := range store.Row(0).Fields() {
		header = append(header, name)
	}

	var rows []table.Row
	store.Each(func(i int, row *core.Row, _ bool) bool {
		if i == 0 {
			// header handled above
			return true
		}

		var cells table.Row
		for _, cell := range row.Fields() {
			cells = append(cells, cell)
		}
		rows = append(rows, cells)

		return true
	})

	t := table.NewWriter()
	t.SetColumnConfigs(configs)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.AppendSeparator()
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	t.Style().Options.DrawBorder = false

	_, err := writer.Write([]byte(t.Render()))
	return err
}
