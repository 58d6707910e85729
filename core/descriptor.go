package core

// ColumnMeta is the display metadata collected for one column during
// a transfer.
type ColumnMeta struct {
	Alignment Alignment
	// Width is the running maximum rendered width over all cells,
	// header included
	Width int
	// Multiline is set when any cell of the column contains a line break
	Multiline bool
}

// PrintDescriptor carries everything a pager needs to lay out columns
// without re-scanning the dataset.
type PrintDescriptor struct {
	Columns   []ColumnMeta
	HasHeader bool
}

// NewPrintDescriptor classifies each column once and starts all widths
// at zero.
func NewPrintDescriptor(columns []Column) *PrintDescriptor {
	d := &PrintDescriptor{
		Columns:   make([]ColumnMeta, len(columns)),
		HasHeader: true,
	}

	for i, col := range columns {
		d.Columns[i].Alignment = AlignmentForType(col.TypeTag)
	}

	return d
}

// NumColumns returns the fixed column count of the descriptor.
func (d *PrintDescriptor) NumColumns() int {
	return len(d.Columns)
}

// Fold merges the metrics of one measured cell into column i.
// Widths only ever grow and the multiline flag is sticky.
func (d *PrintDescriptor) Fold(i int, m FieldMetrics) {
	col := &d.Columns[i]

	if m.Width > col.Width {
		col.Width = m.Width
	}
	col.Multiline = col.Multiline || m.Multiline
}
