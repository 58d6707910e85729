package core

// Row is one encoded tuple. All cells live back-to-back in a single
// owned buffer, each terminated with a NUL byte, with one offset per
// field. The row outlives the result stream it was read from.
//
// Cells must not contain NUL bytes themselves - this is a text store.
type Row struct {
	buf     []byte
	offsets []int32
}

// EncodeRow packs the ordered cells of one tuple into a Row. The
// buffer is sized in a single pre-pass and allocated exactly once.
func EncodeRow(cells []string) *Row {
	size := 0
	for _, cell := range cells {
		size += len(cell) + 1
	}

	row := &Row{
		buf:     make([]byte, 0, size),
		offsets: make([]int32, len(cells)),
	}

	for i, cell := range cells {
		row.offsets[i] = int32(len(row.buf))
		row.buf = append(row.buf, cell...)
		row.buf = append(row.buf, 0)
	}

	return row
}

func (r *Row) NumFields() int {
	return len(r.offsets)
}

// Field returns the i-th cell of the row.
func (r *Row) Field(i int) string {
	start := r.offsets[i]

	end := int32(len(r.buf))
	if i+1 < len(r.offsets) {
		end = r.offsets[i+1]
	}

	// strip the terminator
	return string(r.buf[start : end-1])
}

// Fields returns all cells in order.
func (r *Row) Fields() []string {
	fields := make([]string, len(r.offsets))
	for i := range r.offsets {
		fields[i] = r.Field(i)
	}
	return fields
}
