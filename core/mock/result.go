package mock

import (
	"errors"
	"fmt"
	"time"

	"github.com/dbpager/dbpager/core"
)

func newNext(rows [][]string) (func() ([]string, error), func() bool) {
	index := 0

	hasNext := func() bool {
		return index < len(rows)
	}

	next := func() ([]string, error) {
		if !hasNext() {
			return nil, errors.New("no next row")
		}

		row := rows[index]
		index++
		return row, nil
	}

	return next, hasNext
}

type ResultStream struct {
	next    func() ([]string, error)
	hasNext func() bool
	config  *resultStreamConfig

	closed bool
}

func makeDefaultColumns(rows [][]string) []core.Column {
	var columns []core.Column
	if len(rows) > 0 {
		for i := range rows[0] {
			columns = append(columns, core.Column{
				Name:    fmt.Sprintf("header_%d", i),
				TypeTag: "TEXT",
			})
		}
	}
	return columns
}

// NewResultStream returns a mocked result stream with provided rows.
// Unless overridden, columns match the width of the first row in form
// of: <header_0>, <header_1>, etc. with a TEXT type tag.
func NewResultStream(rows [][]string, opts ...ResultStreamOption) *ResultStream {
	config := &resultStreamConfig{
		nextSleep: 0,
		columns:   makeDefaultColumns(rows),
	}
	for _, opt := range opts {
		opt(config)
	}

	next, hasNext := newNext(rows)

	return &ResultStream{
		next:    next,
		hasNext: hasNext,
		config:  config,
	}
}

func (rs *ResultStream) Columns() []core.Column {
	return rs.config.columns
}

func (rs *ResultStream) Next() ([]string, error) {
	time.Sleep(rs.config.nextSleep)
	if rs.config.nextErr != nil {
		return nil, rs.config.nextErr
	}
	return rs.next()
}

func (rs *ResultStream) HasNext() bool {
	return rs.hasNext()
}

func (rs *ResultStream) Close() {
	rs.closed = true
}

// Closed reports whether Close was called on the stream.
func (rs *ResultStream) Closed() bool {
	return rs.closed
}

// NewRows returns a slice of rows in form of:
//
//	{ "<index>", "row_<index>" }
//
// where the first index is "from" and the last one is one less than "to".
func NewRows(from, to int) [][]string {
	var rows [][]string

	for i := from; i < to; i++ {
		rows = append(rows, []string{fmt.Sprint(i), fmt.Sprintf("row_%d", i)})
	}
	return rows
}
