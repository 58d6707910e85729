package builders

import (
	"errors"
	"sync"

	"github.com/dbpager/dbpager/core"
)

// Stream fills the core.ResultStream interface for all sql databases.
type Stream struct {
	columns []core.Column
	next    func() ([]string, error)
	hasNext func() bool
	close   func()
	once    sync.Once
}

var _ core.ResultStream = (*Stream)(nil)

func (s *Stream) Columns() []core.Column {
	return s.columns
}

func (s *Stream) HasNext() bool {
	return s.hasNext()
}

func (s *Stream) Next() ([]string, error) {
	cells, err := s.next()
	if err != nil {
		s.Close()
		return nil, err
	}
	return cells, nil
}

func (s *Stream) Close() {
	s.once.Do(s.close)
	s.hasNext = func() bool {
		return false
	}
}

// StreamBuilder builds result streams from plain functions.
type StreamBuilder struct {
	columns []core.Column
	next    func() ([]string, error)
	hasNext func() bool
	close   func()
}

func NewStreamBuilder() *StreamBuilder {
	return &StreamBuilder{
		columns: []core.Column{},
		next:    func() ([]string, error) { return nil, errors.New("no next row") },
		hasNext: func() bool { return false },
		close:   func() {},
	}
}

func (b *StreamBuilder) WithColumns(columns []core.Column) *StreamBuilder {
	b.columns = columns
	return b
}

func (b *StreamBuilder) WithNextFunc(fn func() ([]string, error), has func() bool) *StreamBuilder {
	b.next = fn
	b.hasNext = has
	return b
}

func (b *StreamBuilder) WithCloseFunc(fn func()) *StreamBuilder {
	b.close = fn
	return b
}

func (b *StreamBuilder) Build() *Stream {
	return &Stream{
		columns: b.columns,
		next:    b.next,
		hasNext: b.hasNext,
		close:   b.close,
	}
}
