package mock

import (
	"context"

	"github.com/dbpager/dbpager/core"
)

var _ core.Driver = (*driver)(nil)

type driver struct {
	adapter *Adapter
}

func (d *driver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	if d.adapter.config.queryErr != nil {
		return nil, d.adapter.config.queryErr
	}

	stream := NewResultStream(d.adapter.rows, d.adapter.config.resultStreamOptions...)
	d.adapter.streams = append(d.adapter.streams, stream)

	return stream, nil
}

func (d *driver) Close() {
	d.adapter.closedDrivers++
}

var _ core.Adapter = (*Adapter)(nil)

type Adapter struct {
	rows   [][]string
	config *adapterConfig

	streams       []*ResultStream
	closedDrivers int
}

func NewAdapter(rows [][]string, opts ...AdapterOption) *Adapter {
	config := &adapterConfig{
		resultStreamOptions: []ResultStreamOption{},
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Adapter{
		rows:   rows,
		config: config,
	}
}

func (a *Adapter) Connect(_ string) (core.Driver, error) {
	if a.config.connectErr != nil {
		return nil, a.config.connectErr
	}

	return &driver{adapter: a}, nil
}

// Streams returns every result stream handed out so far.
func (a *Adapter) Streams() []*ResultStream {
	return a.streams
}

// ClosedDrivers returns how many drivers were closed.
func (a *Adapter) ClosedDrivers() int {
	return a.closedDrivers
}
