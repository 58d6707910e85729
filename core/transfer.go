package core

import (
	"context"
	"fmt"
)

// MaxColumns is the widest result a transfer accepts. Exactly
// MaxColumns columns still succeeds.
const MaxColumns = 1024

type transferState int

const (
	stateConnect transferState = iota
	stateExecute
	stateValidate
	stateColumnSetup
	stateHeaderTransfer
	stateRowTransfer
	stateCleanup
	stateDone
)

func (s transferState) String() string {
	switch s {
	case stateConnect:
		return "connect"
	case stateExecute:
		return "execute"
	case stateValidate:
		return "validate"
	case stateColumnSetup:
		return "column_setup"
	case stateHeaderTransfer:
		return "header_transfer"
	case stateRowTransfer:
		return "row_transfer"
	case stateCleanup:
		return "cleanup"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

type transferConfig struct {
	mode MeasureMode
	log  Logger
}

type TransferOption func(*transferConfig)

// WithMeasureMode selects the width measurement mode for the whole
// transfer.
func WithMeasureMode(mode MeasureMode) TransferOption {
	return func(c *transferConfig) {
		c.mode = mode
	}
}

func WithLogger(log Logger) TransferOption {
	return func(c *transferConfig) {
		c.log = log
	}
}

// Transfer executes the query and pulls the entire result into a
// RowStore, folding per-cell metrics into a PrintDescriptor as rows
// arrive. Column names are stored as row 0. The database handle and
// the result stream are released on every exit path.
//
// The call is fully synchronous. A caller that wants bounded latency
// has to cancel through ctx or limit the query itself.
func (c *Connection) Transfer(ctx context.Context, query string, opts ...TransferOption) (*RowStore, *PrintDescriptor, error) {
	config := &transferConfig{
		mode: MeasureDisplay,
		log:  nopLogger{},
	}
	for _, opt := range opts {
		opt(config)
	}
	log := config.log

	var state transferState
	enter := func(next transferState) {
		state = next
		log.Debugf("transfer %s: %s", c.params.ID, state)
	}

	enter(stateConnect)
	driver, err := c.adapter.Connect(c.params.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrConnection, err)
	}

	// cleanup releases the stream and the database handle exactly once,
	// no matter which state the transfer leaves from.
	var stream ResultStream
	cleaned := false
	cleanup := func() {
		if cleaned {
			return
		}
		cleaned = true
		enter(stateCleanup)
		if stream != nil {
			stream.Close()
		}
		driver.Close()
	}
	defer cleanup()

	enter(stateExecute)
	stream, err = driver.Query(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrQuery, err)
	}

	enter(stateValidate)
	columns := stream.Columns()
	if len(columns) == 0 {
		// command acknowledgment, nothing to page
		return nil, nil, ErrQuery
	}

	enter(stateColumnSetup)
	if len(columns) > MaxColumns {
		return nil, nil, ErrColumnLimit
	}
	desc := NewPrintDescriptor(columns)
	store := NewRowStore()

	enter(stateHeaderTransfer)
	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}
	transferRow(store, desc, names, config.mode)

	enter(stateRowTransfer)
	for stream.HasNext() {
		cells, err := stream.Next()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", ErrQuery, err)
		}

		transferRow(store, desc, cells, config.mode)
	}

	cleanup()
	enter(stateDone)
	log.Debugf("transfer %s: stored %d rows in %d buckets", c.params.ID, store.Len(), store.NumBuckets())

	return store, desc, nil
}

// transferRow encodes one tuple, measures every cell, folds the
// metrics into the descriptor and appends the row with the OR of its
// per-field multiline flags.
func transferRow(store *RowStore, desc *PrintDescriptor, cells []string, mode MeasureMode) {
	row := EncodeRow(cells)

	multiline := false
	for i, cell := range cells {
		m := Measure(cell, mode)
		desc.Fold(i, m)
		multiline = multiline || m.Multiline
	}

	store.Append(row, multiline)
}
