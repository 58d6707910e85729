package core

import "context"

type (
	// Column describes a single result column in source order.
	Column struct {
		// Name to be displayed in the header row
		Name string
		// TypeTag is the driver's name for the column type (e.g. "INT4")
		TypeTag string
	}

	// ResultStream is a result from an executed query in form of an iterator.
	// Cells are always text; SQL NULL is represented as an empty string.
	// A stream with no columns is a command acknowledgment, not tabular data.
	ResultStream interface {
		Columns() []Column
		HasNext() bool
		Next() ([]string, error)
		Close()
	}
)

type (
	// Adapter is an object which allows to connect to a database via url
	Adapter interface {
		Connect(url string) (Driver, error)
	}

	// Driver is an interface to a specific database
	Driver interface {
		Query(context.Context, string) (ResultStream, error)
		Close()
	}
)
