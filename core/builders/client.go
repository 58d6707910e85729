package builders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbpager/dbpager/core"
)

// Client is the default database/sql wrapper used by the specific
// driver implementations.
type Client struct {
	db *sql.DB
}

func NewClient(db *sql.DB) *Client {
	return &Client{
		db: db,
	}
}

func (c *Client) Close() {
	c.db.Close()
}

// Exec runs a statement that returns no tuples. The resulting stream
// has no columns, which marks it as a command acknowledgment.
func (c *Client) Exec(ctx context.Context, query string) (core.ResultStream, error) {
	if _, err := c.db.ExecContext(ctx, query); err != nil {
		return nil, err
	}

	return NewStreamBuilder().Build(), nil
}

// Query runs a query on the database and returns a stream of text
// cells. Column type tags come from the driver's type names.
func (c *Client) Query(ctx context.Context, query string) (core.ResultStream, error) {
	dbRows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	columnTypes, err := dbRows.ColumnTypes()
	if err != nil {
		dbRows.Close()
		return nil, err
	}

	columns := make([]core.Column, len(columnTypes))
	for i, ct := range columnTypes {
		columns[i] = core.Column{
			Name:    ct.Name(),
			TypeTag: ct.DatabaseTypeName(),
		}
	}

	hasNext := func() bool {
		if !dbRows.Next() {
			if !dbRows.NextResultSet() {
				return false
			}
			return dbRows.Next()
		}
		return true
	}

	next := func() ([]string, error) {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := dbRows.Scan(pointers...); err != nil {
			return nil, err
		}

		cells := make([]string, len(columns))
		for i, val := range values {
			cells[i] = cellText(val)
		}

		return cells, nil
	}

	stream := NewStreamBuilder().
		WithColumns(columns).
		WithNextFunc(next, hasNext).
		WithCloseFunc(func() {
			_ = dbRows.Close()
		}).
		Build()

	return stream, nil
}

// cellText renders one scanned value the way the database would print
// it. NULL becomes an empty string.
func cellText(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
