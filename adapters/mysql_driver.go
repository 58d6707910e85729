package adapters

import (
	"context"
	"strings"

	"github.com/dbpager/dbpager/core"
	"github.com/dbpager/dbpager/core/builders"
)

var _ core.Driver = (*mysqlDriver)(nil)

type mysqlDriver struct {
	c *builders.Client
}

func (d *mysqlDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	action := strings.ToLower(strings.Split(query, " ")[0])

	if action == "update" || action == "delete" || action == "insert" {
		return d.c.Exec(ctx, query)
	}

	return d.c.Query(ctx, query)
}

func (d *mysqlDriver) Close() {
	d.c.Close()
}
