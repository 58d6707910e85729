package adapters

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/dbpager/dbpager/core"
	"github.com/dbpager/dbpager/core/builders"
)

// Register client
func init() {
	_ = register(&MySQL{}, "mysql", "mariadb")
}

var _ core.Adapter = (*MySQL)(nil)

type MySQL struct{}

func (m *MySQL) Connect(url string) (core.Driver, error) {
	// validate the dsn up front, the driver's own errors are cryptic
	if _, err := mysql.ParseDSN(url); err != nil {
		return nil, fmt.Errorf("could not parse db connection string: %w", err)
	}

	db, err := sql.Open("mysql", url)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mysql database: %w", err)
	}

	return &mysqlDriver{
		c: builders.NewClient(db),
	}, nil
}
