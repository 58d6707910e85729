package adapters

import (
	"database/sql"
	"fmt"
	nurl "net/url"

	_ "github.com/lib/pq"

	"github.com/dbpager/dbpager/core"
	"github.com/dbpager/dbpager/core/builders"
)

// Register client
func init() {
	_ = register(&Postgres{}, "postgres", "postgresql", "pg")
}

var _ core.Adapter = (*Postgres)(nil)

type Postgres struct{}

func (p *Postgres) Connect(url string) (core.Driver, error) {
	u, err := nurl.Parse(url)
	if err != nil {
		return nil, fmt.Errorf("could not parse db connection string: %w", err)
	}

	db, err := sql.Open("postgres", u.String())
	if err != nil {
		return nil, fmt.Errorf("unable to connect to postgres database: %w", err)
	}

	// sql.Open only validates its arguments, reach the server now so a
	// bad url fails in connect and not in the middle of a transfer
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return &postgresDriver{
		c: builders.NewClient(db),
	}, nil
}
