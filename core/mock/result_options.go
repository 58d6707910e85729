package mock

import (
	"time"

	"github.com/dbpager/dbpager/core"
)

type resultStreamConfig struct {
	nextSleep time.Duration
	nextErr   error
	columns   []core.Column
}

type ResultStreamOption func(*resultStreamConfig)

func ResultStreamWithNextSleep(s time.Duration) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.nextSleep = s
	}
}

func ResultStreamWithColumns(columns []core.Column) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.columns = columns
	}
}

// ResultStreamWithNextError makes every Next call fail.
func ResultStreamWithNextError(err error) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.nextErr = err
	}
}
