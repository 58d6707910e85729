package adapters

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbpager/dbpager/core/builders"
)

// setupPostgresTestDriver helper function to setup postgres driver for testing
func setupPostgresTestDriver(t *testing.T) (*postgresDriver, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgresDriver{c: builders.NewClient(db)}, mock
}

func Test_postgresDriver_Query(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectExec  bool
		wantTabular bool
	}{
		{
			name:        "select returns tuples",
			query:       "SELECT * FROM test",
			wantTabular: true,
		},
		{
			name:       "delete is a command",
			query:      "delete FROM test",
			expectExec: true,
		},
		{
			name:       "update is a command",
			query:      "update test SET a = 1",
			expectExec: true,
		},
		{
			name:        "insert with returning yields tuples",
			query:       "insert INTO test VALUES (1) returning id",
			wantTabular: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, mock := setupPostgresTestDriver(t)

			if tt.expectExec {
				mock.ExpectExec(tt.query).WillReturnResult(sqlmock.NewResult(0, 1))
			} else {
				mock.ExpectQuery(tt.query).WillReturnRows(
					sqlmock.NewRows([]string{"id"}).AddRow("1"),
				)
			}

			stream, err := driver.Query(context.Background(), tt.query)
			require.NoError(t, err)
			defer stream.Close()

			if tt.wantTabular {
				assert.NotEmpty(t, stream.Columns())
			} else {
				assert.Empty(t, stream.Columns())
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
