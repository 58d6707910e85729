package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbpager/dbpager/core"
	"github.com/dbpager/dbpager/core/mock"
)

func TestNewConnection(t *testing.T) {
	r := require.New(t)

	connection, err := core.NewConnection(&core.ConnectionParams{
		Name: "conn",
		Type: "mock",
		URL:  "mock://",
	}, mock.NewAdapter(nil))
	r.NoError(err)

	// id gets generated when not provided
	r.NotEmpty(connection.GetID())
	r.Equal("conn", connection.GetName())
	r.Equal("mock", connection.GetType())
	r.Equal("mock://", connection.GetURL())
}

func TestNewConnection_NoAdapter(t *testing.T) {
	r := require.New(t)

	_, err := core.NewConnection(&core.ConnectionParams{}, nil)
	r.Error(err)
}

func TestNewConnection_ExpandsParams(t *testing.T) {
	r := require.New(t)

	t.Setenv("DBPAGER_TEST_URL", "postgres://localhost:5432/postgres")

	connection, err := core.NewConnection(&core.ConnectionParams{
		URL: "{{ env `DBPAGER_TEST_URL` }}",
	}, mock.NewAdapter(nil))
	r.NoError(err)

	r.Equal("postgres://localhost:5432/postgres", connection.GetURL())
	// the original parameters stay unexpanded
	r.Equal("{{ env `DBPAGER_TEST_URL` }}", connection.GetParams().URL)
}
