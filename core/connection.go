package core

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

type ConnectionID string

// Connection ties connection parameters to the adapter that knows how
// to reach the database. The actual database handle is not held here:
// it is scoped to each transfer, so every exit path releases it.
type Connection struct {
	params           *ConnectionParams
	unexpandedParams *ConnectionParams

	adapter Adapter
}

func NewConnection(params *ConnectionParams, adapter Adapter) (*Connection, error) {
	if adapter == nil {
		return nil, errors.New("no adapter provided")
	}

	expanded := params.Expand()
	if expanded.ID == "" {
		expanded.ID = ConnectionID(uuid.New().String())
	}

	return &Connection{
		params:           expanded,
		unexpandedParams: params,
		adapter:          adapter,
	}, nil
}

func (c *Connection) GetID() ConnectionID {
	return c.params.ID
}

func (c *Connection) GetName() string {
	return c.params.Name
}

func (c *Connection) GetType() string {
	return c.params.Type
}

func (c *Connection) GetURL() string {
	return c.params.URL
}

// GetParams returns the original unexpanded parameters.
func (c *Connection) GetParams() *ConnectionParams {
	return c.unexpandedParams
}

func (c *Connection) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.params)
}
