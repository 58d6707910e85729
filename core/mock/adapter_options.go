package mock

type adapterConfig struct {
	connectErr error
	queryErr   error

	resultStreamOptions []ResultStreamOption
}

type AdapterOption func(*adapterConfig)

// AdapterWithConnectError makes Connect fail.
func AdapterWithConnectError(err error) AdapterOption {
	return func(c *adapterConfig) {
		c.connectErr = err
	}
}

// AdapterWithQueryError makes every Query fail.
func AdapterWithQueryError(err error) AdapterOption {
	return func(c *adapterConfig) {
		c.queryErr = err
	}
}

// AdapterWithResultStreamOpts passes the options to every result
// stream the adapter's drivers create.
func AdapterWithResultStreamOpts(opts ...ResultStreamOption) AdapterOption {
	return func(c *adapterConfig) {
		c.resultStreamOptions = append(c.resultStreamOptions, opts...)
	}
}
