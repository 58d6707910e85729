package core

import "errors"

var (
	// ErrConnection means the connection to the database could not be
	// established. It is wrapped with the underlying diagnostic.
	ErrConnection = errors.New("connection to database failed")

	// ErrQuery means the query did not produce a tabular result, either
	// because it failed or because it was a plain command.
	ErrQuery = errors.New("query doesn't return data")

	// ErrColumnLimit means the result is wider than MaxColumns.
	ErrColumnLimit = errors.New("too much columns")

	// ErrIntegrationUnavailable means no driver is registered for the
	// requested database type.
	ErrIntegrationUnavailable = errors.New("no driver for this database type available in this build")
)
