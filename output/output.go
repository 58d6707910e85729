package output

import (
	"io"

	"github.com/dbpager/dbpager/core"
)

// Formatter renders a finished transfer to a writer.
type Formatter interface {
	Name() string
	Format(store *core.RowStore, desc *core.PrintDescriptor, writer io.Writer) error
}
