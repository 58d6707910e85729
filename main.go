package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbpager/dbpager/adapters"
	"github.com/dbpager/dbpager/core"
	"github.com/dbpager/dbpager/output/format"
	"github.com/dbpager/dbpager/plugin"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		dbType  string
		dbURL   string
		raw     bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "dbpager [query]",
		Short:        "Execute a query and page through its result",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := adapters.NewConnection(&core.ConnectionParams{
				Name: "cli",
				Type: dbType,
				URL:  dbURL,
			})
			if err != nil {
				return err
			}

			mode := core.MeasureDisplay
			if raw {
				mode = core.MeasureRaw
			}

			opts := []core.TransferOption{core.WithMeasureMode(mode)}
			if verbose {
				opts = append(opts, core.WithLogger(plugin.NewLogger(cmd.ErrOrStderr())))
			}

			store, desc, err := conn.Transfer(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}

			return format.NewTable().Format(store, desc, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dbType, "type", "postgres", "database type")
	cmd.Flags().StringVar(&dbURL, "url", "postgres://localhost:5432/postgres", "database connection url")
	cmd.Flags().BoolVar(&raw, "raw", false, "measure widths in bytes instead of terminal cells")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log transfer progress to stderr")

	return cmd
}
