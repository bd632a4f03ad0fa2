// Package cli implements the links command line: the server and the
// account administration commands.
package cli

import (
	"fmt"

	"github.com/aussiebroadwan/links/internal/links/app"
	"github.com/spf13/cobra"
)

type options struct {
	connection    string
	port          int
	passwordStdin bool
}

// NewRootCommand builds the links command tree. Flags override the
// environment read by app.LoadConfig.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "links",
		Short:         "Personal URL redirection service",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Without a subcommand the binary serves.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.connection, "connection", "c", "",
		"SQLite path or postgres:// URL (env LINKS_DATABASE)")
	root.Flags().IntVarP(&opts.port, "port", "p", 0, "HTTP port (env LINKS_PORT)")

	root.AddCommand(
		newServeCommand(opts),
		newAddUserCommand(opts),
		newDelUserCommand(opts),
		newListUsersCommand(opts),
		newVersionCommand(),
	)
	return root
}

func (o *options) config() app.Config {
	cfg := app.LoadConfig()
	if o.connection != "" {
		cfg.Database = o.connection
	}
	if o.port != 0 {
		cfg.Port = o.port
	}
	return cfg
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion)
		},
	}
}
