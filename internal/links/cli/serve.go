package cli

import (
	"github.com/aussiebroadwan/links/internal/links/app"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "HTTP port (env LINKS_PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, opts *options) error {
	application, err := app.New(opts.config(), nil)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}
