package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/aussiebroadwan/links/internal/links/app"
	"github.com/spf13/cobra"
)

// withApp opens the database for an admin command, logging to stderr so
// stdout carries only the command's own output.
func withApp(cmd *cobra.Command, opts *options, fn func(*app.Application) error) error {
	application, err := app.New(opts.config(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer application.Close()

	return fn(application)
}

func newAddUserCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-user <username>",
		Short: "Create a user; the password is prompted twice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				password string
				err      error
			)
			if opts.passwordStdin {
				password, err = ReadPasswordLine(cmd.InOrStdin())
			} else {
				password, err = GetNewPassword(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}

			return withApp(cmd, opts, func(a *app.Application) error {
				user, err := a.Users().AddUser(cmd.Context(), args[0], password)
				if err != nil {
					return fmt.Errorf("add-user %q: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Username, user.ID)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "Read the password from stdin")
	return cmd
}

func newDelUserCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "del-user <username>",
		Short: "Delete a user and every redirect they own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(a *app.Application) error {
				removed, err := a.Users().DeleteUser(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("del-user %q: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s and %d redirect(s)\n", args[0], removed)
				return nil
			})
		},
	}
}

func newListUsersCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(a *app.Application) error {
				users, err := a.Users().ListUsers(cmd.Context())
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tUSERNAME\tCREATED")
				for _, u := range users {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Username, u.CreatedAt.UTC().Format(time.RFC3339))
				}
				return tw.Flush()
			})
		},
	}
}
