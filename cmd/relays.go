package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRelaysCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relays",
		Short: "Manage the bootstrap relay list",
	}

	cmd.AddCommand(
		newRelaysListCmd(app),
		newRelaysAddCmd(app),
		newRelaysRemoveCmd(app),
	)

	return cmd
}

func newRelaysListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured bootstrap relays",
		RunE: func(cmd *cobra.Command, _ []string) error {
			relays, err := app.relayRepo.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, relay := range relays {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), relay)
			}
			return nil
		},
	}
}

func newRelaysAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <url>",
		Short: "Add a bootstrap relay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			relay, err := app.relayRepo.Add(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", relay)
			return nil
		},
	}
}

func newRelaysRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <url>",
		Short: "Remove a bootstrap relay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			relay, err := app.relayRepo.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", relay)
			return nil
		},
	}
}
