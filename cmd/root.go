package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ns",
		Short:         "Nostr relay statistics (ns): follower reachability and relay usage",
		Long:          "ns computes social-graph statistics for a nostr public key: which accounts are active on your relays, the minimum set of relays needed to reach every follower, and a ranking of the relays your followers use.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStatsCmd(app),
		newRelaysCmd(app),
	)

	return rootCmd
}
