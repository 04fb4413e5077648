package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	reportadapter "github.com/milefashell/nostrstats/internal/adapters/render/report"
	relayadapter "github.com/milefashell/nostrstats/internal/adapters/relay"
	"github.com/milefashell/nostrstats/internal/application"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *app) *cobra.Command {
	var (
		activity bool
		coverage bool
		ranking  bool
		since    time.Duration
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "stats <npub|hex>",
		Short: "Compute relay statistics for a public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			identity, err := relayadapter.DecodeIdentity(args[0])
			if err != nil {
				return err
			}

			service, err := app.statsService(cmd.Context())
			if err != nil {
				return err
			}

			opts := application.StatsOptions{
				Activity: activity,
				Coverage: coverage,
				Ranking:  ranking,
			}
			if since > 0 {
				opts.Since = app.now().Add(-since)
			}

			var rep application.Report
			err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Querying relays...", func(ctx context.Context) error {
				var computeErr error
				rep, computeErr = service.ComputeStatisticsWith(ctx, identity, opts)
				return computeErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			rendered, err := app.reportRenderer(rep, reportadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&activity, "activity", true, "compute activity of other accounts on your relays")
	cmd.Flags().BoolVar(&coverage, "coverage", true, "compute the minimum relays needed to reach all followers")
	cmd.Flags().BoolVar(&ranking, "ranking", true, "compute the follower count per relay")
	cmd.Flags().DurationVar(&since, "since", 0, "only scan activity newer than this (e.g. 168h); 0 scans everything")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the raw report as JSON")

	return cmd
}
