package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kaiklok/kairos/internal/clock"
	"github.com/kaiklok/kairos/internal/kairos"
)

// NewNowCommand creates the "now" command: seed a fresh clock from the
// system UTC time, take one reading, print the assembled response.
//
// The wall clock is sampled exactly once, at seeding; the reading itself
// comes from the monotonic delta, matching how a long-lived host would
// poll the same clock instance.
func NewNowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current kairos moment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnvironment(opts)
			if err != nil {
				return err
			}
			defer env.close()

			k := clock.New()
			if err := k.SeedFromUTC(time.Now().UTC()); err != nil {
				return WrapExitError(ExitFailure, "failed to seed clock", err)
			}
			resp, err := kairos.MomentNow(k, env.calc)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to read clock", err)
			}
			return respond(env.formatter(opts, cmd), resp)
		},
	}
}
