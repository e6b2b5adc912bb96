package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/kaiklok/kairos/internal/civil"
)

// NewSunriseCommand creates the "sunrise" command: print the computed
// sunrise for a calendar date at the configured observer. With a configured
// cache path the result is persisted for later runs.
func NewSunriseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sunrise <date>",
		Short: "Print the approximate sunrise for a UTC calendar date",
		Long: `Prints the approximate sunrise (low-precision solar model, minutes-level
accuracy) for a date like "2024-05-10" at the configured observer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reuse the strict datetime grammar by pinning midnight UTC.
			ms, err := civil.ParseEpochMs(args[0] + "T00:00Z")
			if err != nil {
				return WrapExitError(ExitFailure, "invalid date (want YYYY-MM-DD)", err)
			}
			date := civil.DateFromEpochMs(ms)

			env, err := buildEnvironment(opts)
			if err != nil {
				return err
			}
			defer env.close()

			rise := env.calc.SunriseEpochMs(date)
			payload := map[string]any{
				"date":             date.String(),
				"sunrise_epoch_ms": rise,
				"sunrise_utc":      civil.FormatEpochMs(big.NewInt(rise)),
			}
			text := fmt.Sprintf("sunrise on %s: %s (epoch-ms %d)",
				date, civil.FormatEpochMs(big.NewInt(rise)), rise)
			return env.formatter(opts, cmd).Success(payload, text)
		},
	}
}
