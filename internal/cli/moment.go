package cli

import (
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaiklok/kairos/internal/kairos"
)

// NewMomentCommand creates the "moment" command: assemble the response for
// one instant, given as a signed ISO datetime or a raw epoch-ms integer.
func NewMomentCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "moment <instant>",
		Short: "Convert an instant to its kairos moment",
		Long: `Converts an instant to the pulse clock and both calendars.

The instant is a signed ISO datetime with a zone offset, e.g.
"2024-05-10T06:45:41.888Z" or "-0044-03-15T12:00:00Z", or a raw epoch
millisecond integer of any magnitude.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnvironment(opts)
			if err != nil {
				return err
			}
			defer env.close()

			resp, err := kairos.MomentFromUTC(instantArg(args[0]), env.calc)
			if err != nil {
				f := env.formatter(opts, cmd)
				_ = f.Error("INVALID_TIMESTAMP", err.Error())
				return WrapExitError(ExitFailure, "invalid instant", err)
			}
			return respond(env.formatter(opts, cmd), resp)
		},
	}
}

// instantArg lets a bare integer argument mean epoch milliseconds; negative
// ISO datetimes also start with '-', so anything containing 'T' stays a
// string.
func instantArg(arg string) any {
	if strings.ContainsAny(arg, "T:") {
		return arg
	}
	if ms, ok := new(big.Int).SetString(arg, 10); ok {
		return ms
	}
	return arg
}
