package cli

import (
	"math/big"

	"github.com/spf13/cobra"

	"github.com/kaiklok/kairos/internal/kairos"
)

// NewPulseCommand creates the "pulse" command: assemble the response for a
// whole-pulse index, the integer form shared by external consumers.
func NewPulseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pulse <index>",
		Short: "Convert a pulse index to its kairos moment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return WrapExitError(ExitCommandError, "pulse index must be a base-10 integer", nil)
			}

			env, err := buildEnvironment(opts)
			if err != nil {
				return err
			}
			defer env.close()

			return respond(env.formatter(opts, cmd), kairos.MomentFromPulse(idx, env.calc))
		},
	}
}
