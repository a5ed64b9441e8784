package cli

import (
	"fmt"

	"github.com/go-i2p/go-workerconf/lib/config"
	"github.com/spf13/cobra"
)

func newCapacityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <value> [unit]",
		Short: "Convert a capacity string such as 10GB to a count of unit (default B)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := config.Byte
			if len(args) == 2 {
				var err error
				unit, err = config.ParseCapacityUnit(args[1])
				if err != nil {
					return err
				}
			}
			n, err := config.ToCapacity(args[0], unit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}
