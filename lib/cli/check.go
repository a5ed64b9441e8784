package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-i2p/go-workerconf/lib/config"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckCommand(v *viper.Viper, opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load the etc directory and resolve every property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := loadContext(v, opts)
			if err != nil {
				return err
			}
			if err := ctx.Check(opts.NodeIP, opts.NodeMemoryGb); err != nil {
				log.WithError(err).WithFields(logger.Fields{
					"at":      "check",
					"etc_dir": ctx.EtcDir,
				}).Error("configuration check failed")
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration in %s is valid\n", ctx.EtcDir)
			printKeys(cmd.OutOrStdout(), config.SystemConfigFile, ctx.System.Base().Keys())
			printKeys(cmd.OutOrStdout(), config.NodeConfigFile, ctx.Node.Base().Keys())
			return nil
		},
	}
}

// printKeys lists the property names set in one file.
func printKeys(w io.Writer, file string, keys []string) {
	fmt.Fprintf(w, "  %s: %d properties (%s)\n", file, len(keys), strings.Join(keys, ", "))
}
