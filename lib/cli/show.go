package cli

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-i2p/go-workerconf/lib/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// showOutput is the document printed by the show command.
type showOutput struct {
	EtcDir      string              `yaml:"etc_dir"`
	SystemMode  string              `yaml:"system_mode"`
	System      config.SystemValues `yaml:"system"`
	Node        config.NodeValues   `yaml:"node"`
	Unsupported map[string][]string `yaml:"unsupported,omitempty"`
}

func newShowCommand(v *viper.Viper, opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := loadContext(v, opts)
			if err != nil {
				return err
			}

			system, systemErr := ctx.System.Resolve()
			node, nodeErr := ctx.Node.Resolve(opts.NodeIP, opts.NodeMemoryGb)

			out := showOutput{
				EtcDir:     ctx.EtcDir,
				SystemMode: ctx.System.Base().Mode().String(),
				System:     system,
				Node:       node,
			}
			addUnsupported(&out, "system", ctx.System.Base().Values(), config.SupportedSystemProperties)
			addUnsupported(&out, "node", ctx.Node.Base().Values(), config.SupportedNodeProperties)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}

			if systemErr != nil {
				return systemErr
			}
			return nodeErr
		},
	}
}

func addUnsupported(out *showOutput, kind string, values config.RawProperties, known func() mapset.Set[string]) {
	_, unsupported := config.Classify(values, known())
	if len(unsupported) == 0 {
		return
	}
	if out.Unsupported == nil {
		out.Unsupported = make(map[string][]string)
	}
	for _, p := range unsupported {
		out.Unsupported[kind] = append(out.Unsupported[kind], p.String())
	}
}
