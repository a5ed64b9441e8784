package cli

import (
	"strings"

	"github.com/go-i2p/go-workerconf/lib/config"
	"github.com/go-i2p/go-workerconf/lib/hostinfo"
	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log = logger.GetGoI2PLogger()

const (
	envPrefix     = "WORKERCONF"
	etcDirKey     = "etc-dir"
	defaultEtcDir = "etc"
)

// Options holds the host-dependent hooks the commands use. Zero fields are
// filled from DefaultOptions.
type Options struct {
	NodeIP              func() (string, error)
	NodeMemoryGb        func() (uint64, error)
	HardwareConcurrency func() int
	Exit                func(code int)
}

// DefaultOptions detects node IP, memory and CPU count from the host.
func DefaultOptions() Options {
	return Options{
		NodeIP:              hostinfo.DefaultNodeIP,
		NodeMemoryGb:        hostinfo.DefaultNodeMemoryGb,
		HardwareConcurrency: hostinfo.HardwareConcurrency,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.NodeIP == nil {
		o.NodeIP = d.NodeIP
	}
	if o.NodeMemoryGb == nil {
		o.NodeMemoryGb = d.NodeMemoryGb
	}
	if o.HardwareConcurrency == nil {
		o.HardwareConcurrency = d.HardwareConcurrency
	}
	return o
}

// NewRootCommand builds the workerconf command tree.
func NewRootCommand(opts Options) *cobra.Command {
	opts = opts.withDefaults()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(etcDirKey, defaultEtcDir)

	root := &cobra.Command{
		Use:           "workerconf",
		Short:         "Inspect and validate query worker configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(etcDirKey, defaultEtcDir, "directory holding config.properties and node.properties")
	if err := v.BindPFlag(etcDirKey, root.PersistentFlags().Lookup(etcDirKey)); err != nil {
		log.WithError(err).Error("failed to bind etc-dir flag")
	}

	root.AddCommand(
		newCheckCommand(v, opts),
		newShowCommand(v, opts),
		newCapacityCommand(),
	)
	return root
}

// loadContext reads the etc directory selected by flag or environment.
func loadContext(v *viper.Viper, opts Options) (*config.Context, error) {
	etcDir := v.GetString(etcDirKey)
	loadOpts := []config.LoadOption{
		config.WithSystemOptions(config.WithHardwareConcurrency(opts.HardwareConcurrency)),
	}
	if opts.Exit != nil {
		loadOpts = append(loadOpts, config.WithNodeOptions(config.WithExitFunc(opts.Exit)))
	}
	return config.Load(etcDir, loadOpts...)
}
