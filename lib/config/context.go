package config

import (
	"github.com/go-i2p/logger"
	"github.com/hashicorp/go-multierror"
)

// Context bundles the three configuration facades of a worker. It is built
// once at startup and handed to every component that needs configuration.
type Context struct {
	EtcDir string
	System *SystemConfig
	Node   *NodeConfig
	Query  *QueryConfig
}

type loadOptions struct {
	reader     PropertyReader
	systemOpts []SystemOption
	nodeOpts   []NodeOption
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithReader replaces the property file reader.
func WithReader(r PropertyReader) LoadOption {
	return func(o *loadOptions) {
		if r != nil {
			o.reader = r
		}
	}
}

// WithSystemOptions passes options through to NewSystemConfig.
func WithSystemOptions(opts ...SystemOption) LoadOption {
	return func(o *loadOptions) {
		o.systemOpts = append(o.systemOpts, opts...)
	}
}

// WithNodeOptions passes options through to NewNodeConfig.
func WithNodeOptions(opts ...NodeOption) LoadOption {
	return func(o *loadOptions) {
		o.nodeOpts = append(o.nodeOpts, opts...)
	}
}

// Load reads config.properties and node.properties from etcDir and builds a
// Context. The system file decides whether the system store and the query
// overrides are mutable.
func Load(etcDir string, opts ...LoadOption) (*Context, error) {
	o := loadOptions{reader: FileReader{}}
	for _, opt := range opts {
		opt(&o)
	}

	systemBase, err := loadBase(etcDir, SystemConfigFile, o.reader)
	if err != nil {
		return nil, err
	}
	nodeBase, err := loadBase(etcDir, NodeConfigFile, o.reader)
	if err != nil {
		return nil, err
	}

	ctx, err := NewContext(
		NewSystemConfig(systemBase, o.systemOpts...),
		NewNodeConfig(nodeBase, o.nodeOpts...),
	)
	if err != nil {
		return nil, err
	}
	ctx.EtcDir = etcDir

	log.WithFields(logger.Fields{
		"at":            "Load",
		"phase":         "startup",
		"etc_dir":       etcDir,
		"system_mode":   systemBase.Mode().String(),
		"query_mutable": ctx.Query.IsMutable(),
	}).Info("loaded worker configuration")
	return ctx, nil
}

func loadBase(etcDir, name string, reader PropertyReader) (*ConfigBase, error) {
	path, err := ResolveEtcFile(etcDir, name)
	if err != nil {
		return nil, err
	}
	warnIfInsecure(path)
	base := NewConfigBase(Immutable, WithPropertyReader(reader))
	if err := base.Initialize(path); err != nil {
		return nil, err
	}
	return base, nil
}

// NewContext assembles a Context from already initialized facades. The
// query facade captures system's mutable-config flag here.
func NewContext(system *SystemConfig, node *NodeConfig) (*Context, error) {
	if system == nil {
		system = NewSystemConfig(nil)
	}
	if node == nil {
		node = NewNodeConfig(nil)
	}
	query, err := NewQueryConfig(system)
	if err != nil {
		return nil, err
	}
	return &Context{
		System: system,
		Node:   node,
		Query:  query,
	}, nil
}

// Check resolves every system and node accessor and returns all failures
// together. A zero node memory size still terminates the process.
func (c *Context) Check(ipFallback func() (string, error), memFallback func() (uint64, error)) error {
	var errs *multierror.Error
	if _, err := c.System.Resolve(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if _, err := c.Node.Resolve(ipFallback, memFallback); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}
