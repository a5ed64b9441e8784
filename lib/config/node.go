package config

import (
	"os"

	"github.com/go-i2p/logger"
)

// NodeConfig exposes typed accessors over node.properties.
type NodeConfig struct {
	base *ConfigBase
	exit func(code int)
}

// NodeOption configures a NodeConfig.
type NodeOption func(*NodeConfig)

// WithExitFunc replaces os.Exit as the function NodeMemoryGb calls when the
// resolved memory size is zero.
func WithExitFunc(exit func(code int)) NodeOption {
	return func(n *NodeConfig) {
		if exit != nil {
			n.exit = exit
		}
	}
}

// NewNodeConfig wraps base. A nil base is replaced by an empty immutable
// store.
func NewNodeConfig(base *ConfigBase, opts ...NodeOption) *NodeConfig {
	if base == nil {
		base = NewConfigBase(Immutable)
	}
	n := &NodeConfig{
		base: base,
		exit: os.Exit,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Base returns the underlying store.
func (n *NodeConfig) Base() *ConfigBase {
	return n.base
}

func (n *NodeConfig) NodeEnvironment() (string, error) {
	return Required[string](n.base, NodeEnvironmentKey)
}

func (n *NodeConfig) NodeID() (string, error) {
	return Required[string](n.base, NodeIDKey)
}

func (n *NodeConfig) NodeLocation() (string, error) {
	return Required[string](n.base, NodeLocationKey)
}

// NodeIP returns node.ip, or the result of fallback when it is not set.
// With neither it fails with ErrMissingPropertyNoFallback.
func (n *NodeConfig) NodeIP(fallback func() (string, error)) (string, error) {
	ip, ok, err := Optional[string](n.base, NodeIPKey)
	if err != nil {
		return "", err
	}
	if ok {
		return ip, nil
	}
	if fallback == nil {
		return "", missingNoFallback(NodeIPKey, "node IP")
	}
	return fallback()
}

// NodeMemoryGb returns node.memory_gb, or the result of fallback when it is
// not set. With neither it fails with ErrMissingPropertyNoFallback.
//
// A resolved size of zero is not recoverable: it is logged and the process
// exits with status 1.
func (n *NodeConfig) NodeMemoryGb(fallback func() (uint64, error)) (uint64, error) {
	memGb, ok, err := Optional[uint64](n.base, NodeMemoryGbKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		if fallback == nil {
			return 0, missingNoFallback(NodeMemoryGbKey, "node memory GB")
		}
		memGb, err = fallback()
		if err != nil {
			return 0, err
		}
	}
	if memGb == 0 {
		source := "fallback"
		if ok {
			source = "property"
		}
		log.WithFields(logger.Fields{
			"at":     "NodeConfig.NodeMemoryGb",
			"reason": "zero_node_memory",
			"key":    NodeMemoryGbKey,
			"source": source,
		}).Error(ErrInvalidNodeMemory.Error())
		n.exit(1)
		// exit replacements in tests may return; never hand out zero.
		return 0, configError("invalid_node_memory").
			With("key", NodeMemoryGbKey).
			Wrapf(ErrInvalidNodeMemory, "node memory size resolved to 0")
	}
	return memGb, nil
}
