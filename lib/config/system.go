package config

import (
	"net/netip"
	"runtime"
)

// SystemConfig exposes typed accessors over config.properties.
//
// Accessors for required properties fail with ErrMissingRequiredProperty when
// the key is absent. Accessors with a default return it when the key is
// absent. Every accessor fails with ErrTypeMismatch when the stored value
// does not parse.
type SystemConfig struct {
	base                *ConfigBase
	hardwareConcurrency func() int
}

// SystemOption configures a SystemConfig.
type SystemOption func(*SystemConfig)

// WithHardwareConcurrency replaces runtime.NumCPU as the source of the
// thread-count defaults.
func WithHardwareConcurrency(f func() int) SystemOption {
	return func(s *SystemConfig) {
		if f != nil {
			s.hardwareConcurrency = f
		}
	}
}

// NewSystemConfig wraps base. A nil base is replaced by an empty immutable
// store.
func NewSystemConfig(base *ConfigBase, opts ...SystemOption) *SystemConfig {
	if base == nil {
		base = NewConfigBase(Immutable)
	}
	s := &SystemConfig{
		base:                base,
		hardwareConcurrency: runtime.NumCPU,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Base returns the underlying store.
func (s *SystemConfig) Base() *ConfigBase {
	return s.base
}

// SetValue writes through to the underlying store, which must be Mutable.
func (s *SystemConfig) SetValue(key, value string) (string, bool, error) {
	return s.base.SetValue(key, value)
}

func (s *SystemConfig) PrestoVersion() (string, error) {
	return Required[string](s.base, PrestoVersionKey)
}

func (s *SystemConfig) MutableConfig() (bool, error) {
	return OptionalOr(s.base, MutableConfigKey, false)
}

func (s *SystemConfig) HTTPServerHTTPPort() (int, error) {
	return Required[int](s.base, HTTPServerHTTPPortKey)
}

func (s *SystemConfig) HTTPServerReusePort() (bool, error) {
	return OptionalOr(s.base, HTTPServerReusePortKey, DefaultHTTPServerReusePort)
}

func (s *SystemConfig) HTTPServerHTTPSPort() (int, error) {
	return Required[int](s.base, HTTPServerHTTPSPortKey)
}

func (s *SystemConfig) HTTPServerHTTPSEnabled() (bool, error) {
	return OptionalOr(s.base, HTTPServerHTTPSEnabledKey, DefaultHTTPServerHTTPSEnabled)
}

func (s *SystemConfig) HTTPSSupportedCiphers() (string, error) {
	return OptionalOr(s.base, HTTPSSupportedCiphersKey, DefaultHTTPSSupportedCiphers)
}

func (s *SystemConfig) HTTPSCertPath() (string, bool, error) {
	return Optional[string](s.base, HTTPSCertPathKey)
}

func (s *SystemConfig) HTTPSKeyPath() (string, bool, error) {
	return Optional[string](s.base, HTTPSKeyPathKey)
}

func (s *SystemConfig) HTTPSClientCertAndKeyPath() (string, bool, error) {
	return Optional[string](s.base, HTTPSClientCertAndKeyPathKey)
}

func (s *SystemConfig) DiscoveryURI() (string, bool, error) {
	return Optional[string](s.base, DiscoveryURIKey)
}

// RemoteFunctionServerLocation returns [::1]:port when the remote function
// server port is configured.
func (s *SystemConfig) RemoteFunctionServerLocation() (netip.AddrPort, bool, error) {
	port, ok, err := Optional[uint16](s.base, RemoteFunctionServerThriftPortKey)
	if err != nil || !ok {
		return netip.AddrPort{}, false, err
	}
	return netip.AddrPortFrom(netip.IPv6Loopback(), port), true, nil
}

func (s *SystemConfig) MaxDriversPerTask() (int32, error) {
	return OptionalOr(s.base, MaxDriversPerTaskKey, DefaultMaxDriversPerTask)
}

func (s *SystemConfig) ConcurrentLifespansPerTask() (int32, error) {
	return OptionalOr(s.base, ConcurrentLifespansPerTaskKey, DefaultConcurrentLifespansPerTask)
}

func (s *SystemConfig) HTTPExecThreads() (int32, error) {
	return OptionalOr(s.base, HTTPExecThreadsKey, DefaultHTTPExecThreads)
}

func (s *SystemConfig) NumIOThreads() (int32, error) {
	return OptionalOr(s.base, NumIOThreadsKey, DefaultNumIOThreads)
}

func (s *SystemConfig) NumConnectorIOThreads() (int32, error) {
	return OptionalOr(s.base, NumConnectorIOThreadsKey, DefaultNumConnectorIOThreads)
}

// NumQueryThreads defaults to four threads per hardware thread.
func (s *SystemConfig) NumQueryThreads() (int32, error) {
	return OptionalOr(s.base, NumQueryThreadsKey, int32(s.hardwareConcurrency()*4))
}

// NumSpillThreads defaults to one thread per hardware thread.
func (s *SystemConfig) NumSpillThreads() (int32, error) {
	return OptionalOr(s.base, NumSpillThreadsKey, int32(s.hardwareConcurrency()))
}

func (s *SystemConfig) SpillerSpillPath() (string, error) {
	return OptionalOr(s.base, SpillerSpillPathKey, "")
}

func (s *SystemConfig) ShutdownOnsetSec() (int32, error) {
	return OptionalOr(s.base, ShutdownOnsetSecKey, DefaultShutdownOnsetSec)
}

func (s *SystemConfig) SystemMemoryGb() (int32, error) {
	return OptionalOr(s.base, SystemMemoryGbKey, DefaultSystemMemoryGb)
}

func (s *SystemConfig) AsyncCacheSsdGb() (uint64, error) {
	return OptionalOr(s.base, AsyncCacheSsdGbKey, DefaultAsyncCacheSsdGb)
}

func (s *SystemConfig) AsyncCacheSsdCheckpointGb() (uint64, error) {
	return OptionalOr(s.base, AsyncCacheSsdCheckpointGbKey, DefaultAsyncCacheSsdCheckpointGb)
}

func (s *SystemConfig) AsyncCacheSsdPath() (string, error) {
	return OptionalOr(s.base, AsyncCacheSsdPathKey, DefaultAsyncCacheSsdPath)
}

func (s *SystemConfig) AsyncCacheSsdDisableFileCow() (bool, error) {
	return OptionalOr(s.base, AsyncCacheSsdDisableFileCowKey, DefaultAsyncCacheSsdDisableFileCow)
}

// LocalShuffleMaxPartitionBytes is stored as a 32-bit value and widened.
func (s *SystemConfig) LocalShuffleMaxPartitionBytes() (uint64, error) {
	v, err := OptionalOr(s.base, LocalShuffleMaxPartitionBytesKey, DefaultLocalShuffleMaxPartitionBytes)
	return uint64(v), err
}

func (s *SystemConfig) ShuffleName() (string, error) {
	return OptionalOr(s.base, ShuffleNameKey, DefaultShuffleName)
}

func (s *SystemConfig) EnableSerializedPageChecksum() (bool, error) {
	return OptionalOr(s.base, EnableSerializedPageChecksumKey, DefaultEnableSerializedPageChecksum)
}

func (s *SystemConfig) EnableTaskLogging() (bool, error) {
	return OptionalOr(s.base, EnableTaskLoggingKey, DefaultEnableTaskLogging)
}

func (s *SystemConfig) EnableExpressionLogging() (bool, error) {
	return OptionalOr(s.base, EnableExpressionLoggingKey, DefaultEnableExpressionLogging)
}

func (s *SystemConfig) UseMmapArena() (bool, error) {
	return OptionalOr(s.base, UseMmapArenaKey, DefaultUseMmapArena)
}

func (s *SystemConfig) MmapArenaCapacityRatio() (int32, error) {
	return OptionalOr(s.base, MmapArenaCapacityRatioKey, DefaultMmapArenaCapacityRatio)
}

func (s *SystemConfig) UseMmapAllocator() (bool, error) {
	return OptionalOr(s.base, UseMmapAllocatorKey, DefaultUseMmapAllocator)
}

func (s *SystemConfig) EnableHTTPAccessLog() (bool, error) {
	return OptionalOr(s.base, HTTPEnableAccessLogKey, DefaultHTTPEnableAccessLog)
}

func (s *SystemConfig) EnableHTTPStatsFilter() (bool, error) {
	return OptionalOr(s.base, HTTPEnableStatsFilterKey, DefaultHTTPEnableStatsFilter)
}

func (s *SystemConfig) RegisterTestFunctions() (bool, error) {
	return OptionalOr(s.base, RegisterTestFunctionsKey, DefaultRegisterTestFunctions)
}

func (s *SystemConfig) HTTPMaxAllocateBytes() (uint64, error) {
	return OptionalOr(s.base, HTTPMaxAllocateBytesKey, DefaultHTTPMaxAllocateBytes)
}

// QueryMaxMemoryPerNode parses query.max-memory-per-node as a capacity
// string ("8GB") and returns bytes.
func (s *SystemConfig) QueryMaxMemoryPerNode() (uint64, error) {
	raw, ok := s.base.Get(QueryMaxMemoryPerNodeKey)
	if !ok {
		return DefaultQueryMaxMemoryPerNode, nil
	}
	bytes, err := ToCapacity(raw, Byte)
	if err != nil {
		return 0, configError("invalid_capacity").
			With("key", QueryMaxMemoryPerNodeKey).
			Wrapf(err, "property %q", QueryMaxMemoryPerNodeKey)
	}
	return bytes, nil
}

func (s *SystemConfig) EnableMemoryLeakCheck() (bool, error) {
	return OptionalOr(s.base, EnableMemoryLeakCheckKey, DefaultEnableMemoryLeakCheck)
}
