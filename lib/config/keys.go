package config

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// File names the loader looks for inside the etc directory. Initialize also
// uses them to decide which allow-list a property file is checked against.
const (
	SystemConfigFile = "config.properties"
	NodeConfigFile   = "node.properties"
)

// System property keys (config.properties).
const (
	// MutableConfigKey selects the mutable store when set to true.
	// Default: false
	MutableConfigKey = "mutable-config"

	PrestoVersionKey                  = "presto.version"
	HTTPServerHTTPPortKey             = "http-server.http.port"
	HTTPServerReusePortKey            = "http-server.reuse-port"
	DiscoveryURIKey                   = "discovery.uri"
	MaxDriversPerTaskKey              = "max-drivers-per-task"
	ConcurrentLifespansPerTaskKey     = "concurrent-lifespans-per-task"
	HTTPExecThreadsKey                = "http_exec_threads"
	HTTPServerHTTPSPortKey            = "http-server.https.port"
	HTTPServerHTTPSEnabledKey         = "http-server.https.enabled"
	HTTPSSupportedCiphersKey          = "https-supported-ciphers"
	HTTPSCertPathKey                  = "https-cert-path"
	HTTPSKeyPathKey                   = "https-key-path"
	HTTPSClientCertAndKeyPathKey      = "https-client-cert-key-path"
	NumIOThreadsKey                   = "num-io-threads"
	NumConnectorIOThreadsKey          = "num-connector-io-threads"
	NumQueryThreadsKey                = "num-query-threads"
	NumSpillThreadsKey                = "num-spill-threads"
	SpillerSpillPathKey               = "spiller-spill-path"
	ShutdownOnsetSecKey               = "shutdown-onset-sec"
	SystemMemoryGbKey                 = "system-memory-gb"
	AsyncCacheSsdGbKey                = "async-cache-ssd-gb"
	AsyncCacheSsdCheckpointGbKey      = "async-cache-ssd-checkpoint-gb"
	AsyncCacheSsdPathKey              = "async-cache-ssd-path"
	AsyncCacheSsdDisableFileCowKey    = "async-cache-ssd-disable-file-cow"
	EnableSerializedPageChecksumKey   = "enable-serialized-page-checksum"
	UseMmapArenaKey                   = "use-mmap-arena"
	MmapArenaCapacityRatioKey         = "mmap-arena-capacity-ratio"
	UseMmapAllocatorKey               = "use-mmap-allocator"
	EnableTaskLoggingKey              = "enable_velox_task_logging"
	EnableExpressionLoggingKey        = "enable_velox_expression_logging"
	LocalShuffleMaxPartitionBytesKey  = "shuffle.local.max-partition-bytes"
	ShuffleNameKey                    = "shuffle.name"
	HTTPEnableAccessLogKey            = "http-server.enable-access-log"
	HTTPEnableStatsFilterKey          = "http-server.enable-stats-filter"
	RegisterTestFunctionsKey          = "register-test-functions"
	HTTPMaxAllocateBytesKey           = "http-server.max-allocate-bytes"
	QueryMaxMemoryPerNodeKey          = "query.max-memory-per-node"
	EnableMemoryLeakCheckKey          = "enable-memory-leak-check"
	RemoteFunctionServerThriftPortKey = "remote-function-server.thrift.port"
)

// Node property keys (node.properties).
const (
	NodeEnvironmentKey = "node.environment"
	NodeIDKey          = "node.id"
	NodeIPKey          = "node.ip"
	NodeLocationKey    = "node.location"
	NodeMemoryGbKey    = "node.memory_gb"
)

// Defaults for optional system properties.
const (
	DefaultHTTPServerReusePort           = false
	DefaultMaxDriversPerTask             = int32(16)
	DefaultConcurrentLifespansPerTask    = int32(1)
	DefaultHTTPExecThreads               = int32(8)
	DefaultHTTPServerHTTPSEnabled        = false
	DefaultHTTPSSupportedCiphers         = "AES128-SHA,AES128-SHA256,AES256-GCM-SHA384"
	DefaultNumIOThreads                  = int32(30)
	DefaultNumConnectorIOThreads         = int32(10)
	DefaultShutdownOnsetSec              = int32(10)
	DefaultSystemMemoryGb                = int32(40)
	DefaultAsyncCacheSsdGb               = uint64(0)
	DefaultAsyncCacheSsdCheckpointGb     = uint64(0)
	DefaultAsyncCacheSsdPath             = "/mnt/flash/async_cache."
	DefaultAsyncCacheSsdDisableFileCow   = false
	DefaultEnableSerializedPageChecksum  = true
	DefaultUseMmapArena                  = false
	DefaultMmapArenaCapacityRatio        = int32(10)
	DefaultUseMmapAllocator              = true
	DefaultEnableTaskLogging             = false
	DefaultEnableExpressionLogging       = false
	DefaultLocalShuffleMaxPartitionBytes = uint32(268435456)
	DefaultShuffleName                   = ""
	DefaultHTTPEnableAccessLog           = true
	DefaultHTTPEnableStatsFilter         = false
	DefaultRegisterTestFunctions         = false
	DefaultHTTPMaxAllocateBytes          = uint64(65536)
	DefaultQueryMaxMemoryPerNode         = uint64(4) << 30
	DefaultEnableMemoryLeakCheck         = true
)

var supportedSystemProperties = []string{
	MutableConfigKey,
	PrestoVersionKey,
	HTTPServerHTTPPortKey,
	HTTPServerReusePortKey,
	DiscoveryURIKey,
	MaxDriversPerTaskKey,
	ConcurrentLifespansPerTaskKey,
	HTTPExecThreadsKey,
	HTTPServerHTTPSPortKey,
	HTTPServerHTTPSEnabledKey,
	HTTPSSupportedCiphersKey,
	HTTPSCertPathKey,
	HTTPSKeyPathKey,
	HTTPSClientCertAndKeyPathKey,
	NumIOThreadsKey,
	NumConnectorIOThreadsKey,
	NumQueryThreadsKey,
	NumSpillThreadsKey,
	SpillerSpillPathKey,
	ShutdownOnsetSecKey,
	SystemMemoryGbKey,
	AsyncCacheSsdGbKey,
	AsyncCacheSsdCheckpointGbKey,
	AsyncCacheSsdPathKey,
	AsyncCacheSsdDisableFileCowKey,
	EnableSerializedPageChecksumKey,
	UseMmapArenaKey,
	MmapArenaCapacityRatioKey,
	UseMmapAllocatorKey,
	EnableTaskLoggingKey,
	EnableExpressionLoggingKey,
	LocalShuffleMaxPartitionBytesKey,
	ShuffleNameKey,
	HTTPEnableAccessLogKey,
	HTTPEnableStatsFilterKey,
	RegisterTestFunctionsKey,
	HTTPMaxAllocateBytesKey,
	QueryMaxMemoryPerNodeKey,
	EnableMemoryLeakCheckKey,
	RemoteFunctionServerThriftPortKey,
}

var supportedNodeProperties = []string{
	NodeEnvironmentKey,
	NodeIDKey,
	NodeIPKey,
	NodeLocationKey,
	NodeMemoryGbKey,
}

var (
	systemKeySet = mapset.NewSet(supportedSystemProperties...)
	nodeKeySet   = mapset.NewSet(supportedNodeProperties...)
)

// SupportedSystemProperties returns a copy of the system allow-list.
func SupportedSystemProperties() mapset.Set[string] {
	return systemKeySet.Clone()
}

// SupportedNodeProperties returns a copy of the node allow-list.
func SupportedNodeProperties() mapset.Set[string] {
	return nodeKeySet.Clone()
}
