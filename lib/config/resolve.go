package config

import (
	"github.com/hashicorp/go-multierror"
)

// SystemValues is a fully resolved view of config.properties, defaults
// applied. Optional values without a default are nil when unset.
type SystemValues struct {
	PrestoVersion                 string  `yaml:"presto_version"`
	MutableConfig                 bool    `yaml:"mutable_config"`
	HTTPServerHTTPPort            int     `yaml:"http_server_http_port"`
	HTTPServerReusePort           bool    `yaml:"http_server_reuse_port"`
	HTTPServerHTTPSEnabled        bool    `yaml:"http_server_https_enabled"`
	HTTPServerHTTPSPort           *int    `yaml:"http_server_https_port,omitempty"`
	HTTPSSupportedCiphers         string  `yaml:"https_supported_ciphers"`
	HTTPSCertPath                 *string `yaml:"https_cert_path,omitempty"`
	HTTPSKeyPath                  *string `yaml:"https_key_path,omitempty"`
	HTTPSClientCertAndKeyPath     *string `yaml:"https_client_cert_key_path,omitempty"`
	DiscoveryURI                  *string `yaml:"discovery_uri,omitempty"`
	RemoteFunctionServerLocation  *string `yaml:"remote_function_server_location,omitempty"`
	MaxDriversPerTask             int32   `yaml:"max_drivers_per_task"`
	ConcurrentLifespansPerTask    int32   `yaml:"concurrent_lifespans_per_task"`
	HTTPExecThreads               int32   `yaml:"http_exec_threads"`
	NumIOThreads                  int32   `yaml:"num_io_threads"`
	NumConnectorIOThreads         int32   `yaml:"num_connector_io_threads"`
	NumQueryThreads               int32   `yaml:"num_query_threads"`
	NumSpillThreads               int32   `yaml:"num_spill_threads"`
	SpillerSpillPath              string  `yaml:"spiller_spill_path"`
	ShutdownOnsetSec              int32   `yaml:"shutdown_onset_sec"`
	SystemMemoryGb                int32   `yaml:"system_memory_gb"`
	AsyncCacheSsdGb               uint64  `yaml:"async_cache_ssd_gb"`
	AsyncCacheSsdCheckpointGb     uint64  `yaml:"async_cache_ssd_checkpoint_gb"`
	AsyncCacheSsdPath             string  `yaml:"async_cache_ssd_path"`
	AsyncCacheSsdDisableFileCow   bool    `yaml:"async_cache_ssd_disable_file_cow"`
	ShuffleName                   string  `yaml:"shuffle_name"`
	LocalShuffleMaxPartitionBytes uint64  `yaml:"local_shuffle_max_partition_bytes"`
	EnableSerializedPageChecksum  bool    `yaml:"enable_serialized_page_checksum"`
	EnableTaskLogging             bool    `yaml:"enable_velox_task_logging"`
	EnableExpressionLogging       bool    `yaml:"enable_velox_expression_logging"`
	UseMmapArena                  bool    `yaml:"use_mmap_arena"`
	MmapArenaCapacityRatio        int32   `yaml:"mmap_arena_capacity_ratio"`
	UseMmapAllocator              bool    `yaml:"use_mmap_allocator"`
	EnableHTTPAccessLog           bool    `yaml:"enable_http_access_log"`
	EnableHTTPStatsFilter         bool    `yaml:"enable_http_stats_filter"`
	RegisterTestFunctions         bool    `yaml:"register_test_functions"`
	HTTPMaxAllocateBytes          uint64  `yaml:"http_max_allocate_bytes"`
	QueryMaxMemoryPerNode         string  `yaml:"query_max_memory_per_node"`
	EnableMemoryLeakCheck         bool    `yaml:"enable_memory_leak_check"`
}

// NodeValues is a fully resolved view of node.properties.
type NodeValues struct {
	Environment string `yaml:"environment"`
	ID          string `yaml:"id"`
	IP          string `yaml:"ip"`
	Location    string `yaml:"location"`
	MemoryGb    uint64 `yaml:"memory_gb"`
}

// collector gathers accessor errors so a single Resolve call reports every
// bad property at once.
type collector struct {
	errs *multierror.Error
}

func (c *collector) add(err error) {
	if err != nil {
		c.errs = multierror.Append(c.errs, err)
	}
}

func (c *collector) err() error {
	return c.errs.ErrorOrNil()
}

func setOptional[T any](dst **T, value T, ok bool, err error, c *collector) {
	c.add(err)
	if ok && err == nil {
		v := value
		*dst = &v
	}
}

// Resolve evaluates every accessor. The returned values are usable even
// when err is non-nil; failed fields keep their zero value.
func (s *SystemConfig) Resolve() (SystemValues, error) {
	var v SystemValues
	var c collector
	var err error

	v.PrestoVersion, err = s.PrestoVersion()
	c.add(err)
	v.MutableConfig, err = s.MutableConfig()
	c.add(err)
	v.HTTPServerHTTPPort, err = s.HTTPServerHTTPPort()
	c.add(err)
	v.HTTPServerReusePort, err = s.HTTPServerReusePort()
	c.add(err)
	v.HTTPServerHTTPSEnabled, err = s.HTTPServerHTTPSEnabled()
	c.add(err)
	// The HTTPS port is only required once HTTPS is switched on.
	if v.HTTPServerHTTPSEnabled {
		port, err := s.HTTPServerHTTPSPort()
		setOptional(&v.HTTPServerHTTPSPort, port, true, err, &c)
	} else {
		port, ok, err := Optional[int](s.base, HTTPServerHTTPSPortKey)
		setOptional(&v.HTTPServerHTTPSPort, port, ok, err, &c)
	}
	v.HTTPSSupportedCiphers, err = s.HTTPSSupportedCiphers()
	c.add(err)

	str, ok, err := s.HTTPSCertPath()
	setOptional(&v.HTTPSCertPath, str, ok, err, &c)
	str, ok, err = s.HTTPSKeyPath()
	setOptional(&v.HTTPSKeyPath, str, ok, err, &c)
	str, ok, err = s.HTTPSClientCertAndKeyPath()
	setOptional(&v.HTTPSClientCertAndKeyPath, str, ok, err, &c)
	str, ok, err = s.DiscoveryURI()
	setOptional(&v.DiscoveryURI, str, ok, err, &c)

	location, ok, err := s.RemoteFunctionServerLocation()
	setOptional(&v.RemoteFunctionServerLocation, location.String(), ok, err, &c)

	v.MaxDriversPerTask, err = s.MaxDriversPerTask()
	c.add(err)
	v.ConcurrentLifespansPerTask, err = s.ConcurrentLifespansPerTask()
	c.add(err)
	v.HTTPExecThreads, err = s.HTTPExecThreads()
	c.add(err)
	v.NumIOThreads, err = s.NumIOThreads()
	c.add(err)
	v.NumConnectorIOThreads, err = s.NumConnectorIOThreads()
	c.add(err)
	v.NumQueryThreads, err = s.NumQueryThreads()
	c.add(err)
	v.NumSpillThreads, err = s.NumSpillThreads()
	c.add(err)
	v.SpillerSpillPath, err = s.SpillerSpillPath()
	c.add(err)
	v.ShutdownOnsetSec, err = s.ShutdownOnsetSec()
	c.add(err)
	v.SystemMemoryGb, err = s.SystemMemoryGb()
	c.add(err)
	v.AsyncCacheSsdGb, err = s.AsyncCacheSsdGb()
	c.add(err)
	v.AsyncCacheSsdCheckpointGb, err = s.AsyncCacheSsdCheckpointGb()
	c.add(err)
	v.AsyncCacheSsdPath, err = s.AsyncCacheSsdPath()
	c.add(err)
	v.AsyncCacheSsdDisableFileCow, err = s.AsyncCacheSsdDisableFileCow()
	c.add(err)
	v.ShuffleName, err = s.ShuffleName()
	c.add(err)
	v.LocalShuffleMaxPartitionBytes, err = s.LocalShuffleMaxPartitionBytes()
	c.add(err)
	v.EnableSerializedPageChecksum, err = s.EnableSerializedPageChecksum()
	c.add(err)
	v.EnableTaskLogging, err = s.EnableTaskLogging()
	c.add(err)
	v.EnableExpressionLogging, err = s.EnableExpressionLogging()
	c.add(err)
	v.UseMmapArena, err = s.UseMmapArena()
	c.add(err)
	v.MmapArenaCapacityRatio, err = s.MmapArenaCapacityRatio()
	c.add(err)
	v.UseMmapAllocator, err = s.UseMmapAllocator()
	c.add(err)
	v.EnableHTTPAccessLog, err = s.EnableHTTPAccessLog()
	c.add(err)
	v.EnableHTTPStatsFilter, err = s.EnableHTTPStatsFilter()
	c.add(err)
	v.RegisterTestFunctions, err = s.RegisterTestFunctions()
	c.add(err)
	v.HTTPMaxAllocateBytes, err = s.HTTPMaxAllocateBytes()
	c.add(err)
	maxMem, err := s.QueryMaxMemoryPerNode()
	c.add(err)
	if err == nil {
		v.QueryMaxMemoryPerNode = FormatCapacity(maxMem)
	}
	v.EnableMemoryLeakCheck, err = s.EnableMemoryLeakCheck()
	c.add(err)

	return v, c.err()
}

// Resolve evaluates every node accessor, using the fallbacks for node.ip and
// node.memory_gb when they are not set.
func (n *NodeConfig) Resolve(ipFallback func() (string, error), memFallback func() (uint64, error)) (NodeValues, error) {
	var v NodeValues
	var c collector
	var err error

	v.Environment, err = n.NodeEnvironment()
	c.add(err)
	v.ID, err = n.NodeID()
	c.add(err)
	v.IP, err = n.NodeIP(ipFallback)
	c.add(err)
	v.Location, err = n.NodeLocation()
	c.add(err)
	v.MemoryGb, err = n.NodeMemoryGb(memFallback)
	c.add(err)

	return v, c.err()
}
