// Package config provides typed, validated configuration for a query worker.
//
// # Property Files
//
// A worker reads two flat property files from its etc directory:
//
//   - config.properties: system-level settings (ports, thread pools, caches)
//   - node.properties: node identity (environment, id, ip, location, memory)
//
// Each file is loaded into a ConfigBase. At load time every entry is checked
// against the allow-list for that file kind; recognized keys are logged at
// info level and unrecognized keys at warn level. Unrecognized keys are still
// stored and readable.
//
// # Mutability
//
// A ConfigBase is Immutable unless its file sets mutable-config=true. The
// mode is fixed for the lifetime of the loaded snapshot and SetValue on an
// Immutable store fails with ErrConfigNotMutable. The QueryConfig keeps its
// own override map and accepts writes only when the system config was
// mutable when the QueryConfig was built.
//
// # Typed Access
//
// SystemConfig and NodeConfig expose one accessor per property. An accessor
// either requires its property, falls back to a documented default, or asks
// the caller for a fallback function (node.ip, node.memory_gb). Capacity
// values such as query.max-memory-per-node use binary units: "1kB" is 1024
// bytes.
//
// Usage:
//
//	ctx, err := config.Load("etc")
//	if err != nil {
//	    return err
//	}
//	port, err := ctx.System.HTTPServerHTTPPort()
package config
