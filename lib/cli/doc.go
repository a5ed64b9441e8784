// Package cli implements the workerconf command line tool.
//
// Commands:
//
//	workerconf check     load the etc directory and resolve every property
//	workerconf show      print the resolved configuration as YAML
//	workerconf capacity  convert a capacity string such as 10GB
//
// The etc directory defaults to ./etc and can be set with --etc-dir or the
// WORKERCONF_ETC_DIR environment variable. Logging is controlled by
// DEBUG_I2P (debug, warn or error).
package cli
