// Package hostinfo detects host facts used as fallbacks when node.properties
// leaves them unset: the node IP address, the memory available to the
// process and the number of hardware threads.
package hostinfo
