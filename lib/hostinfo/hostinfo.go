package hostinfo

import (
	"net"
	"runtime"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

const bytesPerGb = uint64(1) << 30

// interfaceAddrs is replaced in tests.
var interfaceAddrs = func() ([]net.Addr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	var addrs []net.Addr
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		ifAddrs, err := iface.Addrs()
		if err != nil {
			log.WithError(err).WithField("interface", iface.Name).Debug("skipping interface")
			continue
		}
		addrs = append(addrs, ifAddrs...)
	}
	return addrs, nil
}

// memoryLimit is replaced in tests.
var memoryLimit = memlimit.ApplyFallback(memlimit.FromCgroup, memlimit.FromSystem)

// DefaultNodeIP returns the first non-loopback IPv4 address of an interface
// that is up.
func DefaultNodeIP() (string, error) {
	addrs, err := interfaceAddrs()
	if err != nil {
		return "", oops.Wrapf(err, "listing interface addresses")
	}
	for _, addr := range addrs {
		var ip net.IP
		switch a := addr.(type) {
		case *net.IPNet:
			ip = a.IP
		case *net.IPAddr:
			ip = a.IP
		}
		if ip == nil || ip.IsLoopback() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			log.WithFields(logger.Fields{
				"at": "DefaultNodeIP",
				"ip": v4.String(),
			}).Debug("detected node IP")
			return v4.String(), nil
		}
	}
	return "", oops.Errorf("no non-loopback IPv4 address found")
}

// DefaultNodeMemoryGb returns the memory limit of the process in whole GiB,
// taken from the cgroup limit when there is one and from total system memory
// otherwise.
func DefaultNodeMemoryGb() (uint64, error) {
	limit, err := memoryLimit()
	if err != nil {
		return 0, oops.Wrapf(err, "detecting memory limit")
	}
	gb := limit / bytesPerGb
	log.WithFields(logger.Fields{
		"at":          "DefaultNodeMemoryGb",
		"limit_bytes": limit,
		"memory_gb":   gb,
	}).Debug("detected node memory")
	return gb, nil
}

// HardwareConcurrency returns the number of logical CPUs.
func HardwareConcurrency() int {
	return runtime.NumCPU()
}
