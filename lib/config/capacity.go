package config

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// CapacityUnit is the unit of a human-readable capacity string such as "10GB".
// All units are binary: a kilobyte is 1024 bytes.
type CapacityUnit int

const (
	// Byte is 2^0 bytes, written "B".
	Byte CapacityUnit = iota

	// Kilobyte is 2^10 bytes, written "kB".
	Kilobyte

	// Megabyte is 2^20 bytes, written "MB".
	Megabyte

	// Gigabyte is 2^30 bytes, written "GB".
	Gigabyte

	// Terabyte is 2^40 bytes, written "TB".
	Terabyte

	// Petabyte is 2^50 bytes, written "PB".
	Petabyte
)

var capacityPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([a-zA-Z]+)\s*$`)

// capacityUnits is ordered from largest to smallest so FormatCapacity picks
// the largest unit that divides evenly.
var capacityUnits = []CapacityUnit{Petabyte, Terabyte, Gigabyte, Megabyte, Kilobyte, Byte}

// String returns the unit token accepted by ParseCapacityUnit.
func (u CapacityUnit) String() string {
	switch u {
	case Byte:
		return "B"
	case Kilobyte:
		return "kB"
	case Megabyte:
		return "MB"
	case Gigabyte:
		return "GB"
	case Terabyte:
		return "TB"
	case Petabyte:
		return "PB"
	default:
		return fmt.Sprintf("CapacityUnit(%d)", int(u))
	}
}

// Bytes returns the number of bytes in one unit.
func (u CapacityUnit) Bytes() float64 {
	switch u {
	case Byte:
		return 1
	case Kilobyte:
		return math.Exp2(10)
	case Megabyte:
		return math.Exp2(20)
	case Gigabyte:
		return math.Exp2(30)
	case Terabyte:
		return math.Exp2(40)
	case Petabyte:
		return math.Exp2(50)
	default:
		return 0
	}
}

// ParseCapacityUnit maps a unit token to its CapacityUnit. Matching is
// case-sensitive: "kB" is valid, "KB" and "kb" are not.
func ParseCapacityUnit(s string) (CapacityUnit, error) {
	switch s {
	case "B":
		return Byte, nil
	case "kB":
		return Kilobyte, nil
	case "MB":
		return Megabyte, nil
	case "GB":
		return Gigabyte, nil
	case "TB":
		return Terabyte, nil
	case "PB":
		return Petabyte, nil
	}
	return Byte, configError("invalid_unit").
		With("unit", s).
		Wrapf(ErrInvalidUnit, "invalid capacity unit '%s'", s)
}

// ToCapacity converts a capacity string like "10GB" or "1.5 MB" into a count
// of the requested unit. The conversion runs in float64 and the result is
// truncated toward zero.
func ToCapacity(from string, to CapacityUnit) (uint64, error) {
	m := capacityPattern.FindStringSubmatch(from)
	if m == nil {
		return 0, configError("invalid_format").
			With("value", from).
			Wrapf(ErrInvalidFormat, "invalid capacity string '%s'", from)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, configError("invalid_format").
			With("value", from).
			Wrapf(ErrInvalidFormat, "invalid capacity string '%s': %v", from, err)
	}
	unit, err := ParseCapacityUnit(m[2])
	if err != nil {
		return 0, err
	}
	if to.Bytes() == 0 {
		return 0, configError("invalid_unit").
			With("unit", int(to)).
			Wrapf(ErrInvalidUnit, "invalid capacity unit '%s'", to)
	}
	result := value * (unit.Bytes() / to.Bytes())
	if result >= maxCapacity {
		return 0, configError("invalid_format").
			With("value", from).
			Wrapf(ErrInvalidFormat, "capacity string '%s' does not fit in 64 bits", from)
	}
	return uint64(result), nil
}

// maxCapacity is 2^64, the first value a uint64 cannot hold.
var maxCapacity = math.Ldexp(1, 64)

// FormatCapacity renders a byte count using the largest unit that divides it
// exactly, so the result parses back to the same value with ToCapacity.
func FormatCapacity(bytes uint64) string {
	if bytes == 0 {
		return "0B"
	}
	for _, u := range capacityUnits {
		size := uint64(u.Bytes())
		if bytes%size == 0 {
			return strconv.FormatUint(bytes/size, 10) + u.String()
		}
	}
	return strconv.FormatUint(bytes, 10) + Byte.String()
}
