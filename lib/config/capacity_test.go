package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityUnitBytes(t *testing.T) {
	assert.Equal(t, float64(1), Byte.Bytes())
	assert.Equal(t, float64(1<<10), Kilobyte.Bytes())
	assert.Equal(t, float64(1<<20), Megabyte.Bytes())
	assert.Equal(t, float64(1<<30), Gigabyte.Bytes())
	assert.Equal(t, float64(1<<40), Terabyte.Bytes())
	assert.Equal(t, float64(1<<50), Petabyte.Bytes())
}

func TestParseCapacityUnit_RoundTrip(t *testing.T) {
	for _, u := range []CapacityUnit{Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte} {
		got, err := ParseCapacityUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
}

func TestParseCapacityUnit_CaseSensitive(t *testing.T) {
	for _, s := range []string{"KB", "kb", "b", "gb", "Gb", "mb", "XB", "KiB", ""} {
		_, err := ParseCapacityUnit(s)
		assert.ErrorIs(t, err, ErrInvalidUnit, s)
	}
}

func TestToCapacity(t *testing.T) {
	tests := []struct {
		in   string
		to   CapacityUnit
		want uint64
	}{
		{"10GB", Byte, 10 << 30},
		{"5kB", Byte, 5 << 10},
		{"1PB", Gigabyte, 1048576},
		{"1B", Byte, 1},
		{"0B", Byte, 0},
		{"  7 MB  ", Byte, 7 << 20},
		{"3TB", Terabyte, 3},
		{"2048MB", Gigabyte, 2},
		{"1.5kB", Byte, 1536},
		{"1.5B", Byte, 1},
		{"512MB", Gigabyte, 0},
		{"1kB", Kilobyte, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in+"->"+tt.to.String(), func(t *testing.T) {
			got, err := ToCapacity(tt.in, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToCapacity_WholeNumbersAreExact(t *testing.T) {
	for _, u := range []CapacityUnit{Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte} {
		for _, n := range []uint64{0, 1, 7, 10, 1000} {
			got, err := ToCapacity(strconv.FormatUint(n, 10)+u.String(), Byte)
			require.NoError(t, err)
			assert.Equal(t, n*uint64(u.Bytes()), got, "%d%s", n, u)

			same, err := ToCapacity(strconv.FormatUint(n, 10)+u.String(), u)
			require.NoError(t, err)
			assert.Equal(t, n, same)
		}
	}
}

func TestToCapacity_InvalidFormat(t *testing.T) {
	for _, s := range []string{"", "abc", "GB", "10", "-1GB", "1.GB", ".5GB", "10 G B", "1e3B", "10GB!", "16384PB", "100000PB", "99999999999999999999B"} {
		_, err := ToCapacity(s, Byte)
		assert.ErrorIs(t, err, ErrInvalidFormat, "%q", s)
	}
}

func TestToCapacity_LargestValues(t *testing.T) {
	got, err := ToCapacity("16383PB", Byte)
	require.NoError(t, err)
	assert.Equal(t, uint64(16383)<<50, got)

	_, err = ToCapacity("16384PB", Byte)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "16384PB")

	got, err = ToCapacity("16384PB", Kilobyte)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<54, got)
}

func TestToCapacity_InvalidUnit(t *testing.T) {
	for _, s := range []string{"10XB", "10KB", "10gb", "1 bytes"} {
		_, err := ToCapacity(s, Byte)
		assert.ErrorIs(t, err, ErrInvalidUnit, "%q", s)
	}
}

func TestToCapacity_ErrorNamesInput(t *testing.T) {
	_, err := ToCapacity("12QB", Byte)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QB")
}

func TestFormatCapacity(t *testing.T) {
	assert.Equal(t, "0B", FormatCapacity(0))
	assert.Equal(t, "1023B", FormatCapacity(1023))
	assert.Equal(t, "1kB", FormatCapacity(1024))
	assert.Equal(t, "4GB", FormatCapacity(DefaultQueryMaxMemoryPerNode))
	assert.Equal(t, "1536MB", FormatCapacity(3<<29))
	assert.Equal(t, "2PB", FormatCapacity(2<<50))

	got, err := ToCapacity(FormatCapacity(123456789), Byte)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456789), got)
}
