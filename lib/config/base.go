package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// ConfigMode says whether a ConfigBase accepts SetValue.
type ConfigMode int

const (
	// Immutable stores never change after Initialize.
	Immutable ConfigMode = iota

	// Mutable stores accept SetValue. Keys can be added or overwritten but
	// are never removed.
	Mutable
)

func (m ConfigMode) String() string {
	switch m {
	case Immutable:
		return "immutable"
	case Mutable:
		return "mutable"
	default:
		return fmt.Sprintf("ConfigMode(%d)", int(m))
	}
}

// Value is the set of types a property can be read as.
type Value interface {
	bool | string | int | int32 | int64 | uint16 | uint32 | uint64
}

// ConfigBase holds one property snapshot and its mode. The mode is a plain
// tag checked by SetValue; it is fixed by Initialize from the value of
// mutable-config.
//
// All access goes through an RWMutex, so both modes are safe for concurrent
// readers, and a Mutable store is safe for concurrent SetValue callers.
type ConfigBase struct {
	mu       sync.RWMutex
	mode     ConfigMode
	values   RawProperties
	filePath string
	reader   PropertyReader
}

// BaseOption configures a ConfigBase.
type BaseOption func(*ConfigBase)

// WithPropertyReader replaces the reader Initialize uses to load files.
func WithPropertyReader(r PropertyReader) BaseOption {
	return func(c *ConfigBase) {
		if r != nil {
			c.reader = r
		}
	}
}

// NewConfigBase returns an empty store in the given mode. Until Initialize is
// called every lookup falls through to the accessor's default.
func NewConfigBase(mode ConfigMode, opts ...BaseOption) *ConfigBase {
	c := &ConfigBase{
		mode:   mode,
		values: RawProperties{},
		reader: FileReader{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize reads the property file at path and replaces the current
// snapshot and mode with it. Calling it again replaces everything again.
// Only the base name of path decides which allow-list is checked, so a
// directory named config.properties does not mark its files as system files.
func (c *ConfigBase) Initialize(path string) error {
	values, err := c.reader.ReadProperties(path)
	if err != nil {
		return err
	}
	return c.InitializeValues(path, values)
}

// InitializeValues installs values as if they had been read from source.
// When the base name of source contains config.properties or
// node.properties the entries are checked against the matching allow-list
// and logged. The caller's map is copied.
func (c *ConfigBase) InitializeValues(source string, values RawProperties) error {
	name := filepath.Base(source)
	switch {
	case strings.Contains(name, SystemConfigFile):
		CheckIncomingSystemProperties(values)
	case strings.Contains(name, NodeConfigFile):
		CheckIncomingNodeProperties(values)
	}

	mode := Immutable
	if raw, ok := values[MutableConfigKey]; ok {
		mutable, err := parseValue[bool](MutableConfigKey, raw)
		if err != nil {
			return err
		}
		if mutable {
			mode = Mutable
		}
	}

	snapshot := make(RawProperties, len(values))
	for k, v := range values {
		snapshot[k] = v
	}

	c.mu.Lock()
	c.values = snapshot
	c.mode = mode
	c.filePath = source
	c.mu.Unlock()

	log.WithFields(logger.Fields{
		"at":     "ConfigBase.InitializeValues",
		"phase":  "startup",
		"source": source,
		"mode":   mode.String(),
		"count":  len(snapshot),
	}).Debug("initialized config")
	return nil
}

// Mode returns the current mode.
func (c *ConfigBase) Mode() ConfigMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// FilePath returns the source passed to the last Initialize call.
func (c *ConfigBase) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Get returns the raw value stored under key.
func (c *ConfigBase) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

// Values returns a copy of the current snapshot.
func (c *ConfigBase) Values() RawProperties {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(RawProperties, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Keys returns the stored keys in sorted order.
func (c *ConfigBase) Keys() []string {
	c.mu.RLock()
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	c.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// SetValue stores value under key and returns the value it replaced, if any.
// It fails with ErrConfigNotMutable unless the store is Mutable.
func (c *ConfigBase) SetValue(key, value string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != Mutable {
		log.WithFields(logger.Fields{
			"at":     "ConfigBase.SetValue",
			"reason": "config_not_mutable",
			"key":    key,
		}).Warn("rejected write to immutable config")
		return "", false, notMutable("")
	}
	prev, had := c.values[key]
	c.values[key] = value
	log.WithFields(logger.Fields{
		"at":       "ConfigBase.SetValue",
		"key":      key,
		"replaced": had,
	}).Debug("config value updated")
	return prev, had, nil
}

// Optional reads key as T. ok is false when the key is absent. A present
// value that does not parse as T fails with ErrTypeMismatch.
func Optional[T Value](c *ConfigBase, key string) (value T, ok bool, err error) {
	raw, found := c.Get(key)
	if !found {
		return value, false, nil
	}
	value, err = parseValue[T](key, raw)
	if err != nil {
		return value, false, err
	}
	return value, true, nil
}

// Required reads key as T and fails with ErrMissingRequiredProperty when it
// is absent.
func Required[T Value](c *ConfigBase, key string) (T, error) {
	value, ok, err := Optional[T](c, key)
	if err != nil {
		return value, err
	}
	if !ok {
		return value, missingRequiredProperty(key)
	}
	return value, nil
}

// OptionalOr reads key as T, returning def when the key is absent.
func OptionalOr[T Value](c *ConfigBase, key string, def T) (T, error) {
	value, ok, err := Optional[T](c, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return value, nil
}

func parseValue[T Value](key, raw string) (T, error) {
	var out T
	var err error
	s := strings.TrimSpace(raw)
	switch p := any(&out).(type) {
	case *string:
		*p = raw
	case *bool:
		*p, err = parseBool(s)
	case *int:
		var n int64
		n, err = strconv.ParseInt(s, 10, strconv.IntSize)
		*p = int(n)
	case *int32:
		var n int64
		n, err = strconv.ParseInt(s, 10, 32)
		*p = int32(n)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint16:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(n)
	case *uint32:
		var n uint64
		n, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(n)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		var zero T
		return zero, typeMismatch(key, raw, fmt.Sprintf("%T", out), err)
	}
	return out, nil
}

// parseBool accepts true/false, t/f, 1/0, yes/no, y/n and on/off in any
// case.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "t", "1", "yes", "y", "on":
		return true, nil
	case "false", "f", "0", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
