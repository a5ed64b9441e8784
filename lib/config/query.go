package config

import (
	"github.com/go-i2p/logger"
)

// QueryConfig holds query-level values that operators may change while the
// worker runs. Writes are allowed only when the system config had
// mutable-config=true at the time the QueryConfig was built.
type QueryConfig struct {
	mutable bool
	values  *OverrideStore
}

// NewQueryConfig captures the mutability flag from system once. A system
// config whose mutable-config does not parse yields an error.
func NewQueryConfig(system *SystemConfig) (*QueryConfig, error) {
	mutable := false
	if system != nil {
		var err error
		mutable, err = system.MutableConfig()
		if err != nil {
			return nil, err
		}
	}
	return &QueryConfig{
		mutable: mutable,
		values:  NewOverrideStore(),
	}, nil
}

// IsMutable reports the flag captured at construction.
func (q *QueryConfig) IsMutable() bool {
	return q.mutable
}

// SetValue stores a runtime override and returns the value it replaced.
func (q *QueryConfig) SetValue(key, value string) (string, bool, error) {
	if !q.mutable {
		log.WithFields(logger.Fields{
			"at":     "QueryConfig.SetValue",
			"reason": "config_not_mutable",
			"key":    key,
		}).Warn("rejected query config override")
		return "", false, notMutable("System Config's ")
	}
	prev, had := q.values.Set(key, value)
	log.WithFields(logger.Fields{
		"at":       "QueryConfig.SetValue",
		"key":      key,
		"replaced": had,
	}).Info("query config override set")
	return prev, had, nil
}

// GetValue returns the runtime override stored under key.
func (q *QueryConfig) GetValue(key string) (string, bool) {
	return q.values.Get(key)
}

// Overrides returns a copy of every override set so far.
func (q *QueryConfig) Overrides() RawProperties {
	return q.values.Snapshot()
}
