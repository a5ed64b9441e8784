package config

import (
	"sync"
)

// OverrideStore is a key/value map for values set at runtime. Readers share
// the lock; writers hold it exclusively.
type OverrideStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewOverrideStore returns an empty store.
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (o *OverrideStore) Get(key string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.values[key]
	return v, ok
}

// Set stores value under key and returns the value it replaced, if any.
func (o *OverrideStore) Set(key, value string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	prev, had := o.values[key]
	o.values[key] = value
	return prev, had
}

// Snapshot returns a copy of all stored values.
func (o *OverrideStore) Snapshot() RawProperties {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(RawProperties, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}
