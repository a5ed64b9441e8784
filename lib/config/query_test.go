package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestQueryConfig_NotMutable(t *testing.T) {
	q, err := NewQueryConfig(newSystem(t, RawProperties{}))
	require.NoError(t, err)
	assert.False(t, q.IsMutable())

	_, _, err = q.SetValue("query.max-memory", "1GB")
	assert.ErrorIs(t, err, ErrConfigNotMutable)
	assert.Contains(t, err.Error(), "System Config's 'mutable-config'")
	assert.Empty(t, q.Overrides())

	q, err = NewQueryConfig(nil)
	require.NoError(t, err)
	assert.False(t, q.IsMutable())
}

func TestQueryConfig_Mutable(t *testing.T) {
	q, err := NewQueryConfig(newSystem(t, RawProperties{MutableConfigKey: "true"}))
	require.NoError(t, err)
	assert.True(t, q.IsMutable())

	_, had, err := q.SetValue("k", "v1")
	require.NoError(t, err)
	assert.False(t, had)

	prev, had, err := q.SetValue("k", "v2")
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "v1", prev)

	v, ok := q.GetValue("k")
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
	assert.Equal(t, RawProperties{"k": "v2"}, q.Overrides())
}

func TestQueryConfig_MutabilityCapturedOnce(t *testing.T) {
	reader := PropertyReaderFunc(func(string) (RawProperties, error) {
		return RawProperties{MutableConfigKey: "true"}, nil
	})
	base := NewConfigBase(Immutable, WithPropertyReader(reader))
	require.NoError(t, base.Initialize(SystemConfigFile))
	system := NewSystemConfig(base)

	q, err := NewQueryConfig(system)
	require.NoError(t, err)

	require.NoError(t, base.InitializeValues(SystemConfigFile, RawProperties{MutableConfigKey: "false"}))
	assert.True(t, q.IsMutable())
	_, _, err = q.SetValue("k", "v")
	assert.NoError(t, err)
}

func TestQueryConfig_BadMutableConfig(t *testing.T) {
	base := NewConfigBase(Mutable)
	_, _, err := base.SetValue(MutableConfigKey, "perhaps")
	require.NoError(t, err)

	_, err = NewQueryConfig(NewSystemConfig(base))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestQueryConfig_ConcurrentOverrides(t *testing.T) {
	q, err := NewQueryConfig(newSystem(t, RawProperties{MutableConfigKey: "true"}))
	require.NoError(t, err)
	const n = 100

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, _, err := q.SetValue(fmt.Sprintf("session.%d", i), "on")
			return err
		})
	}
	require.NoError(t, g.Wait())

	var readers errgroup.Group
	for i := 0; i < n; i++ {
		readers.Go(func() error {
			if v, ok := q.GetValue(fmt.Sprintf("session.%d", i)); !ok || v != "on" {
				return fmt.Errorf("session.%d: got %q, %v", i, v, ok)
			}
			return nil
		})
	}
	require.NoError(t, readers.Wait())
	assert.Len(t, q.Overrides(), n)
}
