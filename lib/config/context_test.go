package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSystemProperties = `presto.version=0.289
http-server.http.port=8080
query.max-memory-per-node=8GB
custom.unknown=kept
`

const validNodeProperties = `node.environment=test
node.id=worker-1
node.location=/rack/1
node.memory_gb=32
`

func writeEtc(t *testing.T, system, node string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, SystemConfigFile, system)
	writeFile(t, dir, NodeConfigFile, node)
	return dir
}

func staticIP() (string, error) { return "10.1.2.3", nil }

func TestLoad(t *testing.T) {
	dir := writeEtc(t, validSystemProperties, validNodeProperties)

	ctx, err := Load(dir, WithSystemOptions(fixedConcurrency(4)))
	require.NoError(t, err)
	assert.Equal(t, dir, ctx.EtcDir)
	assert.Equal(t, Immutable, ctx.System.Base().Mode())
	assert.False(t, ctx.Query.IsMutable())
	assert.Equal(t, filepath.Join(dir, SystemConfigFile), ctx.System.Base().FilePath())

	port, err := ctx.System.HTTPServerHTTPPort()
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	threads, err := ctx.System.NumQueryThreads()
	require.NoError(t, err)
	assert.Equal(t, int32(16), threads)

	unknown, ok := ctx.System.Base().Get("custom.unknown")
	assert.True(t, ok)
	assert.Equal(t, "kept", unknown)

	id, err := ctx.Node.NodeID()
	require.NoError(t, err)
	assert.Equal(t, "worker-1", id)

	require.NoError(t, ctx.Check(staticIP, nil))
}

func TestLoad_MutableSystemConfig(t *testing.T) {
	dir := writeEtc(t, "mutable-config=true\n"+validSystemProperties, validNodeProperties)

	ctx, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Mutable, ctx.System.Base().Mode())
	assert.True(t, ctx.Query.IsMutable())

	_, _, err = ctx.Query.SetValue("session.flag", "on")
	require.NoError(t, err)
	_, _, err = ctx.System.SetValue(HTTPServerHTTPPortKey, "9090")
	require.NoError(t, err)
	port, err := ctx.System.HTTPServerHTTPPort()
	require.NoError(t, err)
	assert.Equal(t, 9090, port)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, SystemConfigFile, validSystemProperties)

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), NodeConfigFile)
}

func TestLoad_BadMutableConfig(t *testing.T) {
	dir := writeEtc(t, "mutable-config=perhaps\n", validNodeProperties)
	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestLoad_CustomReader(t *testing.T) {
	var paths []string
	reader := PropertyReaderFunc(func(path string) (RawProperties, error) {
		paths = append(paths, filepath.Base(path))
		return RawProperties{}, nil
	})
	ctx, err := Load("/nonexistent/etc", WithReader(reader))
	require.NoError(t, err)
	assert.Equal(t, []string{SystemConfigFile, NodeConfigFile}, paths)

	err = ctx.Check(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredProperty)
	assert.ErrorIs(t, err, ErrMissingPropertyNoFallback)
}

func TestLoad_LoosePermissionsStillLoads(t *testing.T) {
	dir := writeEtc(t, validSystemProperties, validNodeProperties)
	require.NoError(t, os.Chmod(filepath.Join(dir, SystemConfigFile), 0o666))

	_, err := Load(dir)
	require.NoError(t, err)
}

func TestNewContext_Defaults(t *testing.T) {
	ctx, err := NewContext(nil, nil)
	require.NoError(t, err)
	require.NotNil(t, ctx.System)
	require.NotNil(t, ctx.Node)
	assert.False(t, ctx.Query.IsMutable())
}

func TestContextCheck_ZeroMemory(t *testing.T) {
	dir := writeEtc(t, validSystemProperties, "node.environment=test\nnode.id=n\nnode.location=/r\nnode.memory_gb=0\n")
	rec := &exitRecorder{}

	ctx, err := Load(dir, WithNodeOptions(WithExitFunc(rec.exit)))
	require.NoError(t, err)

	err = ctx.Check(staticIP, nil)
	assert.ErrorIs(t, err, ErrInvalidNodeMemory)
	assert.Equal(t, []int{1}, rec.codes)
}
