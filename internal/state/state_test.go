package state

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "cronjobctl.json")
	kv := NewFileKV(path)

	_, err := kv.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("b", "2"))

	v, err := kv.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	// values survive a fresh handle on the same file
	reopened := NewFileKV(path)
	v, err = reopened.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	require.NoError(t, kv.Delete("a"))
	require.NoError(t, kv.Delete("a"), "double delete is not an error")
	_, err = kv.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileKVPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	path := filepath.Join(t.TempDir(), "cronjobctl.json")
	kv := NewFileKV(path)
	require.NoError(t, kv.Set("token", "secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSessionTokens(t *testing.T) {
	s := NewSession(NewMemKV())

	_, err := s.AccessToken()
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, s.RefreshToken())

	require.NoError(t, s.SetTokens("access-1", "refresh-1"))

	tok, err := s.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "access-1", tok)
	assert.Equal(t, "refresh-1", s.RefreshToken())

	// rotating only the access token keeps the refresh token
	require.NoError(t, s.SetTokens("access-2", ""))
	assert.Equal(t, "refresh-1", s.RefreshToken())

	require.NoError(t, s.Clear())
	_, err = s.AccessToken()
	assert.ErrorIs(t, err, ErrNoToken)
}
