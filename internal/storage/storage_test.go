package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("init in empty directory creates .cart structure", func(t *testing.T) {
		dir := t.TempDir()

		s, err := Init(dir)
		require.NoError(t, err)
		require.NotNil(t, s)

		// Verify .cart/ directory exists
		info, err := os.Stat(filepath.Join(dir, ".cart"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		// Verify data/ directory exists
		info, err = os.Stat(filepath.Join(dir, ".cart", "data"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		cfg, err := s.LoadWorkspaceConfig()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Version)
	})

	t.Run("init in directory with existing .cart returns error", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Init(dir)
		require.NoError(t, err)

		_, err = Init(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestOpen(t *testing.T) {
	t.Run("open existing .cart directory succeeds", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Init(dir)
		require.NoError(t, err)

		s, err := Open(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, s.Root())
		assert.Equal(t, filepath.Join(dir, ".cart"), s.CartPath())
		assert.Equal(t, filepath.Join(dir, ".cart", "data"), s.DataPath())
		assert.Equal(t, filepath.Join(dir, ".cart", "cart.db"), s.BuntPath())
	})

	t.Run("open without .cart returns error", func(t *testing.T) {
		_, err := Open(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("open with .cart as a file returns error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".cart"), []byte("x"), 0644))

		_, err := Open(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestOpenKV(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := Init(dir)
	require.NoError(t, err)

	t.Run("file backend", func(t *testing.T) {
		cfg := DefaultConfig()
		kv, err := s.OpenKV(ctx, cfg)
		require.NoError(t, err)
		defer kv.Close()
		assert.IsType(t, &FileKV{}, kv)
	})

	t.Run("bunt backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage = BackendBunt
		kv, err := s.OpenKV(ctx, cfg)
		require.NoError(t, err)
		defer kv.Close()
		assert.IsType(t, &BuntKV{}, kv)

		require.NoError(t, kv.Set(ctx, "k", "v"))
		_, err = os.Stat(s.BuntPath())
		assert.NoError(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Storage = "floppy"
		_, err := s.OpenKV(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage backend")
	})
}
