package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAuditLogRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("CreatesFileAndDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "response", "response.log.enc")
		repo := NewFileAuditLogRepository(path, nil)

		require.NoError(t, repo.Append(ctx, "aa:bb"))
		require.NoError(t, repo.Append(ctx, "cc:dd"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "aa:bb\ncc:dd\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("RejectsEmbeddedNewline", func(t *testing.T) {
		repo := NewFileAuditLogRepository(filepath.Join(t.TempDir(), "log"), nil)
		assert.Error(t, repo.Append(ctx, "aa\nbb"))
	})

	t.Run("ConcurrentAppendsKeepWholeLines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log")
		repo := NewFileAuditLogRepository(path, nil)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, repo.Append(ctx, fmt.Sprintf("%032d:%064d", i, i)))
			}(i)
		}
		wg.Wait()

		lines, err := repo.ReadLines(ctx)
		require.NoError(t, err)
		assert.Len(t, lines, 50)
		for _, line := range lines {
			assert.Len(t, line, 32+1+64)
		}
	})
}

func TestFileAuditLogRepository_ReadLines(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingFile", func(t *testing.T) {
		repo := NewFileAuditLogRepository(filepath.Join(t.TempDir(), "log"), nil)

		lines, err := repo.ReadLines(ctx)
		require.NoError(t, err)
		assert.Empty(t, lines)

		exists, err := repo.Exists(ctx)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("SkipsEmptyLines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log")
		require.NoError(t, os.WriteFile(path, []byte("a:b\n\n\r\nc:d\r\n\n"), 0o600))

		lines, err := NewFileAuditLogRepository(path, nil).ReadLines(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a:b", "c:d"}, lines)
	})
}

func TestFileAuditLogRepository_BackupAndRewrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "log")
	repo := NewFileAuditLogRepository(path, nil)
	require.NoError(t, repo.Append(ctx, "old1"))
	require.NoError(t, repo.Append(ctx, "old2"))

	backupPath, err := repo.Backup(ctx, time.UnixMilli(1000))
	require.NoError(t, err)
	assert.Equal(t, path+".bak.1000", backupPath)

	require.NoError(t, repo.Rewrite(ctx, []string{"new1"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new1\n", string(data))

	backup, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "old1\nold2\n", string(backup))

	require.NoError(t, repo.Rewrite(ctx, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(data)))
}

func TestMemoryAuditLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAuditLogRepository("log")

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Backup(ctx, time.Now())
	assert.Error(t, err)

	require.NoError(t, repo.Append(ctx, "a"))
	require.NoError(t, repo.Append(ctx, "b"))

	backupPath, err := repo.Backup(ctx, time.UnixMilli(5))
	require.NoError(t, err)
	require.NoError(t, repo.Rewrite(ctx, []string{"c"}))

	lines, err := repo.ReadLines(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, lines)

	saved, ok := repo.BackupLines(backupPath)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, saved)
}
