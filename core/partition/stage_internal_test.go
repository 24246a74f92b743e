package partition

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStage_CommitKeepsNewDatasetWhenBackupRemains(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "out")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "metadata.json.gz"), []byte("old"), 0o644))

	stage, err := NewStage(target)
	require.NoError(t, err)
	stage.removeAll = func(string) error { return errors.New("device busy") }
	require.NoError(t, stage.Write(Items, []string{"new"}))

	core, logs := observer.New(zapcore.WarnLevel)
	require.NoError(t, stage.Commit(zap.New(core)))

	_, err = os.Stat(filepath.Join(target, "items.json.gz"))
	assert.NoError(t, err, "the staged dataset is live")
	_, err = os.Stat(filepath.Join(target, "metadata.json.gz"))
	assert.True(t, os.IsNotExist(err))

	entries := logs.FilterMessage("Failed to remove previous dataset").All()
	require.Len(t, entries, 1)
	backup, ok := entries[0].ContextMap()["dir"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(filepath.Base(backup), ".out.old-"))

	leftover, err := os.ReadFile(filepath.Join(backup, "metadata.json.gz"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(leftover))
}
