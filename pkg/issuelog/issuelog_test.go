package issuelog

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapFlow(t *testing.T) {
	reg := NewRegistry()
	RegisterBuiltinIssues(reg)
	reg.Register("QuotaExceeded", "E4010", errors.New("quota exceeded"))

	factory := NewFactory(reg,
		WithConfigPath(filepath.Join(t.TempDir(), "nonexistent.yaml")),
		WithLogDir(t.TempDir()))
	defer factory.Close()

	log := factory.GetLogger("worker.pool")
	require.NotNil(t, log)

	entry, err := log.GetIssue("QuotaExceeded")
	require.NoError(t, err)
	assert.Equal(t, "E4010", entry.Code)

	log.WithIssue("QuotaExceeded").Error("tenant over quota")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "debug", cfg.Handlers["console"].Level)
	assert.Equal(t, "warning", cfg.Handlers["file"].Level)
	assert.Equal(t, "warning", cfg.Handlers["json_file"].Level)
}
