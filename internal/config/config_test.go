package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsforge/dtsforge/internal/config"
	"github.com/dtsforge/dtsforge/pkg/dtsgen"
)

func TestLoadWithNoFileReturnsDefaults(t *testing.T) {
	opts, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, dtsgen.DefaultOptions().ImportOrder, opts.ImportOrder)
	assert.True(t, opts.RetainComments)
	assert.Equal(t, dtsgen.OutputMirror, opts.OutputStructure)
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".dtsforge.yaml")
	contents := "retain_comments: false\nimport_order:\n  - react\n  - bun\noutput_structure: flat\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	opts, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, opts.RetainComments)
	assert.Equal(t, []string{"react", "bun"}, opts.ImportOrder)
	assert.Equal(t, dtsgen.OutputFlat, opts.OutputStructure)
}

func TestLoadEnvironmentVariableOverridesDefault(t *testing.T) {
	t.Setenv("DTSFORGE_RETAIN_COMMENTS", "false")

	opts, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, opts.RetainComments)
}
