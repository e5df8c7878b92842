package walk_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsforge/dtsforge/internal/walk"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestDiscoverWalksDirectoryForTsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), "export const a = 1;")
	writeFile(t, filepath.Join(dir, "sub", "b.ts"), "export const b = 2;")
	writeFile(t, filepath.Join(dir, "c.js"), "const c = 3;")

	out, err := walk.Discover(context.Background(), []string{dir}, walk.Options{})
	require.NoError(t, err)
	sort.Strings(out)

	assert.Len(t, out, 2)
	assert.Contains(t, out[0]+out[1], "a.ts")
	assert.Contains(t, out[0]+out[1], "b.ts")
}

func TestDiscoverExpandsGlobPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), "export const a = 1;")
	writeFile(t, filepath.Join(dir, "b.ts"), "export const b = 2;")

	out, err := walk.Discover(context.Background(), []string{filepath.Join(dir, "*.ts")}, walk.Options{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestDiscoverDedupesAcrossRoots(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	writeFile(t, path, "export const a = 1;")

	out, err := walk.Discover(context.Background(), []string{dir, path}, walk.Options{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestDiscoverHonoursIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), "export const a = 1;")
	writeFile(t, filepath.Join(dir, "skip.gen.ts"), "export const b = 2;")

	ignorePath := filepath.Join(dir, ".dtsforgeignore")
	writeFile(t, ignorePath, "*.gen.ts\n")

	out, err := walk.Discover(context.Background(), []string{dir}, walk.Options{IgnoreFile: ignorePath})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotContains(t, out[0], "skip.gen.ts")
}

func TestDiscoverRespectsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ts"), "export const a = 1;")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := walk.Discover(ctx, []string{dir}, walk.Options{})
	assert.Error(t, err)
}
