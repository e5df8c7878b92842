package obslog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtsforge/dtsforge/internal/obslog"
)

func TestNewAssignsDistinctRunIDs(t *testing.T) {
	a, err := obslog.New(false)
	require.NoError(t, err)
	defer a.Sync()

	b, err := obslog.New(false)
	require.NoError(t, err)
	defer b.Sync()

	assert.NotEmpty(t, a.RunID())
	assert.NotEmpty(t, b.RunID())
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestNewSucceedsInVerboseAndQuietMode(t *testing.T) {
	verbose, err := obslog.New(true)
	require.NoError(t, err)
	defer verbose.Sync()

	quiet, err := obslog.New(false)
	require.NoError(t, err)
	defer quiet.Sync()
}
