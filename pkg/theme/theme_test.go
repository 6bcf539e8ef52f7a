package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-helio/helio/pkg/task"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 0.001)
	assert.InDelta(t, 0.0, c.G, 0.001)
	assert.InDelta(t, 1.0, c.A, 0.001)

	c, err = ParseColor("#00ff0080")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.G, 0.001)
	assert.InDelta(t, float64(0x80)/255, c.A, 0.001)

	c, err = ParseColor("#fff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 0.001)
	assert.InDelta(t, 1.0, c.B, 0.001)

	for _, bad := range []string{"ff0000", "#ff00", "#zzzzzz", ""} {
		_, err := ParseColor(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	got, err := Load([]byte("hover: \"#ff0000\"\ndrag_ghost_alpha: 0.3\n"))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, got.Hover.R, 0.001)
	assert.InDelta(t, float32(0.3), got.DragGhostAlpha, 0.001)

	// Untouched fields keep the defaults.
	assert.Equal(t, Default().Press, got.Press)
	assert.Equal(t, Default().Focus, got.Focus)
}

func TestLoadEmptyIsDefault(t *testing.T) {
	got, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load([]byte("hover: \"red\"\n"))
	assert.Error(t, err)

	_, err = Load([]byte("drag_ghost_alpha: 1.5\n"))
	assert.Error(t, err)

	_, err = Load([]byte("hover: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("focus: \"#0000ff\"\n"), 0o644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Focus.B, 0.001)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWatchDeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hover: \"#111111\"\n"), 0o644))

	runner := task.NewRunner()
	results := make(chan Theme, 4)
	stop, err := Watch(path, runner, func(theme Theme, err error) {
		require.NoError(t, err)
		results <- theme
	})
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte("hover: \"#ff0000\"\n"), 0o644))

	// Reloads arrive on the main thread only when polled.
	deadline := time.Now().Add(5 * time.Second)
	for {
		runner.Poll()
		select {
		case got := <-results:
			assert.InDelta(t, 1.0, got.Hover.R, 0.001)
			return
		default:
		}
		if time.Now().After(deadline) {
			t.Fatal("no reload before deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
