package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_ContainsSoundPage(t *testing.T) {
	fsys := Static()
	for _, name := range []string{"sound.html", "main.js", "audio_worklet.js", "shapes.js", "spectrograph.js"} {
		fi, err := fs.Stat(fsys, name)
		require.NoError(t, err, name)
		assert.False(t, fi.IsDir(), name)
	}

	b, err := fs.ReadFile(fsys, "sound.html")
	require.NoError(t, err)
	assert.Contains(t, string(b), `src="main.js"`)
}
