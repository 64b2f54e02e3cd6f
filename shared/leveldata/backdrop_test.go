package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBackdrop(t *testing.T) {
	level, err := LoadLevel(os.DirFS("../../assets"), "levels/level1.tmx", DefaultOptions())
	require.NoError(t, err)

	img, err := level.RenderBackdrop()
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, 230*16, img.Bounds().Dx())
	assert.Equal(t, 30*16, img.Bounds().Dy())
}

func TestRenderBackdropWithoutFlaggedLayers(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "small.tmx", DefaultOptions())
	require.NoError(t, err)

	img, err := level.RenderBackdrop()
	assert.NoError(t, err)
	assert.Nil(t, img)
}
