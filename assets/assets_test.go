package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevels(t *testing.T) {
	levels, names, err := LoadLevels()
	require.NoError(t, err)
	assert.Equal(t, []string{"level1", "level2", "level3"}, names)
	for _, name := range names {
		assert.Equal(t, name, levels[name].Name)
	}
}
