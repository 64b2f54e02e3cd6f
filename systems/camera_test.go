package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraY(t *testing.T) {
	assert.Equal(t, 11.25, CameraY(2, 30, 22.5), "clamped to the floor")
	assert.Equal(t, 18.75, CameraY(29, 30, 22.5), "clamped to the ceiling")
	assert.Equal(t, 15.0, CameraY(15, 30, 22.5))
	assert.Equal(t, 5.0, CameraY(3, 10, 22.5), "short levels are centred")
}
