package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedPhysicsMatchesDefaults(t *testing.T) {
	cfg := DefaultPhysics()
	require.NoError(t, yaml.Unmarshal(defaultPhysicsYAML, &cfg))
	assert.Equal(t, DefaultPhysics(), cfg)
}

func TestLoadPhysicsCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_vel: 12\ndamp: 1\n"), 0o644))

	cfg, err := LoadPhysics(path)
	require.NoError(t, err)

	assert.Equal(t, 12.0, cfg.MaxVel)
	assert.Equal(t, 1.0, cfg.Damp)
	assert.Equal(t, -1.5, cfg.GravityPerTick, "unset keys keep defaults")
}

func TestLoadPhysicsCustomPathErrors(t *testing.T) {
	_, err := LoadPhysics(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_vel: [1, 2"), 0o644))
	_, err = LoadPhysics(path)
	assert.Error(t, err)
}

func TestTuningConversion(t *testing.T) {
	tuning := DefaultPhysics().Tuning()
	assert.Equal(t, -1.5, tuning.GravityPerTick)
	assert.Equal(t, 40.0, tuning.FlyVel)
	assert.Equal(t, 180.0, tuning.DebugTeleport.X)

	s := DefaultPhysics().Session()
	assert.Equal(t, 15.0, s.Margin)
	assert.Equal(t, 1.0, s.ActorWidth)
}

func TestLevelOptions(t *testing.T) {
	opts := Level.Options()
	assert.Equal(t, 212.0, opts.End)
	assert.Equal(t, 20.0, opts.Spawn.Y)
	assert.Len(t, opts.Layers, 4)
}
