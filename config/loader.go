package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed physics.yaml
var defaultPhysicsYAML []byte

// LoadPhysics loads the movement tuning. Keys missing from a file keep their
// default value.
// Search order: customPath -> ~/.codebird/physics.yaml -> ./configs/physics.yaml -> embedded default
func LoadPhysics(customPath string) (PhysicsConfig, error) {
	cfg := DefaultPhysics()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("physics.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPhysics()
		}
	}

	if data, err := os.ReadFile("configs/physics.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPhysics()
	}

	if err := yaml.Unmarshal(defaultPhysicsYAML, &cfg); err != nil {
		return DefaultPhysics(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".codebird", filename)
}
