// Package replay drives level sessions headlessly from a scripted input
// timeline. The simulator command and the tests use it to play levels
// without a window.
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/cbag/codebird-cave/shared/physics"
	"gopkg.in/yaml.v3"
)

var ErrEmptyScript = errors.New("script has no steps")

// Step holds one input snapshot for Ticks consecutive ticks. Reset and
// Teleport are presses and only fire on the first tick of the step.
type Step struct {
	Ticks    int  `yaml:"ticks"`
	Left     bool `yaml:"left"`
	Right    bool `yaml:"right"`
	Jump     bool `yaml:"jump"`
	Reset    bool `yaml:"reset"`
	Teleport bool `yaml:"teleport"`
}

// Intent returns the input for tick i of the step, counted from zero.
func (s Step) Intent(i int) physics.Intent {
	return physics.Intent{
		Left:          s.Left,
		Right:         s.Right,
		Jump:          s.Jump,
		Reset:         s.Reset && i == 0,
		DebugTeleport: s.Teleport && i == 0,
	}
}

type Script struct {
	Level string `yaml:"level"` // optional starting level
	Steps []Step `yaml:"steps"`
}

// Ticks is the total length of the script.
func (s Script) Ticks() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, ErrEmptyScript
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return Script{}, fmt.Errorf("step %d: ticks must be positive, got %d", i, st.Ticks)
		}
	}
	return s, nil
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}
