package progress

import (
	"fmt"
	"strings"
)

// Avatar is the bird the player picked. Cosmetic only.
type Avatar int

const (
	Raven Avatar = iota
	Vulture
	Magpie
	Falcon
	Mockingjay
	avatarCount
)

var avatarNames = [avatarCount]string{"raven", "vulture", "magpie", "falcon", "mockingjay"}

func (a Avatar) String() string {
	if a < 0 || a >= avatarCount {
		return fmt.Sprintf("Avatar(%d)", int(a))
	}
	return avatarNames[a]
}

// Avatars lists the selectable avatars in menu order.
func Avatars() []Avatar {
	return []Avatar{Raven, Vulture, Magpie, Falcon, Mockingjay}
}

// ParseAvatar accepts an avatar name in any case.
func ParseAvatar(s string) (Avatar, error) {
	for i, name := range avatarNames {
		if strings.EqualFold(s, name) {
			return Avatar(i), nil
		}
	}
	return Raven, fmt.Errorf("unknown avatar %q", s)
}
