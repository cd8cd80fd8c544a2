package content

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the fixed portals of the room.
type Kind int

const (
	KindNone Kind = iota
	Experience
	Projects
	Skills
	About
)

var kindIDs = [...]string{
	KindNone:   "",
	Experience: "experience",
	Projects:   "projects",
	Skills:     "skills",
	About:      "about",
}

// Kinds returns every portal kind in definition order.
func Kinds() []Kind {
	return []Kind{Experience, Projects, Skills, About}
}

// ID is the stable identifier used in config files and on the wire.
func (k Kind) ID() string {
	if k < KindNone || int(k) >= len(kindIDs) {
		return ""
	}
	return kindIDs[k]
}

func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	if id := k.ID(); id != "" {
		return id
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the four portal kinds.
func (k Kind) Valid() bool {
	return k > KindNone && int(k) < len(kindIDs)
}

// ParseKind maps an identifier back to its Kind. The empty string yields KindNone.
func ParseKind(id string) (Kind, error) {
	for i, s := range kindIDs {
		if s == id {
			return Kind(i), nil
		}
	}
	return KindNone, errors.Errorf("unknown portal %q", id)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.ID()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
