package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"image/color"
	"io"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// RoomCols and RoomRows size the tile grid portals are placed on. The outer
// ring of tiles is wall.
const (
	RoomCols = 20
	RoomRows = 15
)

// PortalDef places a portal in the room. Col and Row address a tile.
type PortalDef struct {
	Kind  Kind
	Label string
	Col   int
	Row   int
	Color color.RGBA
}

// ValidationError reports a content file that parsed but is unusable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content: %s: %s", e.Field, e.Reason)
}

// Library holds the portal definitions and their pages.
type Library struct {
	Portals []PortalDef
	pages   map[Kind]Page
}

type portalDoc struct {
	ID    Kind   `yaml:"id"`
	Label string `yaml:"label"`
	Col   int    `yaml:"col"`
	Row   int    `yaml:"row"`
	Color string `yaml:"color"`
}

type libraryDoc struct {
	Portals    []portalDoc `yaml:"portals"`
	Experience struct {
		Title    string `yaml:"title"`
		Sections []Role `yaml:"sections"`
	} `yaml:"experience"`
	Projects struct {
		Title    string    `yaml:"title"`
		Sections []Project `yaml:"sections"`
	} `yaml:"projects"`
	Skills struct {
		Title    string  `yaml:"title"`
		Sections []Skill `yaml:"sections"`
	} `yaml:"skills"`
	About struct {
		Title     string      `yaml:"title"`
		Bio       string      `yaml:"bio"`
		Education []Education `yaml:"education"`
		Interests string      `yaml:"interests"`
		Links     []Link      `yaml:"links"`
	} `yaml:"about"`
}

// Load parses a YAML content document. Every kind must be defined exactly once.
func Load(r io.Reader) (*Library, error) {
	var doc libraryDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode content")
	}

	lib := &Library{pages: make(map[Kind]Page, 4)}
	seen := make(map[Kind]bool, 4)
	for i, p := range doc.Portals {
		field := fmt.Sprintf("portals[%d]", i)
		if !p.ID.Valid() {
			return nil, &ValidationError{Field: field + ".id", Reason: "missing portal id"}
		}
		if seen[p.ID] {
			return nil, &ValidationError{Field: field + ".id", Reason: "duplicate portal " + p.ID.ID()}
		}
		seen[p.ID] = true
		if p.Col < 1 || p.Col > RoomCols-2 || p.Row < 1 || p.Row > RoomRows-2 {
			return nil, &ValidationError{
				Field:  field,
				Reason: fmt.Sprintf("tile %d,%d is not interior floor", p.Col, p.Row),
			}
		}
		c, err := colorful.Hex(p.Color)
		if err != nil {
			return nil, &ValidationError{Field: field + ".color", Reason: err.Error()}
		}
		r, g, b := c.RGB255()
		label := p.Label
		if label == "" {
			label = p.ID.ID()
		}
		lib.Portals = append(lib.Portals, PortalDef{
			Kind:  p.ID,
			Label: label,
			Col:   p.Col,
			Row:   p.Row,
			Color: color.RGBA{R: r, G: g, B: b, A: 0xff},
		})
	}
	for _, k := range Kinds() {
		if !seen[k] {
			return nil, &ValidationError{Field: "portals", Reason: "no portal for " + k.ID()}
		}
	}

	lib.pages[Experience] = &ExperiencePage{Title: doc.Experience.Title, Roles: doc.Experience.Sections}
	lib.pages[Projects] = &ProjectsPage{Title: doc.Projects.Title, Projects: doc.Projects.Sections}
	lib.pages[Skills] = &SkillsPage{Title: doc.Skills.Title, Skills: doc.Skills.Sections}
	lib.pages[About] = &AboutPage{
		Title:     doc.About.Title,
		Bio:       doc.About.Bio,
		Education: doc.About.Education,
		Interests: doc.About.Interests,
		Links:     doc.About.Links,
	}
	for k, p := range lib.pages {
		if p.Heading() == "" {
			return nil, &ValidationError{Field: k.ID() + ".title", Reason: "empty title"}
		}
	}
	return lib, nil
}

// LoadFile reads a content document from disk.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open content %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the content bundled with the binary.
func Default() *Library {
	lib, err := Load(bytes.NewReader(defaultContent))
	if err != nil {
		panic(err)
	}
	return lib
}

// DefaultPortals is a shortcut for Default().Portals.
func DefaultPortals() []PortalDef {
	return Default().Portals
}

// Page returns the page for k, or nil.
func (l *Library) Page(k Kind) Page {
	return l.pages[k]
}

// Portal returns the definition for k.
func (l *Library) Portal(k Kind) (PortalDef, bool) {
	for _, p := range l.Portals {
		if p.Kind == k {
			return p, true
		}
	}
	return PortalDef{}, false
}
