package render

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts are the faces used by the game and its hosts.
type Fonts struct {
	HUD    font.Face // instruction bar, 12pt mono
	Label  font.Face // portal labels, 11pt mono bold
	Prompt font.Face // nearby prompt, 14pt mono bold
	Title  font.Face // overlay heading
	Body   font.Face // overlay text
}

const dpi = 72

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse gomono")
	}
	monoBold, err := truetype.Parse(gomonobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse gomonobold")
	}
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse goregular")
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse gobold")
	}
	return &Fonts{
		HUD:    newFace(mono, 12),
		Label:  newFace(monoBold, 11),
		Prompt: newFace(monoBold, 14),
		Title:  newFace(bold, 22),
		Body:   newFace(regular, 14),
	}, nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

var (
	defaultFonts     *Fonts
	defaultFontsOnce sync.Once
)

// DefaultFonts loads the fonts once per process. The embedded fonts are known
// good, so a parse failure is a build problem and panics.
func DefaultFonts() *Fonts {
	defaultFontsOnce.Do(func() {
		f, err := LoadFonts()
		if err != nil {
			panic(err)
		}
		defaultFonts = f
	})
	return defaultFonts
}
