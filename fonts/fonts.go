package fonts

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	HUD   FontName = "hud"
	Label FontName = "label"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers the bitmap faces the viewer draws with.
func LoadDefaults() {
	LoadFace(HUD, basicfont.Face7x13)
	LoadFace(Label, basicfont.Face7x13)
}

func LoadFace(name FontName, face font.Face) {
	fonts[name] = text.NewGoXFace(face)
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
