package fonts

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Small   FontName = "small"
)

// Point sizes used when a TrueType font is supplied.
var sizes = map[FontName]float64{
	Regular: 14,
	Bold:    20,
	Title:   32,
	Small:   12,
}

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the built-in bitmap face under every name.
func LoadDefaults() {
	for name := range sizes {
		fonts[name] = basicfont.Face7x13
	}
}

// LoadFile registers every name from a TrueType file on disk.
func LoadFile(path string) error {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fonts: read %s: %w", path, err)
	}
	for name, size := range sizes {
		if err := LoadFontWithSize(name, ttf, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("fonts: parse %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// TextWidth measures s in face, in pixels.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Round()
}
