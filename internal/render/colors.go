package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Sprite is a terminal stand-in for an entity's visual. Directional sprites
// pick one of eight glyphs from the entity's rotation, starting east and
// turning clockwise (screen y grows downward).
type Sprite struct {
	Glyph       string
	Directional [8]string
	Color       tcell.Color
	RenderOrder int
}

// Sprites maps sprite names to their glyphs. Emoji are rendered by the
// terminal with their own colors; Color only tints plain glyphs.
var Sprites = map[string]Sprite{
	"player": {
		Directional: [8]string{"→", "↘", "↓", "↙", "←", "↖", "↑", "↗"},
		Color:       tcell.ColorYellow,
		RenderOrder: 10,
	},
	"bullet":    {Glyph: "•", Color: tcell.ColorLightCyan, RenderOrder: 8},
	"asteroid1": {Glyph: "✦", Color: tcell.ColorSilver, RenderOrder: 3},
	"asteroid2": {Glyph: "🪨", Color: tcell.ColorGray, RenderOrder: 4},
	"asteroid3": {Glyph: "🌑", Color: tcell.ColorGray, RenderOrder: 5},
}

// unknownSprite is drawn for names missing from Sprites.
var unknownSprite = Sprite{Glyph: "?", Color: tcell.ColorFuchsia}

// Lookup returns the sprite for name.
func Lookup(name string) Sprite {
	if s, ok := Sprites[name]; ok {
		return s
	}
	return unknownSprite
}

// GlyphFor returns the glyph to draw at the given rotation.
func (s Sprite) GlyphFor(rotation float64) string {
	if s.Directional[0] == "" {
		return s.Glyph
	}
	turn := math.Mod(rotation, 2*math.Pi)
	if turn < 0 {
		turn += 2 * math.Pi
	}
	i := int(math.Round(turn/(math.Pi/4))) % 8
	return s.Directional[i]
}

// Health bar colors.
var (
	healthFull  = tcell.ColorLimeGreen
	healthEmpty = tcell.ColorRed
)
