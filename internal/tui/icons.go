package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shayne-snap/llmscape/internal/catalog"
)

var emojiGlyphs = map[string]string{
	"spark":    "✨",
	"quill":    "📝",
	"gem":      "💎",
	"infinity": "🌀",
	"whale":    "🐳",
	"cloud":    "⛅",
	"wind":     "💨",
	"bolt":     "⚡",
	"chat":     "💬",
	"eye":      "👀",
	"search":   "🔍",
	"mic":      "🎤",
	"palette":  "🎨",
	"cube":     "📦",
}

// Two cells wide, like the emoji set, so cards line up either way.
var asciiGlyphs = map[string]string{
	"spark":    "**",
	"quill":    "/>",
	"gem":      "<>",
	"infinity": "oo",
	"whale":    "}<",
	"cloud":    "()",
	"wind":     "~~",
	"bolt":     "!!",
	"chat":     "\"\"",
	"eye":      "@@",
	"search":   "?>",
	"mic":      "|)",
	"palette":  "%%",
	"cube":     "[]",
}

// Glyph renders an icon token. Unknown tokens get the default icon's glyph.
func Glyph(token string, emoji bool) string {
	table := asciiGlyphs
	if emoji {
		table = emojiGlyphs
	}
	if g, ok := table[token]; ok {
		return g
	}
	return table[catalog.DefaultIcon]
}

var colorTokens = map[string]lipgloss.Color{
	"green":  lipgloss.Color("10"),
	"orange": lipgloss.Color("208"),
	"blue":   lipgloss.Color("12"),
	"purple": lipgloss.Color("13"),
	"cyan":   lipgloss.Color("14"),
	"red":    lipgloss.Color("9"),
	"yellow": lipgloss.Color("11"),
	"pink":   lipgloss.Color("213"),
}

// Accent maps an entry color token to a terminal color, grey when unknown.
func Accent(token string) lipgloss.Color {
	if c, ok := colorTokens[token]; ok {
		return c
	}
	return lipgloss.Color("8")
}
