package popup

import (
	"strings"

	"github.com/yuin/goldmark-emoji/definition"
)

// IconResolver turns a symbolic icon name into a glyph.
type IconResolver interface {
	Glyph(name string) string
}

// IconFunc adapts a function to IconResolver.
type IconFunc func(name string) string

func (f IconFunc) Glyph(name string) string { return f(name) }

// fallbackGlyph is shown for names nothing resolves.
const fallbackGlyph = "•"

// iconAliases maps common icon-set names to GitHub emoji short names.
var iconAliases = map[string]string{
	"trash":                "wastebasket",
	"trash-can":            "wastebasket",
	"user":                 "bust_in_silhouette",
	"users":                "busts_in_silhouette",
	"info":                 "information_source",
	"circle-info":          "information_source",
	"warning":              "warning",
	"triangle-exclamation": "warning",
	"exclamation":          "exclamation",
	"question":             "question",
	"circle-question":      "question",
	"check":                "white_check_mark",
	"circle-check":         "white_check_mark",
	"xmark":                "x",
	"circle-xmark":         "x",
	"pen":                  "pencil2",
	"pencil":               "pencil2",
	"edit":                 "pencil2",
	"floppy-disk":          "floppy_disk",
	"save":                 "floppy_disk",
	"bell":                 "bell",
	"lock":                 "lock",
	"key":                  "key",
	"folder":               "file_folder",
	"file":                 "page_facing_up",
	"magnifying-glass":     "mag",
	"search":               "mag",
	"filter":               "mag",
	"door-open":            "door",
	"right-from-bracket":   "door",
	"gear":                 "gear",
	"plus":                 "heavy_plus_sign",
}

// EmojiIcons resolves names through GitHub emoji short names, after
// applying iconAliases. Unknown names render as a bullet.
type EmojiIcons struct {
	emojis definition.Emojis
}

// NewEmojiIcons builds the default resolver.
func NewEmojiIcons() *EmojiIcons {
	return &EmojiIcons{emojis: definition.Github()}
}

func (e *EmojiIcons) Glyph(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	name = strings.Trim(name, ":")
	if alias, ok := iconAliases[name]; ok {
		name = alias
	}
	if em, ok := e.emojis.Get(name); ok && len(em.Unicode) > 0 {
		return string(em.Unicode)
	}
	if em, ok := e.emojis.Get(strings.ReplaceAll(name, "-", "_")); ok && len(em.Unicode) > 0 {
		return string(em.Unicode)
	}
	return fallbackGlyph
}

// PlainIcons renders every non-empty name as a bracketed ASCII tag, for
// terminals without emoji fonts.
var PlainIcons IconResolver = IconFunc(func(name string) string {
	if name == "" {
		return ""
	}
	return "[" + name + "]"
})
