// Package glyph maps stored icon identifiers to the symbols printed in the
// terminal.
package glyph

import (
	"fmt"
	"sort"
	"strings"
)

type Glyph struct {
	// Icon is the stored identifier, e.g. fa-tasks.
	Icon    string
	Symbol  string
	Meaning string
	// List marks icons offered for lists rather than tasks.
	List  bool
	order int
}

const (
	escape     = "\x1b"
	resetCode  = 0
	strikeCode = 9

	// Unknown is printed for icons with no mapping.
	Unknown = "•"

	Completed  = "✘"
	Incomplete = "●"
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

// DefaultGlyphs returns every known icon in legend order.
func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Icon: "fa-tasks", Symbol: "●", Meaning: "task", order: 0},
		{Icon: "fa-phone", Symbol: "☎", Meaning: "call", order: 1},
		{Icon: "fa-envelope", Symbol: "✉", Meaning: "email", order: 2},
		{Icon: "fa-calendar", Symbol: "▦", Meaning: "appointment", order: 3},
		{Icon: "fa-star", Symbol: "★", Meaning: "important", order: 4},
		{Icon: "fa-heart", Symbol: "♥", Meaning: "personal", order: 5},
		{Icon: "fa-book", Symbol: "❒", Meaning: "reading", order: 6},
		{Icon: "fa-list", Symbol: "≡", Meaning: "list", List: true, order: 10},
		{Icon: "fa-user", Symbol: "☺", Meaning: "personal list", List: true, order: 11},
		{Icon: "fa-briefcase", Symbol: "▣", Meaning: "work list", List: true, order: 12},
		{Icon: "fa-shopping-cart", Symbol: "⛟", Meaning: "shopping list", List: true, order: 13},
		{Icon: "fa-home", Symbol: "⌂", Meaning: "home list", List: true, order: 14},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

// ByOrder sorts glyphs for the legend.
type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].order < a[j].order }

// Lookup finds the glyph for a stored icon. The fa- prefix is optional.
func Lookup(icon string) (Glyph, bool) {
	icon = Normalize(icon)
	for _, g := range DefaultGlyphs() {
		if g.Icon == icon {
			return g, true
		}
	}
	return Glyph{Icon: icon, Symbol: Unknown, Meaning: icon}, false
}

// Symbol returns the printed symbol for icon, Unknown when it has none.
func Symbol(icon string) string {
	g, _ := Lookup(icon)
	return g.Symbol
}

// Normalize lower-cases icon and adds the fa- prefix when missing.
func Normalize(icon string) string {
	icon = strings.ToLower(strings.TrimSpace(icon))
	if icon == "" {
		return ""
	}
	if !strings.HasPrefix(icon, "fa-") {
		icon = "fa-" + icon
	}
	return icon
}

// TaskIcons and ListIcons return the icons offered for each kind, in order.
func TaskIcons() []Glyph {
	return filter(false)
}

func ListIcons() []Glyph {
	return filter(true)
}

func filter(list bool) []Glyph {
	out := make([]Glyph, 0)
	for _, g := range DefaultGlyphs() {
		if g.List == list {
			out = append(out, g)
		}
	}
	sort.Sort(ByOrder(out))
	return out
}
