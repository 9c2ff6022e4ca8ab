package trim

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/randalmurphal/shear/limit"
)

// ToLength trims s so that its UTF-8 encoded length is at most maxBytes,
// appending e when content is discarded.
func ToLength(s string, maxBytes int, e Ellipsis) string {
	// The byte length of a string is known up front, so a value that
	// fits is returned without looking at a single rune.
	if len(s) <= maxBytes {
		return s
	}
	return collect(limit.New(runes(s), maxBytes, lengthPolicy{e}))
}

// ToWidth trims s so that its display width is at most maxColumns,
// appending e when content is discarded. Wide glyphs count as two
// columns; control and zero-width characters count as none.
func ToWidth(s string, maxColumns int, e Ellipsis) string {
	return collect(limit.New(runes(s), maxColumns, widthPolicy{e}))
}

// ToHeight trims s to at most maxLines display lines. The discarded
// lines are replaced by a single line holding e, or by nothing when e is
// Empty. An empty line contributes no height.
func ToHeight(s string, maxLines int, e Ellipsis) string {
	// Splitting "" yields one empty block, not an empty sequence; short
	// circuit so an empty input never produces a marker.
	if s == "" {
		return s
	}
	blocks := strings.Split(s, "\n")
	out := limit.New(limit.FromSlice(blocks), maxLines, heightPolicy{e}).Collect()
	return strings.Join(out, "\n")
}

// ToRunes trims s to at most maxRunes runes, appending e when content is
// discarded. This is plain element counting, for contexts where every
// character is one unit.
func ToRunes(s string, maxRunes int, e Ellipsis) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return collect(limit.New(runes(s), maxRunes, runePolicy{e}))
}

// lengthPolicy weighs runes by their UTF-8 encoded length.
type lengthPolicy struct{ e Ellipsis }

func (p lengthPolicy) Weight(r rune) int { return utf8.RuneLen(r) }
func (p lengthPolicy) Marker() []rune    { return p.e.runes() }

// widthPolicy weighs runes by their display column width.
type widthPolicy struct{ e Ellipsis }

func (p widthPolicy) Weight(r rune) int { return runewidth.RuneWidth(r) }
func (p widthPolicy) Marker() []rune    { return p.e.runes() }

// runePolicy weighs every rune as one unit.
type runePolicy struct{ e Ellipsis }

func (p runePolicy) Weight(rune) int { return 1 }
func (p runePolicy) Marker() []rune  { return p.e.runes() }

// heightPolicy weighs a text block by the display lines it contributes:
// its embedded newline count plus one, or 0 for an empty block.
type heightPolicy struct{ e Ellipsis }

func (p heightPolicy) Weight(block string) int {
	if block == "" {
		return 0
	}
	return strings.Count(block, "\n") + 1
}

func (p heightPolicy) Marker() []string {
	if p.e == Empty {
		return nil
	}
	return []string{string(p.e)}
}

// runes returns a lazy Source over the runes of s.
func runes(s string) limit.Source[rune] {
	return &runeSource{s: s}
}

type runeSource struct {
	s   string
	pos int
}

func (r *runeSource) Next() (rune, bool) {
	if r.pos >= len(r.s) {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(r.s[r.pos:])
	r.pos += size
	return c, true
}

func (r *runeSource) SizeHint() int {
	// Runes are at least one byte each; the remaining byte count is a
	// cheap upper bound.
	return len(r.s) - r.pos
}

func collect(it *limit.Iter[rune]) string {
	var b strings.Builder
	for {
		c, ok := it.Next()
		if !ok {
			return b.String()
		}
		b.WriteRune(c)
	}
}
