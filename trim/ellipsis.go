package trim

// Ellipsis is the marker appended when content is discarded. Its cost is
// counted against the budget in whatever units the trim function uses.
type Ellipsis string

const (
	// Ascii is the three-dot ASCII ellipsis.
	Ascii Ellipsis = "..."

	// Horizontal is the single-glyph Unicode horizontal ellipsis. It is
	// one column wide but three bytes long, so prefer it when trimming
	// by width rather than by length.
	Horizontal Ellipsis = "…"

	// Contd spells out that the text continues.
	Contd Ellipsis = "... (contd.)"

	// Empty trims silently, with no marker.
	Empty Ellipsis = ""
)

// String returns the marker text.
func (e Ellipsis) String() string {
	return string(e)
}

// runes returns the marker as the rune sequence fed to the limiter.
func (e Ellipsis) runes() []rune {
	return []rune(string(e))
}
