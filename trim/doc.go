// Package trim cuts strings down to a byte length, display width, or
// line count, appending an ellipsis when content is discarded.
//
// Strings that already fit are returned unaltered, and never carry a
// marker. The marker itself is counted against the budget, so the result
// always fits:
//
//	trim.ToLength("a very long string value", 18, trim.Ascii)
//	// "a very long str..." (18 bytes)
//
//	trim.ToLength("a shorter value", 18, trim.Ascii)
//	// "a shorter value" (unaltered)
//
// ToWidth measures display columns instead of bytes, so wide CJK glyphs
// count as two and zero-width characters as none:
//
//	trim.ToWidth("Ｈｅｌｌｏ, ｗｏｒｌｄ!", 22, trim.Ascii)
//	// "Ｈｅｌｌｏ, ｗｏｒ..."
//
// ToHeight trims multi-line text to a number of lines, replacing the
// overflow with a single marker line:
//
//	trim.ToHeight("one\ntwo\nthree", 2, trim.Ascii)
//	// "one\n..."
//
// The Ellipsis argument selects the marker: Ascii ("..."), Horizontal
// ("…"), Contd ("... (contd.)"), or Empty for silent trimming.
//
// All four functions are thin adapters over the limit package; use limit
// directly for custom weights or non-string sequences.
package trim
