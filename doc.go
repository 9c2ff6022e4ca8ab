// Package shear trims sequences of weighted elements down to a budget.
//
// When text has to fit into a table cell, a log line, or a status bar, it
// needs to be cut to size, with a marker showing that content was
// discarded, and without a marker when nothing was. shear does exactly that,
// for any sequence whose elements can be assigned a weight.
//
// Each subpackage can be used independently:
//
//   - limit: the core bounded-truncation iterator, generic over element type
//   - trim: string trimming by byte length, display width, or line height
//   - profile: named trim profiles loaded from TOML/YAML config files
//
// # Quick Start
//
// Trim a string to a byte length:
//
//	import "github.com/randalmurphal/shear/trim"
//	s := trim.ToLength("a very long string value", 18, trim.Ascii)
//	// "a very long str..."
//
// Trim to a display width (wide CJK glyphs count as two columns):
//
//	s := trim.ToWidth("Ｈｅｌｌｏ, ｗｏｒｌｄ!", 22, trim.Ascii)
//	// "Ｈｅｌｌｏ, ｗｏｒ..."
//
// Trim a block of text to a number of lines:
//
//	s := trim.ToHeight(report, 20, trim.Contd)
//
// Limit an arbitrary sequence with a custom weight:
//
//	import "github.com/randalmurphal/shear/limit"
//	it := limit.New(limit.FromSlice(items), budget, myPolicy)
//	kept := it.Collect()
//
// # Design Philosophy
//
//   - Strings that already fit are returned unaltered, never marked
//   - The marker is only emitted when content is actually discarded
//   - The output's total weight never exceeds the budget, marker included
//   - Policies are small pure values; trimming itself cannot fail
package shear
