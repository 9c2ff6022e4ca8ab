// Package limit bounds a sequence of weighted elements to a budget.
//
// An Iter pulls elements from a Source and yields them until their
// cumulative weight would exceed the budget. When content has to be
// discarded, the policy's marker sequence is emitted in its place; when
// everything fits, the input passes through untouched and no marker
// appears.
//
// # Policies
//
// A Policy supplies two pure functions: the weight of one element against
// the budget, and the marker substituted for discarded content. Weights
// can be anything countable: 1 per element, bytes per character, display
// columns per character, lines per text block. See the trim package for
// the string-specific policies.
//
// # Basic Usage
//
//	it := limit.New(limit.FromSlice(words), 10, limit.Units[string]{})
//	for {
//		w, ok := it.Next()
//		if !ok {
//			break
//		}
//		use(w)
//	}
//
// Or collect everything at once:
//
//	kept := limit.New(src, budget, policy).Collect()
//
// # How space is accounted
//
// The marker's weight is reserved as soon as the iterator is created, so
// a marker can always be placed if truncation turns out to be necessary.
// Whether it is necessary is decided only at the first element that no
// longer fits: at that point the iterator looks ahead at the rest of the
// source, and if everything left would fit in the reserved space plus
// what remains of the budget, the input is passed through and the marker
// is dropped. A sequence that ends right where the marker would have
// started is therefore never truncated.
package limit
