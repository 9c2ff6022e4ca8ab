package limit

// Policy measures elements against a budget and supplies the marker
// substituted for discarded content.
//
// Both methods must be pure. Weight must be defined for every value the
// source can yield and must not be negative; the iterator treats a
// negative weight as 0. A zero weight is meaningful: an empty line
// contributes no height. Marker must be finite and is called once per
// iterator, at construction.
type Policy[T any] interface {
	// Weight is the cost of one element against the budget.
	Weight(v T) int

	// Marker is the sequence emitted to indicate discarded content.
	Marker() []T
}

// Units is the default policy: every element costs 1, and truncation is
// silent (no marker).
type Units[T any] struct{}

// Weight counts every element as 1.
func (Units[T]) Weight(T) int { return 1 }

// Marker returns no marker.
func (Units[T]) Marker() []T { return nil }

// state is the iterator's position in its lifecycle.
//
//	          +--> limiting --+
//	running --+               +--> finished
//	          +--> tail    ---+
type state int

const (
	// stateRunning: source elements are flowing through under the
	// reserved budget.
	stateRunning state = iota

	// stateTail: the remaining source fit after all, and is being
	// replayed verbatim. The marker has been dropped.
	stateTail

	// stateLimiting: the marker is being emitted in place of the
	// discarded remainder.
	stateLimiting

	// stateFinished: terminal. Next yields nothing, forever.
	stateFinished
)

// Iter yields elements from a source until their cumulative weight would
// exceed the budget, substituting the policy's marker when content is
// discarded. The output's total weight never exceeds the budget.
//
// An Iter is single-use and not safe for concurrent use.
type Iter[T any] struct {
	state     state
	policy    Policy[T]
	src       *peeker[T]
	remaining int // budget left for source elements while running
	marker    []T // held for emission if truncation proves necessary
	held      []T // tail or marker being replayed
	pos       int
}

// New returns an iterator over source bounded by budget.
//
// The marker's weight is reserved up front: while running, source
// elements draw only on the budget minus the marker's weight. Whether
// the reservation is actually spent on a marker is decided at the first
// element that no longer fits (see Next).
//
// A budget of 0 or an empty source yields nothing; the marker is never
// emitted for an empty source. If the marker alone meets or exceeds the
// budget, the output is the marker clamped from its end to fit, and the
// source is never read past the initial emptiness check.
func New[T any](source Source[T], budget int, policy Policy[T]) *Iter[T] {
	it := &Iter[T]{policy: policy, src: newPeeker(source)}
	if budget <= 0 {
		it.state = stateFinished
		return it
	}
	if _, ok := it.src.peek(); !ok {
		it.state = stateFinished
		return it
	}
	marker := policy.Marker()
	if m := it.weightOf(marker); budget <= m {
		it.held = it.clamp(marker, budget)
		it.state = stateLimiting
	} else {
		it.remaining = budget - m
		it.marker = marker
		it.state = stateRunning
	}
	return it
}

// Next yields the next output element. It reports false once the output
// is complete; after that the iterator is finished and every further
// call reports false.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	for {
		switch it.state {
		case stateRunning:
			v, ok := it.src.peek()
			if !ok {
				// The source fit entirely; the reservation was never
				// needed and the marker is dropped unused.
				it.state = stateFinished
				return zero, false
			}
			if w := it.weight(v); w <= it.remaining {
				it.src.next()
				it.remaining -= w
				return v, true
			}
			// v overflows the reserved budget. The rest of the source
			// may still fit once the marker's reservation is released,
			// so look ahead at everything that is left before deciding.
			if tail, ok := it.collectTail(it.remaining + it.weightOf(it.marker)); ok {
				it.held = tail
				it.state = stateTail
			} else {
				it.held = it.marker
				it.state = stateLimiting
			}
			it.marker = nil
			// re-poll in the new state

		case stateTail, stateLimiting:
			if it.pos >= len(it.held) {
				it.state = stateFinished
				return zero, false
			}
			v := it.held[it.pos]
			it.pos++
			return v, true

		default:
			return zero, false
		}
	}
}

// Finished reports whether the iterator has reached its terminal state.
// It is false until Next has reported false, and true permanently after.
func (it *Iter[T]) Finished() bool {
	return it.state == stateFinished
}

// Collect drains the iterator into a slice.
func (it *Iter[T]) Collect() []T {
	var out []T
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// collectTail drains the source while the cumulative weight stays within
// budget, starting with the buffered element. It reports false as soon
// as an element pushes past the budget, in which case the collected
// prefix is discarded along with the rest of the source.
func (it *Iter[T]) collectTail(budget int) ([]T, bool) {
	tail := make([]T, 0, it.src.sizeHint())
	for {
		v, ok := it.src.next()
		if !ok {
			return tail, true
		}
		w := it.weight(v)
		if w > budget {
			return nil, false
		}
		budget -= w
		tail = append(tail, v)
	}
}

// clamp drops marker elements from the end until the total weight fits
// the budget. The result may be empty if even the first element is too
// heavy.
func (it *Iter[T]) clamp(marker []T, budget int) []T {
	total := 0
	for i, v := range marker {
		total += it.weight(v)
		if total > budget {
			return marker[:i]
		}
	}
	return marker
}

// weight applies the policy, clamping negative weights to 0.
func (it *Iter[T]) weight(v T) int {
	if w := it.policy.Weight(v); w > 0 {
		return w
	}
	return 0
}

// weightOf sums the weights of items.
func (it *Iter[T]) weightOf(items []T) int {
	total := 0
	for _, v := range items {
		total += it.weight(v)
	}
	return total
}
