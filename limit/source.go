package limit

// Source yields elements of a sequence one at a time. Next reports false
// once the sequence is exhausted, and on every call after that.
type Source[T any] interface {
	Next() (T, bool)
}

// sizeHinter is implemented by sources that know how many elements
// remain. The hint pre-sizes the lookahead buffer; it need not be exact.
type sizeHinter interface {
	SizeHint() int
}

// FromSlice returns a Source over the elements of s.
func FromSlice[T any](s []T) Source[T] {
	return &sliceSource[T]{items: s}
}

type sliceSource[T any] struct {
	items []T
	pos   int
}

func (s *sliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

func (s *sliceSource[T]) SizeHint() int {
	return len(s.items) - s.pos
}

// FromFunc adapts a function to a Source. The function must keep
// reporting false once it has reported false.
func FromFunc[T any](next func() (T, bool)) Source[T] {
	return funcSource[T](next)
}

type funcSource[T any] func() (T, bool)

func (f funcSource[T]) Next() (T, bool) {
	return f()
}

// peeker adds one element of lookahead to a Source.
type peeker[T any] struct {
	src  Source[T]
	buf  T
	has  bool
	done bool
}

func newPeeker[T any](src Source[T]) *peeker[T] {
	return &peeker[T]{src: src}
}

// peek returns the next element without consuming it.
func (p *peeker[T]) peek() (T, bool) {
	if p.has {
		return p.buf, true
	}
	if p.done {
		var zero T
		return zero, false
	}
	v, ok := p.src.Next()
	if !ok {
		p.done = true
		var zero T
		return zero, false
	}
	p.buf = v
	p.has = true
	return v, true
}

// next consumes and returns the next element.
func (p *peeker[T]) next() (T, bool) {
	if p.has {
		p.has = false
		return p.buf, true
	}
	if p.done {
		var zero T
		return zero, false
	}
	v, ok := p.src.Next()
	if !ok {
		p.done = true
	}
	return v, ok
}

// sizeHint reports how many elements remain, if the underlying source
// knows, counting any buffered element.
func (p *peeker[T]) sizeHint() int {
	hint := 0
	if h, ok := p.src.(sizeHinter); ok {
		hint = h.SizeHint()
	}
	if p.has {
		hint++
	}
	return hint
}
