package limit

import (
	"testing"
)

// asciiPolicy counts every rune as 1 and marks truncation with "...".
type asciiPolicy struct{}

func (asciiPolicy) Weight(rune) int { return 1 }
func (asciiPolicy) Marker() []rune  { return []rune("...") }

// bytePolicy weighs runes by their UTF-8 encoded length.
type bytePolicy struct {
	marker string
}

func (p bytePolicy) Weight(r rune) int { return len(string(r)) }
func (p bytePolicy) Marker() []rune    { return []rune(p.marker) }

func limitString(s string, budget int, policy Policy[rune]) string {
	return string(New(FromSlice([]rune(s)), budget, policy).Collect())
}

func TestIter_Runes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		budget   int
		expected string
	}{
		{
			name:     "empty input stays empty",
			input:    "",
			budget:   5,
			expected: "",
		},
		{
			name:     "longer input is truncated",
			input:    "123456",
			budget:   5,
			expected: "12...",
		},
		{
			name:     "exact fit passes through",
			input:    "123456",
			budget:   6,
			expected: "123456",
		},
		{
			name:     "shorter input passes through",
			input:    "123",
			budget:   6,
			expected: "123",
		},
		{
			name:     "zero budget yields nothing",
			input:    "123456",
			budget:   0,
			expected: "",
		},
		{
			name:     "tail fits once the reservation is released",
			input:    "1234",
			budget:   4,
			expected: "1234",
		},
		{
			name:     "tail one element too long is truncated",
			input:    "12345",
			budget:   4,
			expected: "1...",
		},
		{
			name:     "budget equal to marker weight emits only the marker",
			input:    "123456",
			budget:   3,
			expected: "...",
		},
		{
			name:     "budget below marker weight emits a clamped marker",
			input:    "123456",
			budget:   2,
			expected: "..",
		},
		{
			name:     "budget one emits a single marker element",
			input:    "123456",
			budget:   1,
			expected: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := limitString(tt.input, tt.budget, asciiPolicy{})
			if got != tt.expected {
				t.Errorf("limit(%q, %d) = %q, expected %q", tt.input, tt.budget, got, tt.expected)
			}
		})
	}
}

func TestIter_EmptySourceNeverEmitsMarker(t *testing.T) {
	// Even when the marker alone would not fit, an empty source must
	// produce empty output rather than a clamped marker.
	for budget := 0; budget <= 5; budget++ {
		got := limitString("", budget, asciiPolicy{})
		if got != "" {
			t.Errorf("limit(\"\", %d) = %q, expected empty output", budget, got)
		}
	}
}

func TestIter_OutputWeightNeverExceedsBudget(t *testing.T) {
	inputs := []string{"", "a", "hello", "123456", "a longer string value", "exact"}
	for _, input := range inputs {
		for budget := 0; budget <= 25; budget++ {
			out := limitString(input, budget, asciiPolicy{})
			if len([]rune(out)) > budget {
				t.Errorf("limit(%q, %d) = %q: weight %d exceeds budget",
					input, budget, out, len([]rune(out)))
			}
		}
	}
}

func TestIter_FittingInputPassesThrough(t *testing.T) {
	inputs := []string{"", "a", "hello", "a longer string value"}
	for _, input := range inputs {
		weight := len([]rune(input))
		for budget := weight; budget <= weight+5; budget++ {
			out := limitString(input, budget, asciiPolicy{})
			if out != input {
				t.Errorf("limit(%q, %d) = %q, expected passthrough", input, budget, out)
			}
		}
	}
}

func TestIter_Refit(t *testing.T) {
	// Trimming an already-trimmed result with the same budget must be a
	// no-op: the first pass's output always fits the budget.
	inputs := []string{"", "a", "hello", "123456", "a longer string value"}
	for _, input := range inputs {
		for budget := 0; budget <= 25; budget++ {
			once := limitString(input, budget, asciiPolicy{})
			twice := limitString(once, budget, asciiPolicy{})
			if once != twice {
				t.Errorf("refit(%q, %d): %q became %q", input, budget, once, twice)
			}
		}
	}
}

func TestIter_Finished(t *testing.T) {
	it := New(FromSlice([]rune("12345")), 4, asciiPolicy{})

	// "12345" with budget 4 yields "1...": four elements.
	for i := 0; i < 4; i++ {
		if it.Finished() {
			t.Fatalf("iterator finished early, after %d elements", i)
		}
		if _, ok := it.Next(); !ok {
			t.Fatalf("expected element %d", i)
		}
	}

	if _, ok := it.Next(); ok {
		t.Error("expected exhausted iterator")
	}
	if !it.Finished() {
		t.Error("iterator should be finished after yielding its last element")
	}

	// Finished is permanent.
	if _, ok := it.Next(); ok {
		t.Error("finished iterator yielded an element")
	}
	if !it.Finished() {
		t.Error("iterator should stay finished")
	}
}

func TestIter_FinishedImmediately(t *testing.T) {
	if it := New(FromSlice([]rune("abc")), 0, asciiPolicy{}); !it.Finished() {
		t.Error("zero budget should finish immediately")
	}
	if it := New(FromSlice([]rune("")), 5, asciiPolicy{}); !it.Finished() {
		t.Error("empty source should finish immediately")
	}
}

func TestIter_WeightedElements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		budget   int
		marker   string
		expected string
	}{
		{
			name:     "multi-byte elements truncate on byte weight",
			input:    "héllo wörld",
			budget:   9,
			marker:   "...",
			expected: "héllo...", // h(1) é(2) l l o(3) + ...(3) = 9
		},
		{
			name:     "multi-byte input that fits passes through",
			input:    "héllo",
			budget:   6,
			marker:   "...",
			expected: "héllo",
		},
		{
			name:     "heavy marker is clamped by weight not index",
			input:    "123456",
			budget:   2,
			marker:   "…", // 3 bytes: even one element is too heavy
			expected: "",
		},
		{
			name:     "heavy marker fits a budget of its exact weight",
			input:    "123456",
			budget:   3,
			marker:   "…",
			expected: "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := limitString(tt.input, tt.budget, bytePolicy{marker: tt.marker})
			if got != tt.expected {
				t.Errorf("limit(%q, %d) = %q, expected %q", tt.input, tt.budget, got, tt.expected)
			}
		})
	}
}

func TestIter_ZeroWeightElementsAreFree(t *testing.T) {
	// Zero-weight elements never consume budget and never trigger
	// truncation on their own.
	zeroWeight := FromSlice([]string{"", "", ""})
	out := New[string](zeroWeight, 2, heightish{}).Collect()
	if len(out) != 3 {
		t.Errorf("expected all 3 zero-weight elements, got %d", len(out))
	}
}

// heightish weighs empty strings as 0 and everything else as 1.
type heightish struct{}

func (heightish) Weight(s string) int {
	if s == "" {
		return 0
	}
	return 1
}
func (heightish) Marker() []string { return []string{"..."} }

func TestIter_NegativeWeightIsClampedToZero(t *testing.T) {
	out := limitString("abcdef", 3, badPolicy{})
	// With every weight clamped to 0, everything fits.
	if out != "abcdef" {
		t.Errorf("expected passthrough with clamped weights, got %q", out)
	}
}

// badPolicy violates the Weight contract on purpose.
type badPolicy struct{}

func (badPolicy) Weight(rune) int { return -1 }
func (badPolicy) Marker() []rune  { return nil }

func TestUnits(t *testing.T) {
	// Units counts elements and trims silently.
	out := New(FromSlice([]string{"a", "b", "c", "d"}), 2, Units[string]{}).Collect()
	if len(out) != 2 || out[0] != "a" || out[1] != "b" {
		t.Errorf("expected [a b], got %v", out)
	}

	// A fitting sequence passes through.
	out = New(FromSlice([]string{"a", "b"}), 2, Units[string]{}).Collect()
	if len(out) != 2 {
		t.Errorf("expected passthrough, got %v", out)
	}
}

func TestFromFunc(t *testing.T) {
	n := 0
	src := FromFunc(func() (int, bool) {
		if n >= 10 {
			return 0, false
		}
		n++
		return n, true
	})

	out := New[int](src, 4, Units[int]{}).Collect()
	if len(out) != 4 || out[3] != 4 {
		t.Errorf("expected [1 2 3 4], got %v", out)
	}

	// The source is only pulled as far as the decision requires: the 4
	// yielded elements, plus the lookahead taken at overflow.
	if n > 10 {
		t.Errorf("source over-pulled: %d", n)
	}
}

func TestIter_LazyBeforeOverflow(t *testing.T) {
	// Until the budget overflows, the iterator pulls one element per
	// Next call (plus one for the construction-time emptiness check).
	pulled := 0
	src := FromFunc(func() (rune, bool) {
		pulled++
		return 'x', true
	})

	it := New[rune](src, 100, asciiPolicy{})
	if pulled != 1 {
		t.Fatalf("construction should peek exactly once, pulled %d", pulled)
	}

	for i := 0; i < 50; i++ {
		it.Next()
	}
	// 50 yielded: the first was buffered at construction, so at most 50
	// pulls have happened.
	if pulled > 50 {
		t.Errorf("expected at most 50 pulls after 50 elements, got %d", pulled)
	}
}
