package provenance

import "github.com/samber/lo"

// Origin locates where in a file a value was set. Both fields are optional.
type Origin struct {
	File string
	Line int
}

// Override is one accepted write to a Value.
type Override[T any] struct {
	Value  T
	Source Source
	File   string
	Line   int
}

// Value wraps a setting with the source that won and the history of every
// accepted write. The history is append-only and its last entry always
// matches the current value and source.
//
// The zero Value holds the zero T at SourceDefault with an empty history,
// which marks a setting that no source has written yet.
type Value[T any] struct {
	value   T
	source  Source
	history []Override[T]
}

// New creates a Value with a single history entry.
func New[T any](v T, src Source) Value[T] {
	return Value[T]{
		value:   v,
		source:  src,
		history: []Override[T]{{Value: v, Source: src}},
	}
}

// Get returns the current value.
func (pv *Value[T]) Get() T {
	return pv.value
}

// Source returns the source of the current value.
func (pv *Value[T]) Source() Source {
	return pv.source
}

// IsSet reports whether any write has been accepted.
func (pv *Value[T]) IsSet() bool {
	return len(pv.history) > 0
}

// History returns a copy of the accepted writes, oldest first.
func (pv *Value[T]) History() []Override[T] {
	out := make([]Override[T], len(pv.history))
	copy(out, pv.history)
	return out
}

// Last returns the most recent accepted write.
func (pv *Value[T]) Last() (Override[T], bool) {
	if len(pv.history) == 0 {
		var zero Override[T]
		return zero, false
	}
	return pv.history[len(pv.history)-1], true
}

// MergeReplace replaces the value when src ranks at or above the current source.
// A lower-ranked write is ignored.
func (pv *Value[T]) MergeReplace(v T, src Source, origin Origin) {
	if !src.Outranks(pv.source) {
		return
	}
	pv.accept(v, v, src, origin)
}

func (pv *Value[T]) accept(current, written T, src Source, origin Origin) {
	pv.value = current
	pv.source = src
	pv.history = append(pv.history, Override[T]{
		Value:  written,
		Source: src,
		File:   origin.File,
		Line:   origin.Line,
	})
}

// MergeUnion appends the values not already present when src ranks at or
// above the current source. Existing entries keep their order and new ones
// follow in the order given. A lower-ranked write is dropped entirely, and an
// empty vals never clears what is already there.
func MergeUnion[E comparable](pv *Value[[]E], vals []E, src Source, origin Origin) {
	if !src.Outranks(pv.source) {
		return
	}

	combined := make([]E, 0, len(pv.value)+len(vals))
	combined = append(combined, pv.value...)
	combined = lo.Uniq(append(combined, vals...))

	written := make([]E, len(vals))
	copy(written, vals)
	pv.accept(combined, written, src, origin)
}

// Clone returns a Value that shares no memory with pv. dup copies a T that
// holds references, such as a slice or map; a nil dup copies T as is.
func (pv *Value[T]) Clone(dup func(T) T) Value[T] {
	if dup == nil {
		dup = func(v T) T { return v }
	}
	out := Value[T]{value: dup(pv.value), source: pv.source}
	if pv.history != nil {
		out.history = make([]Override[T], len(pv.history))
		for i, o := range pv.history {
			o.Value = dup(o.Value)
			out.history[i] = o
		}
	}
	return out
}
