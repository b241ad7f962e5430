// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

// Package seqvals builds ad-hoc iterators over a handful of values.
//
// A function that wants to return "these two values, maybe a third, and
// everything some other sequence produces" normally has to allocate a slice
// or hand out a wrapper type. seqvals instead describes each contribution as
// a Slot and concatenates the active ones lazily:
//
//	func digital() iter.Seq[Media] {
//		return seqvals.Compose(seqvals.Fixed(TV), seqvals.Fixed(PC))
//	}
//
// Slots are plain data. Their values and activation conditions are bound
// when the Slot is constructed and never re-evaluated; an inactive slot is
// skipped without any work during consumption.
package seqvals

import (
	"iter"
	"slices"
)

type slotKind int8

const (
	slotNone slotKind = iota
	slotFixed
	slotSplice
)

// Slot is one contribution point in a composed sequence: a single value, a
// spliced sub-sequence, or nothing. The zero value is the inactive slot.
type Slot[V any] struct {
	kind slotKind
	val  V
	seq  iter.Seq[V]
}

// Fixed returns a slot that always contributes v.
func Fixed[V any](v V) Slot[V] {
	return Slot[V]{kind: slotFixed, val: v}
}

// FixedIf returns a slot that contributes v iff ok. The condition is
// evaluated exactly once, by the caller, before this call. FixedIf also
// lifts the usual (value, ok) pair into a slot:
//
//	v, ok := m[key]
//	seq := seqvals.Compose(seqvals.FixedIf(v, ok), seqvals.Fixed(def))
func FixedIf[V any](v V, ok bool) Slot[V] {
	if !ok {
		return Slot[V]{}
	}
	return Fixed(v)
}

// Splice returns a slot that contributes every element of seq, in seq's own
// order. The elements are forwarded one at a time during consumption, never
// collected. A nil seq contributes nothing.
func Splice[V any](seq iter.Seq[V]) Slot[V] {
	if seq == nil {
		return Slot[V]{}
	}
	return Slot[V]{kind: slotSplice, seq: seq}
}

// SpliceIf returns a slot that splices seq iff ok.
func SpliceIf[V any](seq iter.Seq[V], ok bool) Slot[V] {
	if !ok {
		return Slot[V]{}
	}
	return Splice(seq)
}

// SpliceSlice returns a slot that splices the elements of s. The slice is
// not copied; it must not be mutated before the composed sequence is drained.
func SpliceSlice[S ~[]V, V any](s S) Slot[V] {
	if len(s) == 0 {
		return Slot[V]{}
	}
	return Splice(slices.Values(s))
}

// None returns the slot that contributes nothing. Equivalent to the zero
// Slot; useful to keep a slot list's shape fixed across branches.
func None[V any]() Slot[V] {
	return Slot[V]{}
}

// Compose concatenates the active slots into a single lazy Seq, preserving
// slot order and, within a spliced slot, the source's element order.
// Inactive slots contribute nothing and are never visited during
// consumption. The sequence is single-pass in the sense that spliced sources
// are consumed; re-ranging it restarts them only if they themselves restart.
func Compose[V any](slots ...Slot[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, s := range slots {
			switch s.kind {
			case slotFixed:
				if !yield(s.val) {
					return
				}
			case slotSplice:
				for v := range s.seq {
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}

// Slot2 is the pair form of Slot for composing Seq2 sequences. The zero
// value is the inactive slot.
type Slot2[K, V any] struct {
	kind slotKind
	k    K
	v    V
	seq  iter.Seq2[K, V]
}

// Fixed2 returns a slot that always contributes the pair (k, v).
func Fixed2[K, V any](k K, v V) Slot2[K, V] {
	return Slot2[K, V]{kind: slotFixed, k: k, v: v}
}

// FixedIf2 returns a slot that contributes (k, v) iff ok.
func FixedIf2[K, V any](k K, v V, ok bool) Slot2[K, V] {
	if !ok {
		return Slot2[K, V]{}
	}
	return Fixed2(k, v)
}

// Splice2 returns a slot that contributes every pair of seq, in order.
// A nil seq contributes nothing.
func Splice2[K, V any](seq iter.Seq2[K, V]) Slot2[K, V] {
	if seq == nil {
		return Slot2[K, V]{}
	}
	return Slot2[K, V]{kind: slotSplice, seq: seq}
}

// SpliceIf2 returns a slot that splices seq iff ok.
func SpliceIf2[K, V any](seq iter.Seq2[K, V], ok bool) Slot2[K, V] {
	if !ok {
		return Slot2[K, V]{}
	}
	return Splice2(seq)
}

// None2 returns the pair slot that contributes nothing.
func None2[K, V any]() Slot2[K, V] {
	return Slot2[K, V]{}
}

// Compose2 is the Seq2 form of Compose.
func Compose2[K, V any](slots ...Slot2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, s := range slots {
			switch s.kind {
			case slotFixed:
				if !yield(s.k, s.v) {
					return
				}
			case slotSplice:
				for k, v := range s.seq {
					if !yield(k, v) {
						return
					}
				}
			}
		}
	}
}

// ComposeErr composes fallible slots. Pairs are forwarded unchanged and in
// position; after a pair with a non-nil error is yielded, the sequence
// terminates. A failing spliced source is therefore surfaced exactly where
// it failed and never skipped past.
func ComposeErr[V any](slots ...Slot2[V, error]) iter.Seq2[V, error] {
	return func(yield func(V, error) bool) {
		for _, s := range slots {
			switch s.kind {
			case slotFixed:
				if !yield(s.k, s.v) || s.v != nil {
					return
				}
			case slotSplice:
				for v, err := range s.seq {
					if !yield(v, err) || err != nil {
						return
					}
				}
			}
		}
	}
}
