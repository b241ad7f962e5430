// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Spheric contributors
// SPDX-License-Identifier: Apache-2.0

package seqvals

import "iter"

// Cursor pulls elements from a slot list one call at a time, for consumers
// that cannot use a range loop. It walks the slots left to right; a spliced
// slot is drained through iter.Pull before the cursor moves on.
//
// A Cursor is not safe for concurrent use.
type Cursor[V any] struct {
	slots []Slot[V]
	pos   int
	next  func() (V, bool)
	stop  func()
}

// NewCursor returns a cursor over slots. The slot list is not copied.
func NewCursor[V any](slots ...Slot[V]) *Cursor[V] {
	return &Cursor[V]{slots: slots}
}

// Next returns the next element of the composed sequence, or (zero, false)
// once all active slots are drained. After it has returned false it keeps
// returning false; over-pulling is harmless.
func (c *Cursor[V]) Next() (V, bool) {
	for {
		if c.next != nil {
			v, ok := c.next()
			if ok {
				return v, true
			}
			c.release()
		}

		if c.pos >= len(c.slots) {
			var zero V
			return zero, false
		}

		s := c.slots[c.pos]
		c.pos++
		switch s.kind {
		case slotFixed:
			return s.val, true
		case slotSplice:
			c.next, c.stop = iter.Pull(s.seq)
		}
	}
}

// Stop releases the spliced source the cursor is currently consuming, if
// any, and skips the cursor to the end. Calling Stop is only needed when a
// cursor is abandoned mid-splice; a drained cursor holds nothing. Stop may
// be called any number of times.
func (c *Cursor[V]) Stop() {
	c.release()
	c.pos = len(c.slots)
}

func (c *Cursor[V]) release() {
	if c.stop != nil {
		c.stop()
	}
	c.next, c.stop = nil, nil
}

// Seq adapts the cursor's remaining elements into an iter.Seq. Ranging it
// advances the cursor.
func (c *Cursor[V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := c.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
