package engine

// QueueCapacity is the number of intents buffered between movement ticks.
const QueueCapacity = 3

// InputQueue buffers direction intents between movement ticks.
// A 180° reversal is never queued, not even transiently: each intent is
// checked against the last queued one, or the committed heading when empty.
type InputQueue struct {
	items []Direction
}

// Len returns the number of buffered intents.
func (q *InputQueue) Len() int {
	return len(q.items)
}

// Items returns a copy of the buffered intents, oldest first.
func (q *InputQueue) Items() []Direction {
	return append([]Direction(nil), q.items...)
}

// Enqueue buffers d unless it reverses the last queued (or committed)
// heading. Reports whether the intent was accepted.
func (q *InputQueue) Enqueue(d Direction, committed Direction) bool {
	last := committed
	if n := len(q.items); n > 0 {
		last = q.items[n-1]
	}
	if d == last.Opposite() {
		return false
	}

	q.items = append(q.items, d)
	if len(q.items) > QueueCapacity {
		q.items = q.items[len(q.items)-QueueCapacity:]
	}
	return true
}

// Next pops the oldest intent. It returns the intent and true when it can be
// applied, i.e. it does not reverse lastApplied. A reversing intent is
// consumed and discarded; an empty queue returns false.
func (q *InputQueue) Next(lastApplied Direction) (Direction, bool) {
	if len(q.items) == 0 {
		return lastApplied, false
	}
	d := q.items[0]
	q.items = q.items[1:]
	if d.Opposite() == lastApplied {
		return lastApplied, false
	}
	return d, true
}

// Clear drops every buffered intent.
func (q *InputQueue) Clear() {
	q.items = q.items[:0]
}
