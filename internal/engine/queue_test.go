package engine

import "testing"

var allDirections = []Direction{DirUp, DirDown, DirLeft, DirRight}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range allDirections {
		if d.Opposite() == d {
			t.Errorf("%s is its own opposite", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("opposite of opposite of %s is %s", d, d.Opposite().Opposite())
		}
	}
}

func TestQueueRejectsReversalOfCommitted(t *testing.T) {
	for _, d := range allDirections {
		var q InputQueue
		if q.Enqueue(d.Opposite(), d) {
			t.Errorf("committed %s: reversal %s was accepted", d, d.Opposite())
		}
		if q.Len() != 0 {
			t.Errorf("committed %s: queue length %d, expected 0", d, q.Len())
		}
	}
}

func TestQueueRejectsReversalOfLastQueued(t *testing.T) {
	var q InputQueue
	if !q.Enqueue(DirLeft, DirUp) {
		t.Fatal("Left after Up should be accepted")
	}
	// Right does not reverse the committed Up, but it reverses the queued Left.
	if q.Enqueue(DirRight, DirUp) {
		t.Error("Right after queued Left should be rejected")
	}
	if !q.Enqueue(DirDown, DirUp) {
		t.Error("Down after queued Left should be accepted")
	}
	got := q.Items()
	if len(got) != 2 || got[0] != DirLeft || got[1] != DirDown {
		t.Errorf("Items() = %v, expected [left down]", got)
	}
}

func TestQueueKeepsMostRecentThree(t *testing.T) {
	var q InputQueue
	for _, d := range []Direction{DirLeft, DirUp, DirRight, DirUp} {
		if !q.Enqueue(d, DirUp) {
			t.Fatalf("Enqueue(%s) rejected", d)
		}
	}
	if q.Len() != QueueCapacity {
		t.Fatalf("Len() = %d, expected %d", q.Len(), QueueCapacity)
	}

	expected := []Direction{DirUp, DirRight, DirUp}
	last := DirUp
	for i, want := range expected {
		got, ok := q.Next(last)
		if !ok {
			t.Fatalf("Next() #%d returned no direction", i)
		}
		if got != want {
			t.Errorf("Next() #%d = %s, expected %s", i, got, want)
		}
		last = got
	}
	if _, ok := q.Next(last); ok {
		t.Error("Next() on empty queue should report false")
	}
}

func TestQueueNextDiscardsReversalOfLastApplied(t *testing.T) {
	var q InputQueue
	// Queued against a committed Left, but Up was applied since.
	q.Enqueue(DirDown, DirLeft)
	q.Enqueue(DirRight, DirLeft)

	if d, ok := q.Next(DirUp); ok {
		t.Errorf("Next() applied %s, expected reversal to be discarded", d)
	}
	if q.Len() != 1 {
		t.Errorf("discarded intent should still be consumed, Len() = %d", q.Len())
	}
	if d, ok := q.Next(DirUp); !ok || d != DirRight {
		t.Errorf("Next() = %s, %v, expected right, true", d, ok)
	}
}

func TestQueueClear(t *testing.T) {
	var q InputQueue
	q.Enqueue(DirLeft, DirUp)
	q.Enqueue(DirDown, DirUp)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", q.Len())
	}
}
