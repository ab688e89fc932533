package wfc

import "testing"

func TestDedupQueuePopsLowestEntropyFirst(t *testing.T) {
	q := newDedupQueue[int, int]()

	high := NewNode(1, []int{1, 2, 3, 4})
	low := NewNode(2, []int{1})
	mid := NewNode(3, []int{1, 2})

	q.Push(high)
	q.Push(low)
	q.Push(mid)

	order := []int{}
	for !q.IsEmpty() {
		order = append(order, q.Pop().ID())
	}

	want := []int{2, 3, 1}
	if len(order) != len(want) {
		t.Fatalf("pop order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("pop order = %v, want %v", order, want)
			break
		}
	}
}

func TestDedupQueueBreaksTiesByInsertionOrder(t *testing.T) {
	q := newDedupQueue[int, int]()

	first := NewNode(1, []int{1, 2})
	second := NewNode(2, []int{3, 4})

	q.Push(first)
	q.Push(second)

	if got := q.Pop().ID(); got != 1 {
		t.Errorf("first pop = %d, want 1 (insertion order tiebreak)", got)
	}
	if got := q.Pop().ID(); got != 2 {
		t.Errorf("second pop = %d, want 2", got)
	}
}

func TestDedupQueueDeduplicatesById(t *testing.T) {
	q := newDedupQueue[int, int]()
	n := NewNode(1, []int{1, 2})

	if added := q.Push(n); !added {
		t.Fatal("first push of a node should succeed")
	}
	if added := q.Push(n); added {
		t.Fatal("pushing an already-present id should be a no-op")
	}

	count := 0
	for !q.IsEmpty() {
		q.Pop()
		count++
	}
	if count != 1 {
		t.Errorf("queue produced %d items, want 1", count)
	}
}

func TestDedupQueuePopEmptyReturnsNil(t *testing.T) {
	q := newDedupQueue[int, int]()
	if got := q.Pop(); got != nil {
		t.Errorf("Pop() on empty queue = %v, want nil", got)
	}
}

func TestDedupQueueAllowsRepushAfterPop(t *testing.T) {
	q := newDedupQueue[int, int]()
	n := NewNode(1, []int{1})

	q.Push(n)
	q.Pop()

	if added := q.Push(n); !added {
		t.Error("a node popped off the queue should be pushable again")
	}
}
