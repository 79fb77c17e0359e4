package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with IDs [3, 1]
	pq := &ProcessQueue{}
	pq.Enqueue(3)
	pq.Enqueue(1)

	// WHEN Peek() is called
	got, ok := pq.Peek()

	// THEN it returns the front element without removing it
	if !ok || got != 3 {
		t.Errorf("Peek: got (%d, %v), want (3, true)", got, ok)
	}
	if pq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", pq.Len())
	}
}

func TestProcessQueue_Peek_Empty_ReturnsFalse(t *testing.T) {
	pq := &ProcessQueue{}
	if _, ok := pq.Peek(); ok {
		t.Error("Peek on empty queue: got ok=true, want false")
	}
}

func TestProcessQueue_Remove_PreservesOrder(t *testing.T) {
	// GIVEN a queue with IDs [1, 2, 3]
	pq := &ProcessQueue{}
	for _, id := range []int{1, 2, 3} {
		pq.Enqueue(id)
	}

	// WHEN the middle element is removed
	ok := pq.Remove(2)

	// THEN the rest keep their order
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3}, pq.IDs())
	assert.False(t, pq.Contains(2))
}

func TestProcessQueue_Remove_Absent_ReturnsFalse(t *testing.T) {
	pq := &ProcessQueue{}
	pq.Enqueue(1)
	assert.False(t, pq.Remove(9))
	assert.Equal(t, 1, pq.Len())
}

func TestProcessQueue_IDs_ReturnsCopy(t *testing.T) {
	pq := &ProcessQueue{}
	pq.Enqueue(1)
	ids := pq.IDs()
	ids[0] = 42
	assert.Equal(t, []int{1}, pq.IDs(), "mutating IDs() result must not affect the queue")
}

func TestProcessQueue_Replace_Permutation(t *testing.T) {
	pq := &ProcessQueue{}
	for _, id := range []int{1, 2, 3} {
		pq.Enqueue(id)
	}
	pq.Replace([]int{3, 1, 2})
	assert.Equal(t, []int{3, 1, 2}, pq.IDs())
}

func TestProcessQueue_Replace_LengthChange_Panics(t *testing.T) {
	pq := &ProcessQueue{}
	pq.Enqueue(1)
	assert.Panics(t, func() { pq.Replace([]int{1, 2}) })
}

func TestProcessQueue_String(t *testing.T) {
	pq := &ProcessQueue{}
	assert.Equal(t, "[]", pq.String())
	pq.Enqueue(4)
	pq.Enqueue(5)
	assert.Equal(t, "[4 5]", pq.String())
}

func TestQueueID_String(t *testing.T) {
	assert.Equal(t, "Ready", ReadyQueue.String())
	assert.Equal(t, "Running", RunningQueue.String())
	assert.Equal(t, "Blocked", BlockedQueue.String())
	assert.Equal(t, "QueueID(7)", QueueID(7).String())
}
