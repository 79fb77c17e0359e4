// Implements ProcessQueue, the ordered set of process IDs behind each of the
// kernel's Ready, Running and Blocked queues.

package sim

import (
	"fmt"
	"strings"
)

// QueueID selects one of the kernel's three queues.
type QueueID int

const (
	ReadyQueue QueueID = iota
	RunningQueue
	BlockedQueue
)

func (q QueueID) String() string {
	switch q {
	case ReadyQueue:
		return "Ready"
	case RunningQueue:
		return "Running"
	case BlockedQueue:
		return "Blocked"
	default:
		return fmt.Sprintf("QueueID(%d)", int(q))
	}
}

// ProcessQueue holds process IDs in insertion order. It stores IDs only;
// the records themselves live in the kernel's process table.
type ProcessQueue struct {
	ids []int
}

// Enqueue adds an ID to the back of the queue.
func (pq *ProcessQueue) Enqueue(id int) {
	pq.ids = append(pq.ids, id)
}

// Len returns the number of IDs in the queue.
func (pq *ProcessQueue) Len() int {
	return len(pq.ids)
}

// Peek returns the ID at the front of the queue.
// Returns false if the queue is empty.
func (pq *ProcessQueue) Peek() (int, bool) {
	if len(pq.ids) == 0 {
		return 0, false
	}
	return pq.ids[0], true
}

// Contains reports whether id is in the queue.
func (pq *ProcessQueue) Contains(id int) bool {
	return pq.indexOf(id) >= 0
}

// Remove deletes id from the queue, preserving the order of the rest.
// Returns false if id was absent.
func (pq *ProcessQueue) Remove(id int) bool {
	i := pq.indexOf(id)
	if i < 0 {
		return false
	}
	pq.ids = append(pq.ids[:i], pq.ids[i+1:]...)
	return true
}

// IDs returns a copy of the queue contents in order.
func (pq *ProcessQueue) IDs() []int {
	out := make([]int, len(pq.ids))
	copy(out, pq.ids)
	return out
}

// Replace swaps the queue contents for ids, which must be a permutation of
// the current contents. Used by Multilevel-Queue to reassemble Ready.
func (pq *ProcessQueue) Replace(ids []int) {
	if len(ids) != len(pq.ids) {
		panic(fmt.Sprintf("Replace: length changed from %d to %d", len(pq.ids), len(ids)))
	}
	pq.ids = append(pq.ids[:0], ids...)
}

func (pq *ProcessQueue) indexOf(id int) int {
	for i, v := range pq.ids {
		if v == id {
			return i
		}
	}
	return -1
}

func (pq *ProcessQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, id := range pq.ids {
		sb.WriteString(fmt.Sprint(id))
		if i < len(pq.ids)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
