package collection

import (
	"sync"

	"github.com/google/btree"
)

// Collection is an in-memory arena of rows addressed by slot index. Vacant
// slots are reused lowest index first.
type Collection[T any] struct {
	slots []slot[T]
	free  *btree.BTreeG[int] // vacant slot indexes
	mutex *sync.Mutex
}

type slot[T any] struct {
	state slotState
	row   T
}

type slotState uint8

const (
	slotEmpty slotState = iota
	slotAlive
)

const freeDegree = 32

func New[T any](capacity int) *Collection[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Collection[T]{
		slots: make([]slot[T], 0, capacity),
		free:  btree.NewOrderedG[int](freeDegree),
		mutex: &sync.Mutex{},
	}
}

// Create stores row and returns its id
func (c *Collection[T]) Create(row T) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	id, reused := c.free.DeleteMin()
	if !reused {
		id = len(c.slots)
		c.slots = append(c.slots, slot[T]{})
	}

	c.slots[id].row = row
	c.slots[id].state = slotAlive

	return id
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.alive(id) {
		var zero T
		return zero, false
	}

	return c.slots[id].row, true
}

// Replace overwrites the row at id. It returns false if the slot is vacant
// or was never issued.
func (c *Collection[T]) Replace(id int, row T) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.alive(id) {
		return false
	}

	c.slots[id].row = row
	return true
}

// Delete vacates the slot at id so a later Create can reuse it. Deleting a
// vacant slot is a no-op that returns false.
func (c *Collection[T]) Delete(id int) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.alive(id) {
		return false
	}

	var zero T
	c.slots[id].row = zero
	c.slots[id].state = slotEmpty
	c.free.ReplaceOrInsert(id)

	return true
}

// ListIDs returns the occupied ids in ascending order.
func (c *Collection[T]) ListIDs() []int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	ids := make([]int, 0, len(c.slots)-c.free.Len())
	for id, s := range c.slots {
		if s.state == slotAlive {
			ids = append(ids, id)
		}
	}

	return ids
}

// Len returns the number of occupied slots.
func (c *Collection[T]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.slots) - c.free.Len()
}

func (c *Collection[T]) alive(id int) bool {
	return id >= 0 && id < len(c.slots) && c.slots[id].state == slotAlive
}
