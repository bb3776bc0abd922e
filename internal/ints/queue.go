package ints

// Queue is a FIFO queue of integers.
type Queue struct {
	items []int
	head  int
}

func NewQueue(items ...int) *Queue {
	return &Queue{items: append([]int(nil), items...)}
}

func (q *Queue) IsEmpty() bool {
	return q.head >= len(q.items)
}

func (q *Queue) Len() int {
	return len(q.items) - q.head
}

func (q *Queue) Append(items ...int) *Queue {
	if q.head > 0 && q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	q.items = append(q.items, items...)
	return q
}

// First removes and returns the head item, returns -1 if queue is empty.
func (q *Queue) First() int {
	if q.IsEmpty() {
		return -1
	}
	item := q.items[q.head]
	q.head++
	return item
}
