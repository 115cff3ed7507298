// Package queue provides a generic score-ordered priority queue.
//
// The queue is a binary min-heap over an arbitrary payload type with a
// caller-supplied scoring function: the item with the lowest score is
// always at the top. It has no knowledge of geometry; the kdgo search
// uses it with a negated-distance score so that the worst candidate
// surfaces first and can be evicted cheaply.
package queue

import "errors"

// ErrNotFound is returned by Remove when no item matches.
var ErrNotFound = errors.New("queue: item not found")

// PriorityQueue is a binary min-heap ordered by a scoring function.
// The zero value is not usable; construct with New.
type PriorityQueue[T any] struct {
	score func(T) float64
	items []T
}

// New creates an empty priority queue ordered by score.
func New[T any](score func(T) float64) *PriorityQueue[T] {
	return &PriorityQueue[T]{score: score}
}

// Len returns the number of items in the queue.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// Items returns the backing slice of the heap in internal array order.
// The slice is a live view; callers must not modify it while the queue
// is still in use.
func (pq *PriorityQueue[T]) Items() []T { return pq.items }

// Push inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[T]) Push(item T) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the lowest-scored item.
// The second return value is false if the queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	n := len(pq.items)
	if n == 0 {
		var zero T
		return zero, false
	}

	root := pq.items[0]
	last := pq.items[n-1]

	var zero T
	pq.items[n-1] = zero // Avoid memory leak
	pq.items = pq.items[:n-1]

	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}

	return root, true
}

// Peek returns the lowest-scored item without removing it.
// The second return value is false if the queue is empty.
func (pq *PriorityQueue[T]) Peek() (T, bool) {
	if len(pq.items) == 0 {
		var zero T
		return zero, false
	}
	return pq.items[0], true
}

// Remove deletes the first item for which match returns true, restoring
// the heap invariant from the vacated slot. It returns ErrNotFound if
// no item matches.
func (pq *PriorityQueue[T]) Remove(match func(T) bool) error {
	for i := range pq.items {
		if !match(pq.items[i]) {
			continue
		}

		n := len(pq.items)
		last := pq.items[n-1]

		var zero T
		pq.items[n-1] = zero
		pq.items = pq.items[:n-1]

		if i < n-1 {
			pq.items[i] = last
			// The replacement may violate the invariant in either
			// direction relative to its new neighbors.
			pq.siftDown(i)
			pq.siftUp(i)
		}

		return nil
	}

	return ErrNotFound
}

func (pq *PriorityQueue[T]) less(i, j int) bool {
	return pq.score(pq.items[i]) < pq.score(pq.items[j])
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
