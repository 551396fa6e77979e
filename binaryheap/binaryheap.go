package binaryheap

import (
	"container/heap"

	"github.com/iotaledger/prioq/order"
)

// region Heap /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Heap is an array-backed binary min-heap over key/value items. Which item counts as the smallest
// one is decided entirely by the comparator handed to New, so the same engine serves natural,
// keyed and reversed orders.
type Heap[V, K any] struct {
	sorter sorter[V, K]
}

// New creates a new Heap with the given comparator and heapifies the given initial items in O(n).
func New[V, K any](compare order.Comparator[order.Item[V, K]], items ...order.Item[V, K]) *Heap[V, K] {
	h := &Heap[V, K]{
		sorter: sorter[V, K]{
			items:   append(make([]order.Item[V, K], 0, len(items)), items...),
			compare: compare,
		},
	}
	heap.Init(&h.sorter)

	return h
}

// Push adds the given item to the heap in O(log n). It never fails.
func (h *Heap[V, K]) Push(item order.Item[V, K]) {
	heap.Push(&h.sorter, item)
}

// Pop removes and returns the smallest item of the heap in O(log n).
func (h *Heap[V, K]) Pop() (item order.Item[V, K], exists bool) {
	if h.sorter.Len() == 0 {
		return item, false
	}

	//nolint:forcetypeassert // the sorter only ever holds items of this type
	return heap.Pop(&h.sorter).(order.Item[V, K]), true
}

// Peek returns the smallest item of the heap without removing it, in O(1).
func (h *Heap[V, K]) Peek() (item order.Item[V, K], exists bool) {
	if h.sorter.Len() == 0 {
		return item, false
	}

	return h.sorter.items[0], true
}

// Remove deletes the first item that matches the given one under the given equality and restores
// the heap property afterwards. Arbitrary removal is not a binary-heap primitive, so this is a
// linear scan plus a full O(n) re-heapify. The backing array is untouched when no item matches.
func (h *Heap[V, K]) Remove(item order.Item[V, K], equals func(a, b order.Item[V, K]) bool) bool {
	for i, candidate := range h.sorter.items {
		if equals(candidate, item) {
			lastIndex := h.sorter.Len() - 1
			h.sorter.Swap(i, lastIndex)
			h.sorter.items[lastIndex] = order.Item[V, K]{} // avoid memory leak
			h.sorter.items = h.sorter.items[:lastIndex]
			heap.Init(&h.sorter)

			return true
		}
	}

	return false
}

// Clear drops all items in O(1). The comparator survives.
func (h *Heap[V, K]) Clear() {
	h.sorter.items = nil
}

// Len returns the number of items in the heap.
func (h *Heap[V, K]) Len() int {
	return h.sorter.Len()
}

// Items returns a copy of the backing array in heap order. Callers own the returned slice.
func (h *Heap[V, K]) Items() []order.Item[V, K] {
	return append(make([]order.Item[V, K], 0, h.sorter.Len()), h.sorter.items...)
}

// Clone returns an independent copy of the heap sharing no backing storage.
func (h *Heap[V, K]) Clone() *Heap[V, K] {
	return &Heap[V, K]{
		sorter: sorter[V, K]{
			items:   h.Items(),
			compare: h.sorter.compare,
		},
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region sorter ///////////////////////////////////////////////////////////////////////////////////////////////////////

// sorter implements heap.Interface over the backing array so that container/heap can drive the
// sift operations.
type sorter[V, K any] struct {
	items   []order.Item[V, K]
	compare order.Comparator[order.Item[V, K]]
}

// Len is the number of items in the backing array.
func (s *sorter[V, K]) Len() int {
	return len(s.items)
}

// Less reports whether the item with index i should sort before the item with index j.
func (s *sorter[V, K]) Less(i, j int) bool {
	return s.compare(s.items[i], s.items[j]) < 0
}

// Swap swaps the items with indexes i and j.
func (s *sorter[V, K]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
}

// Push adds x as the last item of the backing array.
func (s *sorter[V, K]) Push(x interface{}) {
	//nolint:forcetypeassert // the heap only ever receives items of this type
	s.items = append(s.items, x.(order.Item[V, K]))
}

// Pop removes and returns the last item of the backing array.
func (s *sorter[V, K]) Pop() interface{} {
	n := len(s.items)
	item := s.items[n-1]
	s.items[n-1] = order.Item[V, K]{} // avoid memory leak
	s.items = s.items[:n-1]

	return item
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
