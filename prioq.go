// Package prioq provides a mutable priority queue: a container with constant time lookup of the
// front (by default the smallest) value, logarithmic insertion and multiset-style set algebra over
// the queued values.
package prioq

import (
	"fmt"
	"sort"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ds/walker"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/prioq/binaryheap"
	"github.com/iotaledger/prioq/order"
)

var (
	// ErrEmptyQueue is returned when Peek or Pop is called on an empty queue.
	ErrEmptyQueue = ierrors.New("priority queue is empty")

	// ErrNotFound is returned when Remove is called with a value that is not in the queue.
	ErrNotFound = ierrors.New("value is not in the priority queue")
)

// region Queue ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Queue is a mutable priority queue that sorts its values under a fixed order configuration chosen
// at construction. Values may occur multiple times; the queue and all of its set operations treat
// the contents as a multiset.
type Queue[V comparable, K any] struct {
	order order.Order[V, K]
	heap  *binaryheap.Heap[V, K]
}

// New creates a new Queue that surfaces the smallest of the given initial values first.
func New[V constraints.Ordered](values ...V) *Queue[V, V] {
	return NewOrdered(order.Natural[V](), values...)
}

// NewReversed creates a new Queue that surfaces the largest of the given initial values first.
func NewReversed[V constraints.Ordered](values ...V) *Queue[V, V] {
	return NewOrdered(order.Reversed[V](), values...)
}

// NewKeyed creates a new Queue that surfaces the value with the smallest derived key first.
func NewKeyed[V comparable, K constraints.Ordered](key func(V) K, values ...V) *Queue[V, K] {
	return NewOrdered(order.Keyed[V](key), values...)
}

// NewKeyedReversed creates a new Queue that surfaces the value with the largest derived key first.
func NewKeyedReversed[V comparable, K constraints.Ordered](key func(V) K, values ...V) *Queue[V, K] {
	return NewOrdered(order.KeyedReversed[V](key), values...)
}

// NewOrdered creates a new Queue with the given order configuration. The initial values are
// heapified once in O(n).
func NewOrdered[V comparable, K any](o order.Order[V, K], values ...V) *Queue[V, K] {
	return &Queue[V, K]{
		order: o,
		heap:  binaryheap.New(o.Compare, wrap(o, values)...),
	}
}

// Push adds the given value to the queue in O(log n). It never fails.
func (q *Queue[V, K]) Push(value V) {
	q.heap.Push(q.order.NewItem(value))
}

// Peek returns the front value of the queue without removing it. It returns ErrEmptyQueue when the
// queue is empty; the queue is left untouched either way.
func (q *Queue[V, K]) Peek() (value V, err error) {
	item, exists := q.heap.Peek()
	if !exists {
		return value, ErrEmptyQueue
	}

	return item.Value, nil
}

// Pop removes and returns the front value of the queue. It returns ErrEmptyQueue when the queue is
// empty.
func (q *Queue[V, K]) Pop() (value V, err error) {
	item, exists := q.heap.Pop()
	if !exists {
		return value, ErrEmptyQueue
	}

	return item.Value, nil
}

// PopUntil removes and returns all values whose priority key does not exceed the key derived from
// the given value, under the queue's order. An empty queue yields an empty slice.
func (q *Queue[V, K]) PopUntil(value V) []V {
	threshold := q.order.NewItem(value)

	values := make([]V, 0)
	for {
		front, exists := q.heap.Peek()
		if !exists || q.order.Compare(front, threshold) > 0 {
			return values
		}

		if item, popped := q.heap.Pop(); popped {
			values = append(values, item.Value)
		}
	}
}

// PopAll removes and returns all values of the queue in sorted order.
func (q *Queue[V, K]) PopAll() []V {
	values := make([]V, 0, q.heap.Len())
	for {
		item, exists := q.heap.Pop()
		if !exists {
			return values
		}

		values = append(values, item.Value)
	}
}

// Remove deletes the given value from the queue in O(n). It returns an error wrapping ErrNotFound
// when the value is absent; the backing array is untouched in that case.
func (q *Queue[V, K]) Remove(value V) error {
	if !q.heap.Remove(q.order.NewItem(value), q.itemsEqual) {
		return ierrors.Wrapf(ErrNotFound, "%v", value)
	}

	return nil
}

// Discard deletes the given value from the queue if it is present and reports whether it was. A
// Discard of an absent value is a no-op.
func (q *Queue[V, K]) Discard(value V) bool {
	return q.heap.Remove(q.order.NewItem(value), q.itemsEqual)
}

// Clear removes all values from the queue in O(1). The order configuration is kept.
func (q *Queue[V, K]) Clear() {
	q.heap.Clear()
}

// Has returns true if the queue contains the given value. Priority is the only indexed dimension,
// so this is a linear scan.
func (q *Queue[V, K]) Has(value V) bool {
	item := q.order.NewItem(value)
	for _, candidate := range q.heap.Items() {
		if q.itemsEqual(candidate, item) {
			return true
		}
	}

	return false
}

// Size returns the number of values in the queue.
func (q *Queue[V, K]) Size() int {
	return q.heap.Len()
}

// IsEmpty returns true if the queue contains no values.
func (q *Queue[V, K]) IsEmpty() bool {
	return q.heap.Len() == 0
}

// Order returns the order configuration of the queue.
func (q *Queue[V, K]) Order() order.Order[V, K] {
	return q.order
}

// Reverse returns true if the queue surfaces the largest priority key first.
func (q *Queue[V, K]) Reverse() bool {
	return q.order.Reverse()
}

// Values returns the values of the queue, fully sorted under its order. It sorts a snapshot of the
// contents; the backing array is never reordered by a read.
func (q *Queue[V, K]) Values() []V {
	return lo.Map(q.sortedItems(), func(item order.Item[V, K]) V {
		return item.Value
	})
}

// Range calls the given callback for every value of the queue in sorted order.
func (q *Queue[V, K]) Range(callback func(value V)) {
	for _, value := range q.Values() {
		callback(value)
	}
}

// Iterator returns a restartable iterator over the values of the queue in sorted order. The
// iterator walks a snapshot; later mutations of the queue are not reflected.
func (q *Queue[V, K]) Iterator() *walker.Walker[V] {
	return walker.New[V](true).PushAll(q.Values()...)
}

// Clone returns an independent copy of the queue with the same order configuration and contents.
func (q *Queue[V, K]) Clone() *Queue[V, K] {
	return &Queue[V, K]{
		order: q.order,
		heap:  q.heap.Clone(),
	}
}

// String returns a human-readable version of the queue.
func (q *Queue[V, K]) String() string {
	return stringify.Struct("PriorityQueue",
		stringify.NewStructField("size", q.Size()),
		stringify.NewStructField("reverse", q.Reverse()),
		stringify.NewStructField("values", fmt.Sprintf("%v", q.Values())),
	)
}

// itemsEqual is the single item equality policy of the queue: two items match iff their priority
// keys are equivalent under the order and their raw values are equal.
func (q *Queue[V, K]) itemsEqual(a, b order.Item[V, K]) bool {
	return q.order.Compare(a, b) == 0 && a.Value == b.Value
}

// sortedItems returns a snapshot of the backing array, sorted under the queue's order.
func (q *Queue[V, K]) sortedItems() []order.Item[V, K] {
	items := q.heap.Items()
	sort.Slice(items, func(i, j int) bool {
		return q.order.Compare(items[i], items[j]) < 0
	})

	return items
}

// replace atomically swaps the backing heap for one holding the given values.
func (q *Queue[V, K]) replace(values []V) {
	q.heap = binaryheap.New(q.order.Compare, wrap(q.order, values)...)
}

func wrap[V comparable, K any](o order.Order[V, K], values []V) []order.Item[V, K] {
	return lo.Map(values, o.NewItem)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
