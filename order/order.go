package order

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/lo"
)

// region Item /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Item pairs a stored value with its derived priority key. Items are immutable: the heap replaces
// them wholesale and never mutates them in place.
type Item[V, K any] struct {
	// Key represents the derived priority of the item.
	Key K

	// Value represents the stored value of the item.
	Value V
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Comparator ///////////////////////////////////////////////////////////////////////////////////////////////////

// Comparator defines a total order over priority keys. It returns 0 if the two keys are equivalent,
// a negative number if the first key is smaller and a positive number if the first key is larger.
type Comparator[K any] func(a, b K) int

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Order ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Order is the ordering strategy of a priority queue. It carries the key derivation function, the
// comparator of the key codomain and the comparison direction, all selected once at construction.
type Order[V, K any] struct {
	key     func(V) K
	compare Comparator[K]
	reverse bool
}

// New creates a fully custom Order from the given key function, key comparator and direction.
func New[V, K any](key func(V) K, compare Comparator[K], reverse bool) Order[V, K] {
	return Order[V, K]{
		key:     key,
		compare: compare,
		reverse: reverse,
	}
}

// Natural creates an Order that compares values directly, smallest first.
func Natural[V constraints.Ordered]() Order[V, V] {
	return New(identity[V], lo.Comparator[V], false)
}

// Reversed creates an Order that compares values directly, largest first.
func Reversed[V constraints.Ordered]() Order[V, V] {
	return New(identity[V], lo.Comparator[V], true)
}

// Keyed creates an Order that compares values by the given key function, smallest key first.
func Keyed[V any, K constraints.Ordered](key func(V) K) Order[V, K] {
	return New(key, lo.Comparator[K], false)
}

// KeyedReversed creates an Order that compares values by the given key function, largest key first.
func KeyedReversed[V any, K constraints.Ordered](key func(V) K) Order[V, K] {
	return New(key, lo.Comparator[K], true)
}

// NewItem wraps the given value into an Item carrying its derived priority key.
func (o Order[V, K]) NewItem(value V) Item[V, K] {
	return Item[V, K]{
		Key:   o.key(value),
		Value: value,
	}
}

// Key derives the priority key of the given value.
func (o Order[V, K]) Key(value V) K {
	return o.key(value)
}

// Compare compares two items by their priority keys. The comparison direction is applied here,
// exactly once, so the heap below always treats the smaller item as the front one.
func (o Order[V, K]) Compare(a, b Item[V, K]) int {
	if o.reverse {
		a, b = b, a
	}

	return o.compare(a.Key, b.Key)
}

// CompareValues compares two raw values under this order by deriving their keys first.
func (o Order[V, K]) CompareValues(a, b V) int {
	return o.Compare(o.NewItem(a), o.NewItem(b))
}

// Reverse returns true if the order surfaces the largest key first.
func (o Order[V, K]) Reverse() bool {
	return o.reverse
}

func identity[V any](value V) V {
	return value
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
