package prioq

import (
	"sort"

	"github.com/iotaledger/hive.go/lo"

	"github.com/iotaledger/prioq/order"
)

// region set algebra //////////////////////////////////////////////////////////////////////////////////////////////////

// The binary operations below treat both queues as multisets of values. Every operation builds a
// new queue with fresh backing storage that inherits the receiver's order configuration; the right
// operand's snapshot is re-sorted under that configuration before the merge scan.

// Intersect returns a new queue holding the values present in both queues, each match consuming
// one occurrence from each side.
func (q *Queue[V, K]) Intersect(other *Queue[V, K]) *Queue[V, K] {
	if q.IsEmpty() || other.IsEmpty() {
		return NewOrdered(q.order)
	}

	return NewOrdered(q.order, intersectSorted(q.Values(), q.sortUnderOrder(other), q.order.CompareValues)...)
}

// Union returns a new queue holding all values of both queues, duplicates included.
func (q *Queue[V, K]) Union(other *Queue[V, K]) *Queue[V, K] {
	return NewOrdered(q.order, append(q.Values(), other.Values()...)...)
}

// Difference returns a new queue holding the values of this queue with no remaining match in the
// other one.
func (q *Queue[V, K]) Difference(other *Queue[V, K]) *Queue[V, K] {
	if other.IsEmpty() {
		return q.Clone()
	}

	return NewOrdered(q.order, subtractSorted(q.Values(), q.sortUnderOrder(other), q.order.CompareValues)...)
}

// SymmetricDifference returns a new queue holding the values present in exactly one of the two
// queues.
func (q *Queue[V, K]) SymmetricDifference(other *Queue[V, K]) *Queue[V, K] {
	if q.IsEmpty() {
		return NewOrdered(q.order, other.Values()...)
	}
	if other.IsEmpty() {
		return q.Clone()
	}

	left, right := q.Values(), q.sortUnderOrder(other)

	values := subtractSorted(left, right, q.order.CompareValues)
	values = append(values, subtractSorted(right, left, q.order.CompareValues)...)

	return NewOrdered(q.order, values...)
}

// IntersectInPlace replaces the contents of this queue with its intersection with the other one.
func (q *Queue[V, K]) IntersectInPlace(other *Queue[V, K]) {
	q.replace(q.Intersect(other).Values())
}

// UnionInPlace replaces the contents of this queue with its union with the other one.
func (q *Queue[V, K]) UnionInPlace(other *Queue[V, K]) {
	q.replace(q.Union(other).Values())
}

// DifferenceInPlace replaces the contents of this queue with its difference with the other one.
func (q *Queue[V, K]) DifferenceInPlace(other *Queue[V, K]) {
	q.replace(q.Difference(other).Values())
}

// SymmetricDifferenceInPlace replaces the contents of this queue with its symmetric difference
// with the other one.
func (q *Queue[V, K]) SymmetricDifferenceInPlace(other *Queue[V, K]) {
	q.replace(q.SymmetricDifference(other).Values())
}

// IsSubsetOf returns true if every value of this queue, duplicates counted, appears in the other
// one.
func (q *Queue[V, K]) IsSubsetOf(other *Queue[V, K]) bool {
	if q.Size() > other.Size() {
		return false
	}

	return len(subtractSorted(q.Values(), q.sortUnderOrder(other), q.order.CompareValues)) == 0
}

// IsProperSubsetOf returns true if this queue is a subset of the other one and smaller than it.
func (q *Queue[V, K]) IsProperSubsetOf(other *Queue[V, K]) bool {
	return q.Size() < other.Size() && q.IsSubsetOf(other)
}

// IsSupersetOf returns true if every value of the other queue, duplicates counted, appears in this
// one.
func (q *Queue[V, K]) IsSupersetOf(other *Queue[V, K]) bool {
	return other.IsSubsetOf(q)
}

// IsProperSupersetOf returns true if this queue is a superset of the other one and larger than it.
func (q *Queue[V, K]) IsProperSupersetOf(other *Queue[V, K]) bool {
	return other.IsProperSubsetOf(q)
}

// IsDisjoint returns true if the two queues share no value.
func (q *Queue[V, K]) IsDisjoint(other *Queue[V, K]) bool {
	if q.IsEmpty() || other.IsEmpty() {
		return true
	}

	return len(intersectSorted(q.Values(), q.sortUnderOrder(other), q.order.CompareValues)) == 0
}

// Equals returns true if the two queues hold the same multiset of values: equal sizes and an
// empty difference. Sorted sequences are not compared directly because values inside a run of
// order-equivalent keys surface in arbitrary order.
func (q *Queue[V, K]) Equals(other *Queue[V, K]) bool {
	if q == other {
		return true
	}

	return q.Size() == other.Size() &&
		len(subtractSorted(q.Values(), q.sortUnderOrder(other), q.order.CompareValues)) == 0
}

// sortUnderOrder returns a snapshot of the other queue's values, sorted under this queue's order.
func (q *Queue[V, K]) sortUnderOrder(other *Queue[V, K]) []V {
	values := lo.Map(other.heap.Items(), func(item order.Item[V, K]) V {
		return item.Value
	})
	sort.Slice(values, func(i, j int) bool {
		return q.order.CompareValues(values[i], values[j]) < 0
	})

	return values
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
