package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iotaledger/prioq/order"
)

func TestNatural(t *testing.T) {
	o := order.Natural[int]()

	assert.False(t, o.Reverse())
	assert.Negative(t, o.Compare(o.NewItem(1), o.NewItem(2)))
	assert.Positive(t, o.Compare(o.NewItem(2), o.NewItem(1)))
	assert.Zero(t, o.Compare(o.NewItem(1), o.NewItem(1)))
}

func TestReversed(t *testing.T) {
	o := order.Reversed[int]()

	assert.True(t, o.Reverse())
	assert.Positive(t, o.Compare(o.NewItem(1), o.NewItem(2)))
	assert.Negative(t, o.Compare(o.NewItem(2), o.NewItem(1)))
	assert.Zero(t, o.Compare(o.NewItem(1), o.NewItem(1)))
}

func TestKeyed(t *testing.T) {
	o := order.Keyed(func(value string) int {
		return len(value)
	})

	assert.Equal(t, 2, o.Key("bb"))
	assert.Negative(t, o.CompareValues("a", "bb"))
	assert.Positive(t, o.CompareValues("ccc", "bb"))

	// distinct values with equivalent keys are ties
	assert.Zero(t, o.CompareValues("ab", "cd"))
}

func TestKeyedReversed(t *testing.T) {
	o := order.KeyedReversed(func(value string) int {
		return len(value)
	})

	assert.True(t, o.Reverse())
	assert.Positive(t, o.CompareValues("a", "bb"))
	assert.Negative(t, o.CompareValues("ccc", "bb"))
	assert.Zero(t, o.CompareValues("ab", "cd"))
}

func TestNewItem(t *testing.T) {
	o := order.Keyed(func(value string) int {
		return len(value)
	})

	item := o.NewItem("bb")
	assert.Equal(t, "bb", item.Value)
	assert.Equal(t, 2, item.Key)
}

func TestCustomComparator(t *testing.T) {
	// order booleans with false < true
	o := order.New(func(value bool) bool {
		return value
	}, func(a, b bool) int {
		switch {
		case a == b:
			return 0
		case b:
			return -1
		default:
			return 1
		}
	}, false)

	assert.Negative(t, o.CompareValues(false, true))
	assert.Positive(t, o.CompareValues(true, false))
	assert.Zero(t, o.CompareValues(true, true))
}
