package prioq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadsLeaveBackingArrayUntouched(t *testing.T) {
	queue := New(4, 2, 0, 3, 1)

	before := queue.heap.Items()
	_ = queue.Values()
	_ = queue.Values()
	queue.Range(func(int) {})
	_ = queue.Has(3)
	_ = queue.String()

	assert.Equal(t, before, queue.heap.Items())
}
