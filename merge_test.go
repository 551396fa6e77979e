package prioq

import (
	"testing"

	"github.com/iotaledger/hive.go/lo"
	"github.com/stretchr/testify/assert"
)

func TestIntersectSorted(t *testing.T) {
	tests := []struct {
		name     string
		left     []int
		right    []int
		expected []int
	}{
		{"disjoint", []int{1, 3}, []int{2, 4}, []int{}},
		{"overlap", []int{1, 2, 3}, []int{2, 3, 4}, []int{2, 3}},
		{"duplicates consumed pairwise", []int{1, 1, 2}, []int{1, 2, 2}, []int{1, 2}},
		{"left empty", []int{}, []int{1, 2}, []int{}},
		{"right empty", []int{1, 2}, []int{}, []int{}},
		{"identical", []int{1, 2, 2}, []int{1, 2, 2}, []int{1, 2, 2}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, intersectSorted(test.left, test.right, lo.Comparator[int]))
		})
	}
}

func TestSubtractSorted(t *testing.T) {
	tests := []struct {
		name     string
		left     []int
		right    []int
		expected []int
	}{
		{"disjoint", []int{1, 3}, []int{2, 4}, []int{1, 3}},
		{"overlap", []int{1, 2, 3}, []int{2, 4}, []int{1, 3}},
		{"duplicates subtracted pairwise", []int{1, 1, 2}, []int{1}, []int{1, 2}},
		{"left tail survives", []int{1, 5, 6}, []int{1, 2}, []int{5, 6}},
		{"left empty", []int{}, []int{1}, []int{}},
		{"right empty", []int{1, 2}, []int{}, []int{1, 2}},
		{"identical", []int{1, 2, 2}, []int{1, 2, 2}, []int{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, subtractSorted(test.left, test.right, lo.Comparator[int]))
		})
	}
}

func TestMergeScansWithEquivalentKeyRuns(t *testing.T) {
	// order pairs by their first component only, so ties carry distinct values
	compare := func(a, b [2]int) int {
		return lo.Comparator(a[0], b[0])
	}

	left := [][2]int{{1, 10}, {1, 11}, {2, 20}}
	right := [][2]int{{1, 11}, {1, 12}, {2, 21}}

	assert.Equal(t, [][2]int{{1, 11}}, intersectSorted(left, right, compare))
	assert.Equal(t, [][2]int{{1, 10}, {2, 20}}, subtractSorted(left, right, compare))
}
