package prioq

// The merge scans below consume two sequences that are already sorted under the same comparator
// and run in O(n + m). The comparator orders by priority key only, so a run of order-equivalent
// entries may still hold distinct values; inside such runs the values are matched as a multiset,
// each match consuming one entry from each side.

// intersectSorted returns the values present in both sorted sequences.
func intersectSorted[V comparable](left, right []V, compare func(a, b V) int) []V {
	intersection := make([]V, 0)

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch c := compare(left[i], right[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			leftRun, rightRun := runEnd(left, i, compare), runEnd(right, j, compare)

			budget := valueCounts(right[j:rightRun])
			for _, value := range left[i:leftRun] {
				if budget[value] > 0 {
					budget[value]--
					intersection = append(intersection, value)
				}
			}

			i, j = leftRun, rightRun
		}
	}

	return intersection
}

// subtractSorted returns the values of the sorted left sequence with no remaining match in the
// sorted right sequence.
func subtractSorted[V comparable](left, right []V, compare func(a, b V) int) []V {
	difference := make([]V, 0)

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch c := compare(left[i], right[j]); {
		case c < 0:
			difference = append(difference, left[i])
			i++
		case c > 0:
			j++
		default:
			leftRun, rightRun := runEnd(left, i, compare), runEnd(right, j, compare)

			budget := valueCounts(right[j:rightRun])
			for _, value := range left[i:leftRun] {
				if budget[value] > 0 {
					budget[value]--
				} else {
					difference = append(difference, value)
				}
			}

			i, j = leftRun, rightRun
		}
	}

	return append(difference, left[i:]...)
}

// runEnd returns the index one past the run of entries order-equivalent to the entry at start.
func runEnd[V any](values []V, start int, compare func(a, b V) int) int {
	end := start + 1
	for end < len(values) && compare(values[start], values[end]) == 0 {
		end++
	}

	return end
}

func valueCounts[V comparable](values []V) map[V]int {
	counts := make(map[V]int, len(values))
	for _, value := range values {
		counts[value]++
	}

	return counts
}
