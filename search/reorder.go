package search

// Reorder sorts nodes in place by ascending Score with an exchange sort.
// Neighbours are swapped only when the left score is strictly greater, so
// nodes with equal scores keep their relative order.
// Complexity: O(n²) comparisons worst case, O(n) on sorted input.
func Reorder(nodes []Node) {
	n := len(nodes)
	if n < 2 {
		return
	}
	for pass, swapped := 0, true; swapped; pass++ {
		swapped = false
		for i := 1; i < n-pass; i++ {
			if nodes[i-1].Score() > nodes[i].Score() {
				nodes[i-1], nodes[i] = nodes[i], nodes[i-1]
				swapped = true
			}
		}
	}
}
