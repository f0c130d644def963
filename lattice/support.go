package lattice

import (
	"math"
	"sort"
)

// Threshold is the absolute support cutoff: floor(r * N). A pattern is
// frequent only when its count is strictly greater than the threshold.
type Threshold int

func AbsoluteSupport(relative float64, transactions int) Threshold {
	return Threshold(math.Floor(relative * float64(transactions)))
}

func (t Threshold) Frequent(count int) bool {
	return count > int(t)
}

// Supported keeps the nodes meeting the threshold, sorted by pattern.
func (t Threshold) Supported(nodes []*Node) []*Node {
	supported := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if t.Frequent(n.Support()) {
			supported = append(supported, n)
		}
	}
	SortNodes(supported)
	return supported
}

func SortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return Compare(nodes[i].Pat.Items(), nodes[j].Pat.Items()) < 0
	})
}

func SortPatterns(patterns []Pattern) {
	sort.SliceStable(patterns, func(i, j int) bool {
		return Compare(patterns[i].Items(), patterns[j].Items()) < 0
	})
}
