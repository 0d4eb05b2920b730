// Package ordered provides deterministic orderings over graph node and
// path slices, used wherever this module's spec requires a stable
// iteration or tie-break order.
package ordered

import (
	"sort"

	"github.com/wcsproute/wcsp/graph"
)

// ByID sorts a slice of graph.Node by ascending ID.
func ByID(n []graph.Node) {
	sort.Slice(n, func(i, j int) bool { return n[i].ID() < n[j].ID() })
}

// BySliceIDs sorts a slice of []graph.Node lexically by the IDs of the
// []graph.Node. It is used to break ties between otherwise-equal paths.
func BySliceIDs(c [][]graph.Node) {
	sort.Slice(c, func(i, j int) bool {
		a, b := c[i], c[j]
		l := len(a)
		if len(b) < l {
			l = len(b)
		}
		for k, v := range a[:l] {
			if v.ID() < b[k].ID() {
				return true
			}
			if v.ID() > b[k].ID() {
				return false
			}
		}
		return len(a) < len(b)
	})
}

// Int64s sorts a slice of int64 in ascending order.
func Int64s(s []int64) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
