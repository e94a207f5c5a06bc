// SPDX-License-Identifier: MIT

package clustering

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hubtrace/core"
)

// Local returns the clustering coefficient of every vertex of g.
// A nil graph yields an empty map.
func Local(g *core.Graph) map[string]float64 {
	out := make(map[string]float64)
	if g == nil {
		return out
	}
	ids, values := coefficients(core.UndirectedSimpleView(g))
	for i, id := range ids {
		out[id] = values[i]
	}

	return out
}

// Average returns the mean local clustering coefficient of g, 0 when g has no vertices.
// Coefficients are summed in ascending vertex-ID order, so equal graphs give
// bit-identical results.
func Average(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	_, values := coefficients(core.UndirectedSimpleView(g))
	if len(values) == 0 {
		return 0
	}

	return stat.Mean(values, nil)
}

// coefficients computes the coefficient of each vertex of the simple view u,
// aligned with u.Vertices() (sorted ascending).
func coefficients(u *core.Graph) ([]string, []float64) {
	ids := u.Vertices()
	values := make([]float64, len(ids))

	var (
		nbrs  []string
		err   error
		links int
	)
	for n, id := range ids {
		if nbrs, err = u.NeighborIDs(id); err != nil || len(nbrs) < 2 {
			continue
		}
		links = 0
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if u.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		k := float64(len(nbrs))
		values[n] = float64(links) / (k * (k - 1) / 2)
	}

	return ids, values
}
