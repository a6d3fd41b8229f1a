package algorithms

import (
	"wasteroute/pkg/domain"
)

// =============================================================================
// Capacity greedy single-vehicle solver
// =============================================================================

// GreedyPath runs the capacity-aware nearest-feasible-neighbor solver: one
// vehicle visits every house subject to capacity C, returning to the depot
// to empty whenever it cannot fit the next reachable customer, and
// terminating at the dump, per §4.3.
//
// quantities is indexed by node id and must cover every house (1..N-2);
// depot and dump entries are ignored. Returns apperror.CodeInfeasibleDemand
// if any house's demand exceeds capacity — the main loop would otherwise
// never terminate on that house.
func GreedyPath(g *domain.Graph, quantities []int, capacity int) (*domain.PathSolution, error) {
	n := g.N()
	if n <= 1 {
		return ExactPath(g), nil
	}

	dump := g.Dump()

	if err := checkCapacityFeasible(quantities, capacity, dump); err != nil {
		return nil, err
	}

	visited := make([]bool, n)
	path := make([]int, 0, n*2)
	path = append(path, 0)

	u := 0
	load := 0
	remaining := dump - 1 // number of houses: indices 1..dump-1

	for remaining > 0 {
		best := -1
		bestDist := domain.Infinity

		for h := 1; h < dump; h++ {
			if visited[h] || load+quantities[h] > capacity {
				continue
			}
			d := g.Distances[u][h]
			if d < bestDist {
				bestDist = d
				best = h
			}
		}

		if best == -1 {
			// Nothing fits with the current load: return to depot and reset.
			path = append(path, 0)
			u = 0
			load = 0
			continue
		}

		path = append(path, best)
		visited[best] = true
		load += quantities[best]
		u = best
		remaining--
	}

	path = append(path, dump)

	return &domain.PathSolution{Path: path, Distance: routeDistance(g, path)}, nil
}
