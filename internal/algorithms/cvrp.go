package algorithms

import (
	"wasteroute/pkg/domain"
)

// =============================================================================
// CVRP sweep solver (nearest-feasible, multi-truck)
// =============================================================================

// CVRPSweep builds a set of routes, each starting at depot 0 and ending at
// the dump, together covering every house with each route's total demand
// at most capacity, via the nearest-feasible sweep heuristic in §4.4.
//
// capacity == domain.NoCapacity delegates to the exact solver (§4.2) and
// wraps the result as a one-route solution whose total quantity is the sum
// of all house demands.
func CVRPSweep(g *domain.Graph, quantities []int, capacity int) (*domain.MultiRouteSolution, error) {
	n := g.N()
	dump := g.Dump()

	if capacity == domain.NoCapacity {
		return delegateToSinglePath(g, quantities, dump)
	}

	if n <= 1 {
		return &domain.MultiRouteSolution{Routes: nil, TotalDistance: 0}, nil
	}

	if err := checkCapacityFeasible(quantities, capacity, dump); err != nil {
		return nil, err
	}

	served := make([]bool, n)
	unservedCount := dump - 1

	sol := &domain.MultiRouteSolution{}

	for unservedCount > 0 {
		route := buildRoute(g, quantities, served, capacity, dump)
		unservedCount -= len(route.Nodes) - 2 // exclude depot and dump
		sol.Routes = append(sol.Routes, route)
		sol.TotalDistance += route.Distance
	}

	return sol, nil
}

// buildRoute constructs a single truck's route: open at the depot, greedily
// append the nearest feasible unserved house (tie-broken by larger quantity,
// then smaller index), and close to the dump once no house fits.
func buildRoute(g *domain.Graph, quantities []int, served []bool, capacity, dump int) domain.Route {
	nodes := make([]int, 0, dump+1)
	nodes = append(nodes, 0)

	u := 0
	load := 0
	total := 0.0

	for {
		h, dist := selectNearestFeasible(g, quantities, served, u, load, capacity, dump)
		if h == -1 {
			break
		}

		total += dist
		nodes = append(nodes, h)
		served[h] = true
		load += quantities[h]
		u = h

		if load == capacity {
			break
		}
		if !anyFits(quantities, served, capacity-load, dump) {
			break
		}
	}

	total += g.Distances[u][dump]
	nodes = append(nodes, dump)

	return domain.Route{Nodes: nodes, Distance: total, TotalQuantity: load}
}

// selectNearestFeasible picks the unserved house minimizing distance from u
// among those fitting the remaining capacity, breaking ties per §4.4: equal
// distance within domain.Epsilon prefers larger quantity, then smaller index.
// Returns house index -1 if no house qualifies.
func selectNearestFeasible(g *domain.Graph, quantities []int, served []bool, u, load, capacity, dump int) (int, float64) {
	best := -1
	bestDist := domain.Infinity
	bestQty := -1

	for h := 1; h < dump; h++ {
		if served[h] || load+quantities[h] > capacity {
			continue
		}
		d := g.Distances[u][h]

		switch {
		case best == -1:
			best, bestDist, bestQty = h, d, quantities[h]
		case domain.FloatLess(d, bestDist):
			best, bestDist, bestQty = h, d, quantities[h]
		case domain.FloatEquals(d, bestDist):
			if quantities[h] > bestQty {
				best, bestDist, bestQty = h, d, quantities[h]
			}
			// equal distance, equal-or-smaller quantity: keep the
			// earlier (smaller-index) candidate already held.
		}
	}

	if best == -1 {
		return -1, 0
	}
	return best, bestDist
}

// anyFits reports whether any unserved house has demand at most headroom,
// used to close a route early instead of scanning a doomed candidate set.
func anyFits(quantities []int, served []bool, headroom, dump int) bool {
	for h := 1; h < dump; h++ {
		if !served[h] && quantities[h] <= headroom {
			return true
		}
	}
	return false
}

// delegateToSinglePath runs the exact solver (the same solver SolvePath uses
// whenever capacity is not a positive number) and wraps its result as a
// one-route MultiRouteSolution, so that SolveCVRP(NoCapacity) and SolvePath
// agree on the same graph, per the round-trip law in §8.
func delegateToSinglePath(g *domain.Graph, quantities []int, dump int) (*domain.MultiRouteSolution, error) {
	sol := ExactPath(g)
	total := totalDemand(quantities, dump)

	return &domain.MultiRouteSolution{
		Routes: []domain.Route{{
			Nodes:         sol.Path,
			Distance:      sol.Distance,
			TotalQuantity: total,
		}},
		TotalDistance: sol.Distance,
	}, nil
}
