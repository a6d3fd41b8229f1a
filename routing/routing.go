// Package routing is the public entry point of the waste-collection routing
// engine: it builds a Graph from raw points, and wraps the three
// internal/algorithms solvers with logging, metrics, tracing, and caching.
//
// # Thread Safety
//
// BuildGraph, SolvePath and SolveCVRP are stateless and safe to call
// concurrently. Dispatch shares no mutable state across calls beyond the
// package-level logger/metrics/cache singletons, which are themselves safe
// for concurrent use.
//
// # Context Support
//
// Every operation that may touch the cache or emit a trace span takes a
// context.Context for cancellation and span propagation; the solvers
// themselves never block or check ctx, per §5 of the design (no I/O inside
// internal/algorithms).
package routing

import (
	"context"
	"fmt"
	"time"

	"wasteroute/internal/algorithms"
	"wasteroute/pkg/apperror"
	"wasteroute/pkg/cache"
	"wasteroute/pkg/domain"
	"wasteroute/pkg/logger"
	"wasteroute/pkg/metrics"
	"wasteroute/pkg/telemetry"

	"github.com/google/uuid"
)

// Shape selects which solution form the caller wants from Dispatch.
type Shape int

const (
	// ShapeSinglePath requests a single-vehicle PathSolution (§4.2/§4.3).
	ShapeSinglePath Shape = iota
	// ShapeMultiRoute requests a multi-truck MultiRouteSolution (§4.4).
	ShapeMultiRoute
)

// BuildGraph allocates a Graph from raw points and validates its resulting
// distance matrix before returning it, per §4.1/§6.
func BuildGraph(points []domain.Point, metric domain.Metric) (*domain.Graph, error) {
	if len(points) == 0 {
		return nil, apperror.Wrap(apperror.ErrEmptyGraph, apperror.CodeEmptyGraph,
			"cannot build a graph from zero points")
	}

	g := domain.BuildGraph(points, metric)
	if err := g.Validate(); err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidGraph, "built graph failed validation")
	}
	return g, nil
}

// SolvePath runs the single-vehicle solver: the capacity-aware greedy
// nearest-feasible-neighbor dispatcher (§4.3) when capacity > 0 and demands
// are supplied, otherwise the exact Held-Karp path (§4.2).
func SolvePath(ctx context.Context, g *domain.Graph, dump int, demands []int, capacity int) (*domain.PathSolution, error) {
	_ = dump // the dump node is always g.Dump(); kept for interface symmetry with SolveCVRP

	algo := algorithms.AlgorithmExact
	if capacity > 0 && len(demands) > 0 {
		algo = algorithms.AlgorithmGreedy
	}

	ctx, span := telemetry.StartSpan(ctx, "routing.SolvePath",
		telemetry.WithAttributes(telemetry.GraphAttributes(g.N(), g.Metric.String(), 0, g.Dump())...))
	defer span.End()

	start := time.Now()
	m := metrics.Get()
	m.RecordGraphSize("solve_path", g.N())

	var sol *domain.PathSolution
	var err error
	if algo == algorithms.AlgorithmGreedy {
		sol, err = algorithms.GreedyPath(g, demands, capacity)
	} else {
		sol = algorithms.ExactPath(g)
	}

	m.RecordSolveOperation(algo, err == nil, time.Since(start), pathDistance(sol))
	if err != nil {
		telemetry.SetError(ctx, err)
		logger.Error("solve path failed", "algorithm", algo, "error", err)
		return nil, err
	}

	telemetry.SetAttributes(ctx, telemetry.AlgorithmAttributes(algo, sol.Distance, 1)...)
	logger.Debug("solve path done", "algorithm", algo, "distance", sol.Distance, "nodes", len(sol.Path))
	return sol, nil
}

// SolveCVRP runs the CVRP sweep (§4.4), or delegates to the single-vehicle
// solver and wraps it as one route when capacity is domain.NoCapacity.
func SolveCVRP(ctx context.Context, g *domain.Graph, demands []int, capacity int, dump int) (*domain.MultiRouteSolution, error) {
	_ = dump

	ctx, span := telemetry.StartSpan(ctx, "routing.SolveCVRP",
		telemetry.WithAttributes(telemetry.GraphAttributes(g.N(), g.Metric.String(), 0, g.Dump())...))
	defer span.End()

	start := time.Now()
	m := metrics.Get()
	m.RecordGraphSize("solve_cvrp", g.N())

	sol, err := algorithms.CVRPSweep(g, demands, capacity)

	m.RecordSolveOperation(algorithms.AlgorithmCVRP, err == nil, time.Since(start), multiRouteDistance(sol))
	if err != nil {
		telemetry.SetError(ctx, err)
		logger.Error("solve cvrp failed", "error", err)
		return nil, err
	}

	m.RecordRouteCount(algorithms.AlgorithmCVRP, sol.NumRoutes())
	telemetry.SetAttributes(ctx, telemetry.AlgorithmAttributes(algorithms.AlgorithmCVRP, sol.TotalDistance, sol.NumRoutes())...)
	logger.Debug("solve cvrp done", "routes", sol.NumRoutes(), "total_distance", sol.TotalDistance)
	return sol, nil
}

// Dispatch is the mode-selection entry point: it picks a solver per §4.5,
// generates a correlation id, checks the route cache, and delegates to
// SolvePath or SolveCVRP. capacity <= 0 or N <= 1 always forces the exact
// solver regardless of shape.
func Dispatch(ctx context.Context, g *domain.Graph, demands []int, capacity int, shape Shape, routeCache *cache.RouteCache) (any, error) {
	correlationID := uuid.New().String()
	log := logger.WithRequestID(correlationID)

	algo := dispatchAlgorithm(g, capacity, shape)

	ctx, span := telemetry.StartSpan(ctx, "routing.Dispatch",
		telemetry.WithAttributes(append(
			telemetry.GraphAttributes(g.N(), g.Metric.String(), 0, g.Dump()),
			telemetry.AlgorithmAttributes(algo, 0, 0)...)...))
	defer span.End()

	telemetry.SetAttributes(ctx, telemetry.DispatchAttributes(capacity, totalDemand(demands, g.Dump()), g.Dump()-1)...)
	log.Info("dispatch start", "algorithm", algo, "nodes", g.N(), "capacity", capacity)

	ve := ValidatePreconditions(demands, capacity, g.Dump())
	telemetry.SetAttributes(ctx, telemetry.ValidationAttributes("capacity", len(ve.Warnings), !ve.HasWarnings())...)
	if ve.HasWarnings() {
		err := apperror.NewCritical(apperror.CodeInfeasibleDemand, "one or more houses exceed vehicle capacity").
			WithDetails("violations", ve.WarningMessages())
		telemetry.SetError(ctx, err)
		log.Error("dispatch infeasible demand", "violations", ve.WarningMessages())
		return nil, err
	}

	m := metrics.Get()
	if routeCache != nil {
		if cached, ok, err := routeCache.Get(ctx, g, algo, demands, capacity); err == nil && ok {
			m.RecordCacheHit(algo)
			log.Debug("dispatch cache hit", "algorithm", algo)
			if algo == algorithms.AlgorithmCVRP {
				return cached.ToMultiRouteSolution(), nil
			}
			return cached.ToPathSolution(), nil
		}
		m.RecordCacheMiss(algo)
	}

	if algo == algorithms.AlgorithmCVRP {
		sol, err := SolveCVRP(ctx, g, demands, capacity, g.Dump())
		if err != nil {
			return nil, err
		}
		if routeCache != nil {
			_ = routeCache.SetMultiRoute(ctx, g, algo, demands, capacity, sol, 0)
		}
		log.Info("dispatch done", "algorithm", algo, "routes", sol.NumRoutes())
		return sol, nil
	}

	sol, err := SolvePath(ctx, g, g.Dump(), demands, capacity)
	if err != nil {
		return nil, err
	}
	if routeCache != nil {
		_ = routeCache.SetPath(ctx, g, algo, demands, capacity, sol, 0)
	}
	log.Info("dispatch done", "algorithm", algo, "distance", sol.Distance)
	return sol, nil
}

// ValidatePreconditions scans demand against capacity and collects one
// warning per house whose demand exceeds capacity, per the diagnostic-sink
// design in §7. Dispatch calls this before solving and promotes any
// warnings into a single hard CodeInfeasibleDemand error (§9's resolution
// of the "quantities[h] > C" open question); a caller invoking SolvePath or
// SolveCVRP directly instead of going through Dispatch can call this first
// to see every offending house, rather than only the first one
// internal/algorithms stops on.
func ValidatePreconditions(demands []int, capacity, dump int) *apperror.ValidationErrors {
	ve := apperror.NewValidationErrors()
	if capacity <= 0 {
		return ve
	}
	for h := 1; h < dump && h < len(demands); h++ {
		if demands[h] > capacity {
			ve.AddWarning(apperror.CodeInfeasibleDemand,
				fmt.Sprintf("house %d demand %d exceeds capacity %d", h, demands[h], capacity))
		}
	}
	return ve
}

// dispatchAlgorithm applies the §4.5 selection rule.
func dispatchAlgorithm(g *domain.Graph, capacity int, shape Shape) string {
	if capacity <= 0 || g.N() <= 1 {
		return algorithms.AlgorithmExact
	}
	if shape == ShapeMultiRoute {
		return algorithms.AlgorithmCVRP
	}
	return algorithms.AlgorithmGreedy
}

func pathDistance(sol *domain.PathSolution) float64 {
	if sol == nil {
		return 0
	}
	return sol.Distance
}

func multiRouteDistance(sol *domain.MultiRouteSolution) float64 {
	if sol == nil {
		return 0
	}
	return sol.TotalDistance
}

// totalDemand sums demand over the house range (1..dump-1), used only for
// the dispatch trace span; the solvers compute their own totals internally.
func totalDemand(demands []int, dump int) int {
	total := 0
	for h := 1; h < dump && h < len(demands); h++ {
		total += demands[h]
	}
	return total
}
