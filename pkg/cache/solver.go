package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wasteroute/pkg/domain"
)

// RouteCache специализированный кэш для результатов solve-операций движка
// маршрутизации, заменяет пересчёт Held-Karp/greedy/CVRP повторным запросом
// с тем же графом, спросом и ёмкостью.
type RouteCache struct {
	cache      Cache
	defaultTTL time.Duration
}

// CachedRoute кэшированный результат solve-операции.
type CachedRoute struct {
	Algorithm     string        `json:"algorithm"`
	Path          []int         `json:"path,omitempty"`
	Routes        []CachedLeg   `json:"routes,omitempty"`
	TotalDistance float64       `json:"total_distance"`
	ComputedAt    time.Time     `json:"computed_at"`
}

// CachedLeg кэшированный отдельный маршрут в решении CVRP.
type CachedLeg struct {
	Nodes         []int   `json:"nodes"`
	Distance      float64 `json:"distance"`
	TotalQuantity int     `json:"total_quantity"`
}

// NewRouteCache создаёт кэш для результатов движка маршрутизации
func NewRouteCache(cache Cache, defaultTTL time.Duration) *RouteCache {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &RouteCache{
		cache:      cache,
		defaultTTL: defaultTTL,
	}
}

// key строит ключ кэша из графа, алгоритма, спроса и ёмкости.
func (rc *RouteCache) key(graph *domain.Graph, algorithm string, quantities []int, capacity int) string {
	graphHash := GraphHash(graph)
	if len(quantities) == 0 && capacity == domain.NoCapacity {
		return BuildSolveKey(graphHash, algorithm)
	}
	return BuildSolveKeyWithOptions(graphHash, algorithm, DemandHash(quantities, capacity))
}

// Get получает кэшированный результат
func (rc *RouteCache) Get(ctx context.Context, graph *domain.Graph, algorithm string, quantities []int, capacity int) (*CachedRoute, bool, error) {
	key := rc.key(graph, algorithm, quantities, capacity)

	data, err := rc.cache.Get(ctx, key)
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var result CachedRoute
	if err := json.Unmarshal(data, &result); err != nil {
		// Повреждённый кэш — удаляем, ошибку удаления игнорируем намеренно
		_ = rc.cache.Delete(ctx, key) //nolint:errcheck // best effort cleanup
		return nil, false, nil
	}

	return &result, true, nil
}

// SetPath сохраняет результат однопутевого решения (exact/greedy) в кэш
func (rc *RouteCache) SetPath(ctx context.Context, graph *domain.Graph, algorithm string, quantities []int, capacity int, sol *domain.PathSolution, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = rc.defaultTTL
	}

	result := &CachedRoute{
		Algorithm:     algorithm,
		Path:          sol.Path,
		TotalDistance: sol.Distance,
		ComputedAt:    time.Now(),
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return rc.cache.Set(ctx, rc.key(graph, algorithm, quantities, capacity), data, ttl)
}

// SetMultiRoute сохраняет результат CVRP решения в кэш
func (rc *RouteCache) SetMultiRoute(ctx context.Context, graph *domain.Graph, algorithm string, quantities []int, capacity int, sol *domain.MultiRouteSolution, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = rc.defaultTTL
	}

	result := &CachedRoute{
		Algorithm:     algorithm,
		TotalDistance: sol.TotalDistance,
		ComputedAt:    time.Now(),
	}
	for _, r := range sol.Routes {
		result.Routes = append(result.Routes, CachedLeg{
			Nodes:         r.Nodes,
			Distance:      r.Distance,
			TotalQuantity: r.TotalQuantity,
		})
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return rc.cache.Set(ctx, rc.key(graph, algorithm, quantities, capacity), data, ttl)
}

// ToPathSolution конвертирует кэшированный результат обратно в PathSolution.
func (r *CachedRoute) ToPathSolution() *domain.PathSolution {
	return &domain.PathSolution{Path: r.Path, Distance: r.TotalDistance}
}

// ToMultiRouteSolution конвертирует кэшированный результат обратно в MultiRouteSolution.
func (r *CachedRoute) ToMultiRouteSolution() *domain.MultiRouteSolution {
	sol := &domain.MultiRouteSolution{TotalDistance: r.TotalDistance}
	for _, leg := range r.Routes {
		sol.Routes = append(sol.Routes, domain.Route{
			Nodes:         leg.Nodes,
			Distance:      leg.Distance,
			TotalQuantity: leg.TotalQuantity,
		})
	}
	return sol
}

// Invalidate удаляет кэш для графа
func (rc *RouteCache) Invalidate(ctx context.Context, graph *domain.Graph) error {
	graphHash := GraphHash(graph)
	pattern := fmt.Sprintf("solve:*:%s*", graphHash)
	_, err := rc.cache.DeleteByPattern(ctx, pattern)
	return err
}

// InvalidateAll удаляет весь кэш результатов движка маршрутизации
func (rc *RouteCache) InvalidateAll(ctx context.Context) (int64, error) {
	return rc.cache.DeleteByPattern(ctx, "solve:*")
}
