package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"wasteroute/pkg/domain"
)

// GraphHash вычисляет хеш графа маршрутизации для использования как ключ кэша
func GraphHash(graph *domain.Graph) string {
	if graph == nil {
		return ""
	}

	data := graphToCanonical(graph)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:16])
}

// graphToCanonical создаёт детерминированное представление графа: точки в
// порядке индекса (они уже позиционные, сортировка не требуется) и выбранная
// метрика расстояния.
func graphToCanonical(graph *domain.Graph) []byte {
	var result []byte
	result = append(result, []byte(fmt.Sprintf("m:%d;n:%d;", graph.Metric, graph.N()))...)
	for _, p := range graph.Points {
		result = append(result, []byte(fmt.Sprintf("p:%.6f:%.6f;", p.X, p.Y))...)
	}
	return result
}

// DemandHash вычисляет хеш вектора спроса и ёмкости транспорта, учитываемых
// при построении ключа кэша решения CVRP/greedy.
func DemandHash(quantities []int, capacity int) string {
	var result []byte
	result = append(result, []byte(fmt.Sprintf("c:%d;", capacity))...)
	for i, q := range quantities {
		result = append(result, []byte(fmt.Sprintf("q%d:%d;", i, q))...)
	}
	hash := sha256.Sum256(result)
	return hex.EncodeToString(hash[:16])
}

// BuildSolveKey строит ключ кэша для результата решения
func BuildSolveKey(graphHash, algorithm string) string {
	return fmt.Sprintf("solve:%s:%s", algorithm, graphHash)
}

// BuildSolveKeyWithOptions строит ключ с учётом опций
func BuildSolveKeyWithOptions(graphHash, algorithm, optionsHash string) string {
	if optionsHash == "" {
		return BuildSolveKey(graphHash, algorithm)
	}
	return fmt.Sprintf("solve:%s:%s:%s", algorithm, graphHash, optionsHash)
}

// QuickHash быстрый хеш для произвольных данных
func QuickHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ShortHash короткий хеш (16 символов)
func ShortHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
