package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
)

// Стандартные ключи атрибутов
const (
	// Граф
	AttrGraphNodes  = "graph.nodes"
	AttrGraphMetric = "graph.metric"
	AttrDepotID     = "graph.depot_id"
	AttrDumpID      = "graph.dump_id"

	// Алгоритм
	AttrAlgorithm     = "algorithm.name"
	AttrTotalDistance = "algorithm.total_distance"
	AttrRouteCount    = "algorithm.route_count"

	// Диспетчеризация
	AttrCapacity     = "dispatch.capacity"
	AttrTotalDemand  = "dispatch.total_demand"
	AttrHousesServed = "dispatch.houses_served"

	// Валидация
	AttrValidationLevel  = "validation.level"
	AttrValidationErrors = "validation.errors"
	AttrValidationPassed = "validation.passed"
)

// GraphAttributes возвращает атрибуты графа
func GraphAttributes(nodes int, metric string, depotID, dumpID int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrGraphNodes, nodes),
		attribute.String(AttrGraphMetric, metric),
		attribute.Int(AttrDepotID, depotID),
		attribute.Int(AttrDumpID, dumpID),
	}
}

// AlgorithmAttributes возвращает атрибуты solve-операции
func AlgorithmAttributes(name string, totalDistance float64, routeCount int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrAlgorithm, name),
		attribute.Float64(AttrTotalDistance, totalDistance),
		attribute.Int(AttrRouteCount, routeCount),
	}
}

// DispatchAttributes возвращает атрибуты диспетчеризации с учётом ёмкости
func DispatchAttributes(capacity, totalDemand, housesServed int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int(AttrCapacity, capacity),
		attribute.Int(AttrTotalDemand, totalDemand),
		attribute.Int(AttrHousesServed, housesServed),
	}
}

// ValidationAttributes возвращает атрибуты валидации
func ValidationAttributes(level string, errorsCount int, passed bool) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrValidationLevel, level),
		attribute.Int(AttrValidationErrors, errorsCount),
		attribute.Bool(AttrValidationPassed, passed),
	}
}
