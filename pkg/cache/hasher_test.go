package cache

import (
	"testing"

	"wasteroute/pkg/domain"
)

func TestGraphHash(t *testing.T) {
	t.Run("nil graph", func(t *testing.T) {
		hash := GraphHash(nil)
		if hash != "" {
			t.Errorf("GraphHash(nil) = %v, want empty string", hash)
		}
	})

	t.Run("same graph produces same hash", func(t *testing.T) {
		g := domain.BuildGraph([]domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, domain.MetricEuclidean)

		hash1 := GraphHash(g)
		hash2 := GraphHash(g)

		if hash1 != hash2 {
			t.Errorf("same graph should produce same hash: %v != %v", hash1, hash2)
		}
	})

	t.Run("different graphs produce different hashes", func(t *testing.T) {
		g1 := domain.BuildGraph([]domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, domain.MetricEuclidean)
		g2 := domain.BuildGraph([]domain.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}, domain.MetricEuclidean)

		hash1 := GraphHash(g1)
		hash2 := GraphHash(g2)

		if hash1 == hash2 {
			t.Error("different graphs should produce different hashes")
		}
	})

	t.Run("different metric produces different hash", func(t *testing.T) {
		points := []domain.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}
		g1 := domain.BuildGraph(points, domain.MetricEuclidean)
		g2 := domain.BuildGraph(points, domain.MetricManhattan)

		if GraphHash(g1) == GraphHash(g2) {
			t.Error("different metrics should produce different hashes")
		}
	})
}

func TestDemandHash(t *testing.T) {
	h1 := DemandHash([]int{0, 2, 3, 0}, 10)
	h2 := DemandHash([]int{0, 2, 3, 0}, 10)
	if h1 != h2 {
		t.Error("same demand/capacity should produce same hash")
	}

	h3 := DemandHash([]int{0, 2, 4, 0}, 10)
	if h1 == h3 {
		t.Error("different demand should produce different hash")
	}

	h4 := DemandHash([]int{0, 2, 3, 0}, 5)
	if h1 == h4 {
		t.Error("different capacity should produce different hash")
	}
}

func TestBuildSolveKey(t *testing.T) {
	key := BuildSolveKey("abc123", "exact")
	expected := "solve:exact:abc123"
	if key != expected {
		t.Errorf("BuildSolveKey() = %v, want %v", key, expected)
	}
}

func TestBuildSolveKeyWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		graphHash   string
		algorithm   string
		optionsHash string
		expected    string
	}{
		{
			name:        "without options",
			graphHash:   "abc123",
			algorithm:   "exact",
			optionsHash: "",
			expected:    "solve:exact:abc123",
		},
		{
			name:        "with options",
			graphHash:   "abc123",
			algorithm:   "cvrp",
			optionsHash: "opt456",
			expected:    "solve:cvrp:abc123:opt456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := BuildSolveKeyWithOptions(tt.graphHash, tt.algorithm, tt.optionsHash)
			if key != tt.expected {
				t.Errorf("BuildSolveKeyWithOptions() = %v, want %v", key, tt.expected)
			}
		})
	}
}

func TestQuickHash(t *testing.T) {
	data := []byte("test data")
	hash := QuickHash(data)

	if len(hash) != 64 { // SHA256 hex = 64 chars
		t.Errorf("QuickHash length = %d, want 64", len(hash))
	}

	// Same data should produce same hash
	hash2 := QuickHash(data)
	if hash != hash2 {
		t.Error("same data should produce same hash")
	}
}

func TestShortHash(t *testing.T) {
	data := []byte("test data")
	hash := ShortHash(data)

	if len(hash) != 16 {
		t.Errorf("ShortHash length = %d, want 16", len(hash))
	}
}
