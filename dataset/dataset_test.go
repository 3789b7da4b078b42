package dataset_test

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/rotagraph/rota/astar"
	"github.com/rotagraph/rota/dataset"
	"github.com/rotagraph/rota/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadBrazil(t *testing.T) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Load(filepath.Join("testdata", "brazil.json"))
	require.NoError(t, err)

	return d
}

// TestLoad_BrazilFixture checks the document sections survive the round
// trip from disk.
func TestLoad_BrazilFixture(t *testing.T) {
	d := loadBrazil(t)

	assert.Len(t, d.Cities, 12)
	assert.Len(t, d.Roads, 17)
	assert.Len(t, d.TestRoutes, 5)

	sp, ok := d.Cities["São Paulo"]
	require.True(t, ok)
	assert.InDelta(t, -23.55, sp.Lat, 1e-9)
	assert.InDelta(t, -46.64, sp.Lng, 1e-9)
}

// TestLoad_MissingFile wraps the underlying I/O error with context.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join("testdata", "no_such_file.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_file.json")
}

// TestParse_Malformed rejects broken JSON.
func TestParse_Malformed(t *testing.T) {
	_, err := dataset.Parse([]byte(`{"cities": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset:")
}

// TestRoadMap_BuildsSymmetricGraph verifies the directional road records
// expand into bidirectional adjacency.
func TestRoadMap_BuildsSymmetricGraph(t *testing.T) {
	m, err := loadBrazil(t).RoadMap()
	require.NoError(t, err)

	assert.Equal(t, 12, m.CityCount())
	assert.Equal(t, 17, m.RoadCount())
	assert.Equal(t, 429.0, m.Neighbors("São Paulo")["Rio de Janeiro"])
	assert.Equal(t, 429.0, m.Neighbors("Rio de Janeiro")["São Paulo"])
}

// TestRoadMap_InvalidRoadFailsFast propagates construction errors with the
// offending record's context.
func TestRoadMap_InvalidRoadFailsFast(t *testing.T) {
	d, err := dataset.Parse([]byte(`{
		"cities": {"A": {"lat": 0, "lng": 0}},
		"roads": [{"from": "A", "to": "B", "distance": -1}]
	}`))
	require.NoError(t, err)

	_, err = d.RoadMap()
	require.ErrorIs(t, err, roadmap.ErrInvalidDistance)
	assert.Contains(t, err.Error(), "A—B")
}

// TestBrazil_KnownShortestRoutes pins the optimal cost and length of every
// route the fixture's study runs, verified by hand against the road list.
func TestBrazil_KnownShortestRoutes(t *testing.T) {
	m, err := loadBrazil(t).RoadMap()
	require.NoError(t, err)

	cases := []struct {
		start, goal string
		cost        float64
		length      int
	}{
		{"Belo Horizonte", "Recife", 2211, 2},  // via Salvador
		{"Rio de Janeiro", "Manaus", 6240, 4},  // via BH, Brasília, Belém
		{"Curitiba", "Salvador", 2366, 3},      // via São Paulo, BH
		{"São Paulo", "Belém", 3155, 2},        // via Brasília
		{"Porto Alegre", "Fortaleza", 4324, 3}, // via São Paulo, Brasília
	}
	for _, tc := range cases {
		res, err := astar.Search(m, tc.start, tc.goal)
		require.NoError(t, err, "%s -> %s", tc.start, tc.goal)
		require.True(t, res.Found, "%s -> %s", tc.start, tc.goal)
		assert.InDelta(t, tc.cost, res.Cost, 1e-9, "%s -> %s cost", tc.start, tc.goal)
		assert.Equal(t, tc.length, res.Length, "%s -> %s length", tc.start, tc.goal)
	}
}

// TestBrazil_HeuristicAdmissible checks h(a,b) ≤ true shortest road
// distance for every city pair in the fixture, via brute-force
// Floyd–Warshall. This is the property that keeps A* optimal on this map.
func TestBrazil_HeuristicAdmissible(t *testing.T) {
	d := loadBrazil(t)
	m, err := d.RoadMap()
	require.NoError(t, err)

	ids := m.Cities()
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	// All-pairs shortest road distances.
	n := len(ids)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for _, id := range ids {
		for nb, km := range m.Neighbors(id) {
			dist[idx[id]][idx[nb]] = km
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}

	for i, a := range ids {
		for j, b := range ids {
			if math.IsInf(dist[i][j], 1) {
				continue // disconnected pair, nothing to compare
			}
			h := m.Heuristic(a, b)
			assert.LessOrEqual(t, h, dist[i][j]+1e-9,
				"heuristic overestimates %s -> %s", a, b)
		}
	}
}
