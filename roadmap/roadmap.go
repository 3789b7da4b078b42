package roadmap

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
)

// RoadMap is the in-memory road network.
//
// It stores two independent tables:
//
//   - coords: city ID → orb.Point (longitude, latitude in degrees),
//     consulted only by the heuristic and the spatial index;
//   - roads:  city ID → neighbor ID → distance in km, consulted by search.
//
// A city may appear in either table without the other: a city with
// coordinates but no roads is a valid dead end, and a city with roads but
// no coordinates simply gets a zero heuristic estimate.
type RoadMap struct {
	coords map[string]orb.Point          // city ID → (lng, lat)
	roads  map[string]map[string]float64 // city ID → neighbor ID → km

	index *cityIndex // lazily built R-tree over coords; nil until first Nearest
}

// NewRoadMap creates an empty road map.
// Complexity: O(1)
func NewRoadMap() *RoadMap {
	return &RoadMap{
		coords: make(map[string]orb.Point),
		roads:  make(map[string]map[string]float64),
	}
}

// AddCity records the coordinates of city id (degrees).
// Re-adding a city overwrites its coordinates.
// Returns ErrEmptyCityID if id is empty.
// Complexity: O(1)
func (m *RoadMap) AddCity(id string, lat, lng float64) error {
	if id == "" {
		return ErrEmptyCityID
	}
	// orb points are (lng, lat) ordered.
	m.coords[id] = orb.Point{lng, lat}
	// Any previously built spatial index is now stale.
	m.index = nil

	return nil
}

// AddRoad inserts an undirected road between a and b with the given
// distance in km, stored as two directed adjacency entries with symmetric
// weight. Re-adding a road overwrites its distance in both directions.
//
// Returns:
//
//   - ErrEmptyCityID     if either endpoint is empty.
//   - ErrInvalidDistance if km is not strictly positive.
//
// Complexity: O(1)
func (m *RoadMap) AddRoad(a, b string, km float64) error {
	// 1) Validate endpoints.
	if a == "" || b == "" {
		return ErrEmptyCityID
	}

	// 2) Validate the weight; fail fast so searches never see bad edges.
	if !(km > 0) {
		return fmt.Errorf("%w: %s—%s distance=%v", ErrInvalidDistance, a, b, km)
	}

	// 3) Insert both directed entries.
	if m.roads[a] == nil {
		m.roads[a] = make(map[string]float64)
	}
	if m.roads[b] == nil {
		m.roads[b] = make(map[string]float64)
	}
	m.roads[a][b] = km
	m.roads[b][a] = km

	return nil
}

// Neighbors returns the adjacency mapping neighbor ID → distance (km) for
// city. Unknown or dead-end cities yield an empty mapping, never an error:
// absence of roads is a valid terminal state for a search.
//
// The returned map is shared with the RoadMap and must not be modified.
// Complexity: O(1)
func (m *RoadMap) Neighbors(city string) map[string]float64 {
	return m.roads[city]
}

// HasCity reports whether city has recorded coordinates.
func (m *RoadMap) HasCity(city string) bool {
	_, ok := m.coords[city]

	return ok
}

// Cities returns the sorted IDs of all cities with recorded coordinates.
// Complexity: O(V log V)
func (m *RoadMap) Cities() []string {
	ids := make([]string, 0, len(m.coords))
	for id := range m.coords {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// CityCount returns the number of cities with recorded coordinates.
func (m *RoadMap) CityCount() int { return len(m.coords) }

// RoadCount returns the number of undirected roads.
// Each road is stored as two directed entries; self-loops (a==b) as one.
func (m *RoadMap) RoadCount() int {
	var directed, loops int
	for from, adj := range m.roads {
		for to := range adj {
			if from == to {
				loops++
				continue
			}
			directed++
		}
	}

	return directed/2 + loops
}
