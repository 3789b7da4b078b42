package roadmap

import "math"

// Heuristic estimates the straight-line distance in km between cities a
// and b: the Euclidean distance between their coordinates in degrees,
// scaled by KmPerDegree. For the small regional maps this package targets,
// the estimate stays at or below true road distance, which keeps A*
// optimal.
//
// If either city has no recorded coordinates the estimate is 0. Zero is
// still admissible (it never overestimates), so a partially specified map
// silently weakens guidance rather than failing the search. Callers that
// need strict coverage should check HasCity up front.
//
// Complexity: O(1)
func (m *RoadMap) Heuristic(a, b string) float64 {
	pa, okA := m.coords[a]
	pb, okB := m.coords[b]
	if !okA || !okB {
		return 0
	}

	dLat := pb.Lat() - pa.Lat()
	dLng := pb.Lon() - pa.Lon()

	return math.Sqrt(dLat*dLat+dLng*dLng) * KmPerDegree
}
