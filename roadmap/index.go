package roadmap

import (
	"github.com/dhconnelly/rtreego"
)

// pointTolerance is the side length of the degenerate rectangle used to
// store a city point in the R-tree. rtreego rejects zero-extent rects.
const pointTolerance = 1e-9

// cityEntry wraps one city for R-tree storage.
type cityEntry struct {
	id   string
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (c *cityEntry) Bounds() rtreego.Rect { return c.rect }

// cityIndex is an R-tree over the coordinate table, built lazily on first
// Nearest call and invalidated by AddCity.
type cityIndex struct {
	tree *rtreego.Rtree
}

// buildIndex constructs the R-tree from the current coordinate table.
// Complexity: O(V log V)
func (m *RoadMap) buildIndex() *cityIndex {
	tree := rtreego.NewTree(2, 2, 8) // 2D; small fan-out suits small maps
	for id, p := range m.coords {
		rect, err := rtreego.NewRect(
			rtreego.Point{p.Lon(), p.Lat()},
			[]float64{pointTolerance, pointTolerance},
		)
		if err != nil {
			continue // degenerate coordinates; skip rather than poison the index
		}
		tree.Insert(&cityEntry{id: id, rect: rect})
	}

	return &cityIndex{tree: tree}
}

// Nearest returns the recorded city closest to (lat, lng), snapping an
// arbitrary coordinate onto the road network before a search. The second
// return is false when no city has coordinates.
//
// Complexity: O(log V) amortized after the first call; the first call
// builds the index in O(V log V).
func (m *RoadMap) Nearest(lat, lng float64) (string, bool) {
	if len(m.coords) == 0 {
		return "", false
	}
	if m.index == nil {
		m.index = m.buildIndex()
	}

	hit := m.index.tree.NearestNeighbor(rtreego.Point{lng, lat})
	if hit == nil {
		return "", false
	}

	return hit.(*cityEntry).id, true
}
