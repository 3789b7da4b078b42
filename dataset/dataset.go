// Package dataset performs the one-shot JSON load of a road network
// document: city coordinates, roads, and the benchmark's test routes.
//
// Document shape:
//
//	{
//	  "cities":      { "São Paulo": {"lat": -23.55, "lng": -46.64}, … },
//	  "roads":       [ {"from": "São Paulo", "to": "Rio de Janeiro",
//	                    "distance": 429}, … ],
//	  "test_routes": [ {"start": "Belo Horizonte", "goal": "Recife"}, … ]
//	}
//
// The package is a thin boundary: parsing wraps encoding/json errors with
// context, and RoadMap propagates the roadmap package's construction
// errors so a bad road fails fast at load time, never during search.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotagraph/rota/roadmap"
)

// Coordinate is a city position in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Road is one directional record; loading expands it into both directions.
type Road struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Route is a (start, goal) query pair.
type Route struct {
	Start string `json:"start"`
	Goal  string `json:"goal"`
}

// Dataset mirrors the JSON document.
type Dataset struct {
	Cities     map[string]Coordinate `json:"cities"`
	Roads      []Road                `json:"roads"`
	TestRoutes []Route               `json:"test_routes"`
}

// Load reads and parses the document at path.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: could not read %s: %w", path, err)
	}

	d, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return d, nil
}

// Parse decodes a road network document from raw JSON bytes.
func Parse(raw []byte) (*Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("dataset: could not parse document: %w", err)
	}

	return &d, nil
}

// RoadMap builds the searchable road map: every city's coordinates, every
// road expanded into two directed entries with symmetric weight. The first
// invalid record aborts the build.
func (d *Dataset) RoadMap() (*roadmap.RoadMap, error) {
	m := roadmap.NewRoadMap()

	for id, c := range d.Cities {
		if err := m.AddCity(id, c.Lat, c.Lng); err != nil {
			return nil, fmt.Errorf("dataset: city %q: %w", id, err)
		}
	}

	for i, r := range d.Roads {
		if err := m.AddRoad(r.From, r.To, r.Distance); err != nil {
			return nil, fmt.Errorf("dataset: road %d (%s—%s): %w", i, r.From, r.To, err)
		}
	}

	return m, nil
}
