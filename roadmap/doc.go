// Package roadmap models a small road network between named cities:
// a coordinate table (latitude/longitude in degrees) plus an undirected,
// km-weighted adjacency structure, built once and read-only during search.
//
// What you get:
//
//   - RoadMap       — city → coordinates, city → neighbor → distance (km)
//   - AddCity       — record a city's coordinates
//   - AddRoad       — insert a road as two directed entries with symmetric
//     weight; rejects non-positive distances
//   - Neighbors     — adjacency lookup; unknown or dead-end cities yield an
//     empty mapping, never an error
//   - Heuristic     — straight-line (Euclidean, degrees × 111 km) estimate
//     between two cities; admissible for road travel
//   - Nearest       — snap an arbitrary coordinate to the closest recorded
//     city via an R-tree index
//
// Invariants:
//
//   - AddRoad(a, b, km) ⇒ Neighbors(a)[b] == Neighbors(b)[a] == km.
//   - Heuristic returns 0 when either city has no recorded coordinates.
//     Zero is a valid (if weak) admissible estimate, so a partially
//     specified map degrades guidance instead of breaking the search.
//
// Concurrency: a RoadMap is intended to be constructed once and then shared
// read-only across repeated searches within one process. Construction and
// queries are not synchronized internally.
package roadmap
