package roadmap

import "errors"

// KmPerDegree is the approximate number of kilometers per degree of
// latitude or longitude used by the straight-line heuristic.
const KmPerDegree = 111.0

// Sentinel errors for road map construction.
var (
	// ErrEmptyCityID indicates a city identifier was the empty string.
	ErrEmptyCityID = errors.New("roadmap: city ID is empty")

	// ErrInvalidDistance indicates a road was given a non-positive distance.
	// Roads fail fast at construction time, never during search.
	ErrInvalidDistance = errors.New("roadmap: road distance must be positive")
)
