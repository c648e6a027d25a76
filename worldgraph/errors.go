package worldgraph

import "errors"

// Sentinel errors for worldgraph operations.
var (
	// ErrEmptyNodeKey indicates an empty node key was supplied.
	ErrEmptyNodeKey = errors.New("worldgraph: node key is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("worldgraph: node not found")

	// ErrNodeExists indicates AddNode was called with a key already present.
	ErrNodeExists = errors.New("worldgraph: node already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("worldgraph: edge not found")

	// ErrEdgeExists indicates AddEdge was called for an already-present (from, to) pair.
	ErrEdgeExists = errors.New("worldgraph: edge already exists")

	// ErrSelfLoop indicates an edge from a node to itself, which the World Graph disallows.
	ErrSelfLoop = errors.New("worldgraph: self-loop edges are not allowed")

	// ErrNegativeWeight indicates a negative baseCost or baseTime was supplied.
	ErrNegativeWeight = errors.New("worldgraph: base cost/time must be non-negative")
)
