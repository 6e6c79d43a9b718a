// Package topology: sentinel error set.
//
// All exported routines return these sentinels (wrapped with context)
// and tests match them via errors.Is. No routine panics on
// user-triggered conditions.
package topology

import "errors"

// Sentinel errors for adjacency construction.
var (
	// ErrBadNodeTag indicates an element carries a node tag below 1;
	// the incidence index is addressed by tag − 1 and requires tags
	// contiguous from 1.
	ErrBadNodeTag = errors.New("topology: node tag must be >= 1")

	// ErrNonManifold indicates three or more elements share a single
	// face. A conforming volume mesh has at most two elements per face;
	// anything else would silently lose particles during tracking.
	ErrNonManifold = errors.New("topology: more than two elements share a face")
)
