package msh

import (
	"math"
	"strings"

	"github.com/katalvlaran/tetmesh/core"
	"gonum.org/v1/gonum/spatial/r3"
)

// parseNodes consumes the $Nodes section. The header declares the
// block count, total node count, and min/max node tag. Each block has
// a sub-header (dimension, entity tag, parametric flag, count)
// followed by the block's node tags first, then each node's three
// coordinates in the same order; Node records are rebuilt by zipping
// tag[i] with coordinate[i].
//
// Enforced: dimension in 0..3, no parametric coordinates, max tag
// within int32, tags globally unique and within the declared range,
// block totals reconciled against the header, end marker present.
func parseNodes(r *reader) ([]core.Node, error) {
	defer r.enter("Nodes")()

	header, err := r.requireLine()
	if err != nil {
		return nil, err
	}
	tok := strings.Fields(header)
	if len(tok) != 4 {
		return nil, r.errf("want block count, node count, min and max tag, got %d tokens: %w", len(tok), ErrMalformedMesh)
	}
	numBlocks, err := r.countToken(tok[0], "block count", ErrMalformedMesh)
	if err != nil {
		return nil, err
	}
	numNodes, err := r.countToken(tok[1], "node count", ErrMalformedMesh)
	if err != nil {
		return nil, err
	}
	if _, err = r.intToken(tok[2], "min node tag", ErrMalformedMesh); err != nil {
		return nil, err
	}
	maxTag, err := r.intToken(tok[3], "max node tag", ErrMalformedMesh)
	if err != nil {
		return nil, err
	}
	if maxTag < 0 || maxTag > math.MaxInt32 {
		return nil, r.errf("max node tag %s does not fit the tag type: %w", tok[3], ErrMalformedMesh)
	}

	capHint := numNodes
	if capHint > 1<<20 {
		capHint = 1 << 20
	}
	nodes := make([]core.Node, 0, capHint)
	seen := make(map[int]bool, capHint)
	tags := make([]int, 0, 64)
	for b := 0; b < numBlocks; b++ {
		sub, err := r.requireLine()
		if err != nil {
			return nil, err
		}
		tok = strings.Fields(sub)
		if len(tok) != 4 {
			return nil, r.errf("block sub-header wants dimension, entity, parametric flag and count, got %d tokens: %w", len(tok), ErrMalformedMesh)
		}
		dim, err := r.intToken(tok[0], "block dimension", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		entity, err := r.intToken(tok[1], "entity tag", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		parametric, err := r.intToken(tok[2], "parametric flag", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		count, err := r.countToken(tok[3], "block node count", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		if dim < 0 || dim > 3 {
			return nil, r.errf("block for entity %d: dimension %d out of range: %w", entity, dim, ErrMalformedMesh)
		}
		if parametric != 0 {
			return nil, r.errf("block for entity %d: parametric coordinates are not supported: %w", entity, ErrMalformedMesh)
		}

		// Tags first.
		tags = tags[:0]
		for i := 0; i < count; i++ {
			line, err := r.requireLine()
			if err != nil {
				return nil, err
			}
			tag, err := r.intToken(line, "node tag", ErrMalformedMesh)
			if err != nil {
				return nil, err
			}
			if tag < 1 || tag > maxTag {
				return nil, r.errf("node tag %d outside declared range [1,%d]: %w", tag, maxTag, ErrMalformedMesh)
			}
			if seen[tag] {
				return nil, r.errf("duplicate node tag %d: %w", tag, ErrMalformedMesh)
			}
			seen[tag] = true
			tags = append(tags, tag)
		}

		// Then the coordinates, in tag order.
		for i := 0; i < count; i++ {
			line, err := r.requireLine()
			if err != nil {
				return nil, err
			}
			tok = strings.Fields(line)
			if len(tok) != 3 {
				return nil, r.errf("node %d wants 3 coordinates, got %d tokens: %w", tags[i], len(tok), ErrMalformedMesh)
			}
			var coord [3]float64
			for j, what := range []string{"x", "y", "z"} {
				if coord[j], err = r.floatToken(tok[j], what); err != nil {
					return nil, err
				}
			}
			nodes = append(nodes, core.Node{
				Tag:   tags[i],
				Coord: r3.Vec{X: coord[0], Y: coord[1], Z: coord[2]},
			})
		}
	}

	if len(nodes) != numNodes {
		return nil, r.errf("read %d nodes, header declared %d: %w", len(nodes), numNodes, ErrMalformedMesh)
	}

	return nodes, r.endMarker("Nodes")
}
