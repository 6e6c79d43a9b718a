package msh

import "strings"

// volume is a parse-time geometric volume entity: the indirection
// layer between elements and their medium. Discarded after assembly.
type volume struct {
	tag   int
	group int
}

// parseEntities consumes the $Entities section. The header counts
// point, curve, surface and volume entities; the first three blocks
// are skipped line-for-line (they carry no material assignment for a
// tetrahedral-only mesh), then exactly the declared number of volume
// entities is read.
//
// Each volume line is: tag, six bounding-box coordinates (ignored),
// the number of attached physical groups, then the group tags. Every
// volume must carry exactly one group, volume tags must be unique, and
// at least one volume must be present.
func parseEntities(r *reader) ([]volume, error) {
	defer r.enter("Entities")()

	header, err := r.requireLine()
	if err != nil {
		return nil, err
	}
	tok := strings.Fields(header)
	if len(tok) != 4 {
		return nil, r.errf("want 4 entity counts, got %d tokens: %w", len(tok), ErrMalformedMesh)
	}
	counts := make([]int, 4)
	for i, what := range []string{"point count", "curve count", "surface count", "volume count"} {
		if counts[i], err = r.countToken(tok[i], what, ErrMalformedMesh); err != nil {
			return nil, err
		}
	}
	if counts[3] == 0 {
		return nil, r.errf("no volume entities: %w", ErrMalformedMesh)
	}

	// Lower-dimensional entities are one line each; skip without
	// interpreting.
	for i := 0; i < counts[0]+counts[1]+counts[2]; i++ {
		if _, err = r.requireLine(); err != nil {
			return nil, err
		}
	}

	volumes := make([]volume, 0, counts[3])
	seen := make(map[int]bool, counts[3])
	for i := 0; i < counts[3]; i++ {
		line, err := r.requireLine()
		if err != nil {
			return nil, err
		}
		tok = strings.Fields(line)
		// tag + 6 bbox coordinates + group count = 8 tokens minimum;
		// anything past the group tags (boundary data) is ignored.
		if len(tok) < 8 {
			return nil, r.errf("volume entity needs at least 8 tokens, got %d: %w", len(tok), ErrMalformedMesh)
		}
		tag, err := r.intToken(tok[0], "volume tag", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		for j := 1; j <= 6; j++ {
			if _, err = r.floatToken(tok[j], "bounding-box coordinate"); err != nil {
				return nil, err
			}
		}
		numGroups, err := r.intToken(tok[7], "physical group count", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		if numGroups != 1 {
			return nil, r.errf("volume %d has %d physical groups, want exactly 1: %w", tag, numGroups, ErrMalformedMesh)
		}
		if len(tok) < 9 {
			return nil, r.errf("volume %d is missing its physical group tag: %w", tag, ErrMalformedMesh)
		}
		group, err := r.intToken(tok[8], "physical group tag", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		if seen[tag] {
			return nil, r.errf("duplicate volume tag %d: %w", tag, ErrMalformedMesh)
		}
		seen[tag] = true
		volumes = append(volumes, volume{tag: tag, group: group})
	}

	return volumes, r.endMarker("Entities")
}
