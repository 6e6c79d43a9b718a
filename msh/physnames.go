package msh

import (
	"strings"

	"github.com/katalvlaran/tetmesh/core"
)

// parsePhysicalNames consumes the $PhysicalNames section: a total
// count across all dimensions, then one `dim tag "name"` line each.
// Only dimension-3 entries are retained; their tags must be unique.
//
// The name is extracted between the first and last double quote on the
// line, so names may contain spaces and inner quotes. Empty names and
// unquoted names are rejected.
func parsePhysicalNames(r *reader) ([]core.Medium, error) {
	defer r.enter("PhysicalNames")()

	header, err := r.requireLine()
	if err != nil {
		return nil, err
	}
	total, err := r.countToken(header, "name count", ErrMalformedMesh)
	if err != nil {
		return nil, err
	}

	var media []core.Medium
	seen := make(map[int]bool)
	for i := 0; i < total; i++ {
		line, err := r.requireLine()
		if err != nil {
			return nil, err
		}
		tok := strings.Fields(line)
		if len(tok) < 3 {
			return nil, r.errf("want dimension, tag and quoted name, got %q: %w", line, ErrMalformedMesh)
		}
		dim, err := r.intToken(tok[0], "dimension", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		tag, err := r.intToken(tok[1], "physical group tag", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		first := strings.Index(line, `"`)
		last := strings.LastIndex(line, `"`)
		if first == -1 || last == first {
			return nil, r.errf("physical name for tag %d is not quoted: %w", tag, ErrMalformedMesh)
		}
		name := line[first+1 : last]
		if name == "" {
			return nil, r.errf("physical name for tag %d is empty: %w", tag, ErrMalformedMesh)
		}
		if dim != 3 {
			continue
		}
		if seen[tag] {
			return nil, r.errf("duplicate physical group tag %d: %w", tag, ErrMalformedMesh)
		}
		seen[tag] = true
		media = append(media, core.Medium{Tag: tag, Name: name})
	}

	return media, r.endMarker("PhysicalNames")
}
