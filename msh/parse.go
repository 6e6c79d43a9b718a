package msh

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/tetmesh/core"
	"github.com/katalvlaran/tetmesh/topology"
)

// rawMesh collects the four parsed sections before cross-linking.
type rawMesh struct {
	volumes  []volume
	media    []core.Medium
	nodes    []core.Node
	elements []rawElement
	seen     map[string]bool
}

// Parse reads a complete version-4.1 ASCII mesh from rd and returns
// the assembled Mesh, neighbour table included (see WithoutAdjacency).
//
// The stream is consumed strictly forward, end to end, single-threaded;
// memory stays proportional to the mesh size. Any failure aborts the
// parse — no partial mesh is returned. A caller that must time-bound a
// parse wraps rd with its own deadline-sensitive reader; the resulting
// read error surfaces as ErrIO.
//
// Complexity: O(bytes + T) time, O(|nodes| + T) memory.
func Parse(rd io.Reader, opts ...Option) (*core.Mesh, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("msh: %w", o.err)
	}

	r := newReader(rd, o.maxLineLength)
	version, err := parseFormat(r)
	if err != nil {
		return nil, err
	}
	raw, err := parseBody(r, version)
	if err != nil {
		return nil, err
	}

	return assemble(raw, o)
}

// ParseFile opens path and parses it; the file handle is released on
// every return path.
func ParseFile(path string, opts ...Option) (*core.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("msh: open %s: %v: %w", path, err, ErrIO)
	}
	defer f.Close()

	return Parse(f, opts...)
}

// parseBody dispatches on section headers until end-of-stream. Unknown
// sections are skipped to their $End marker; a second $MeshFormat
// stops the body parse (multi-mesh files are not supported, but the
// first mesh parses normally).
func parseBody(r *reader, version formatVersion) (*rawMesh, error) {
	if version != version41 {
		return nil, fmt.Errorf("msh: no body parser for version token %d: %w", version, ErrUnsupportedVersion)
	}

	raw := &rawMesh{seen: make(map[string]bool, 4)}
	for {
		line, err := r.next()
		if errors.Is(err, io.EOF) {
			return raw, nil
		}
		if err != nil {
			return nil, err
		}
		if line == "$MeshFormat" {
			// A second mesh follows; parsing stops at the first.
			return raw, nil
		}
		if !strings.HasPrefix(line, "$") {
			return nil, r.errf("unexpected content %q between sections: %w", line, ErrMalformedMesh)
		}

		name := line[1:]
		switch name {
		case "Entities", "PhysicalNames", "Nodes", "Elements":
			if raw.seen[name] {
				return nil, r.errf("duplicate $%s section: %w", name, ErrMalformedMesh)
			}
			raw.seen[name] = true
		}
		switch name {
		case "Entities":
			raw.volumes, err = parseEntities(r)
		case "PhysicalNames":
			raw.media, err = parsePhysicalNames(r)
		case "Nodes":
			raw.nodes, err = parseNodes(r)
		case "Elements":
			raw.elements, err = parseElements(r)
		default:
			err = r.skipSection(name)
		}
		if err != nil {
			return nil, err
		}
	}
}

// assemble cross-links the four sections into the final Mesh: every
// element's volume entity must resolve to a physical group, every
// volume's group must be named, node tags must be contiguous from 1,
// and element records come out carrying the resolved group tag as
// their medium tag — not the entity tag.
func assemble(raw *rawMesh, o Options) (*core.Mesh, error) {
	for _, name := range []string{"Entities", "PhysicalNames", "Nodes", "Elements"} {
		if !raw.seen[name] {
			return nil, fmt.Errorf("msh: missing $%s section: %w", name, ErrMalformedMesh)
		}
	}
	if len(raw.media) == 0 {
		return nil, fmt.Errorf("msh: no dimension-3 physical names: %w", ErrMalformedMesh)
	}

	groups := make(map[int]core.Medium, len(raw.media))
	for _, m := range raw.media {
		groups[m.Tag] = m
	}

	volGroup := make(map[int]int, len(raw.volumes))
	for _, v := range raw.volumes {
		if _, ok := groups[v.group]; !ok {
			return nil, fmt.Errorf("msh: volume %d references unknown physical group %d: %w", v.tag, v.group, ErrDanglingReference)
		}
		volGroup[v.tag] = v.group
	}

	// Node tags were checked unique at parse time, so contiguity from 1
	// reduces to max tag == node count.
	maxTag := 0
	for _, n := range raw.nodes {
		if n.Tag > maxTag {
			maxTag = n.Tag
		}
	}
	if maxTag != len(raw.nodes) {
		return nil, fmt.Errorf("msh: node tags are not contiguous: %d nodes but max tag %d: %w", len(raw.nodes), maxTag, ErrMalformedMesh)
	}

	tets := make([]core.Tetrahedron, 0, len(raw.elements))
	used := make(map[int]bool, len(groups))
	for _, e := range raw.elements {
		group, ok := volGroup[e.entity]
		if !ok {
			return nil, fmt.Errorf("msh: element %d references unknown volume entity %d: %w", e.tag, e.entity, ErrDanglingReference)
		}
		for _, n := range e.nodes {
			if n < 1 || n > maxTag {
				return nil, fmt.Errorf("msh: element %d references unknown node %d: %w", e.tag, n, ErrMalformedMesh)
			}
		}
		tet, err := core.NewTetrahedron(group, e.nodes[0], e.nodes[1], e.nodes[2], e.nodes[3])
		if err != nil {
			return nil, fmt.Errorf("msh: element %d: %w", e.tag, err)
		}
		used[group] = true
		tets = append(tets, tet)
	}

	// The mesh exposes only the groups actually referenced by at least
	// one tetrahedron, ordered by tag.
	media := make([]core.Medium, 0, len(used))
	for tag := range used {
		media = append(media, groups[tag])
	}
	sort.Slice(media, func(i, j int) bool { return media[i].Tag < media[j].Tag })

	var table core.NeighbourTable
	if o.buildAdjacency {
		var err error
		if table, err = topology.Neighbours(tets); err != nil {
			return nil, fmt.Errorf("msh: adjacency: %w", err)
		}
	}

	m, err := core.NewMesh(raw.nodes, tets, media, table)
	if err != nil {
		return nil, fmt.Errorf("msh: %w", err)
	}

	return m, nil
}
