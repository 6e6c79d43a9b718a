package msh

import "strings"

// tetCode is the exchange format's element-type code for the 4-node
// tetrahedron.
const tetCode = 4

// rawElement is a tetrahedron as read from $Elements: still annotated
// with its owning volume entity. Medium resolution happens in the
// assembler.
type rawElement struct {
	tag    int
	entity int
	nodes  [4]int
}

// parseElements consumes the $Elements section. The header mirrors
// $Nodes (block count, total, min and max tag). Blocks of dimension
// other than 3 are read line-for-line and discarded; a 3-D block must
// declare the tetrahedron type code, otherwise the whole mesh is
// rejected with ErrUnsupportedElementType — partial tetrahedral
// coverage of a volume would silently drop mass during transport.
//
// Each tetrahedron line carries the element tag and four node tags,
// all non-negative. Element tags are globally unique, and at least one
// tetrahedron must be present across the whole section.
func parseElements(r *reader) ([]rawElement, error) {
	defer r.enter("Elements")()

	header, err := r.requireLine()
	if err != nil {
		return nil, err
	}
	tok := strings.Fields(header)
	if len(tok) != 4 {
		return nil, r.errf("want block count, element count, min and max tag, got %d tokens: %w", len(tok), ErrMalformedMesh)
	}
	numBlocks, err := r.countToken(tok[0], "block count", ErrMalformedMesh)
	if err != nil {
		return nil, err
	}
	numElements, err := r.countToken(tok[1], "element count", ErrMalformedMesh)
	if err != nil {
		return nil, err
	}
	if _, err = r.intToken(tok[2], "min element tag", ErrMalformedMesh); err != nil {
		return nil, err
	}
	if _, err = r.intToken(tok[3], "max element tag", ErrMalformedMesh); err != nil {
		return nil, err
	}

	capHint := numElements
	if capHint > 1<<20 {
		capHint = 1 << 20
	}
	elements := make([]rawElement, 0, capHint)
	seen := make(map[int]bool, capHint)
	for b := 0; b < numBlocks; b++ {
		sub, err := r.requireLine()
		if err != nil {
			return nil, err
		}
		tok = strings.Fields(sub)
		if len(tok) != 4 {
			return nil, r.errf("block sub-header wants dimension, entity, type and count, got %d tokens: %w", len(tok), ErrMalformedMesh)
		}
		dim, err := r.intToken(tok[0], "block dimension", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		entity, err := r.intToken(tok[1], "entity tag", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		typ, err := r.intToken(tok[2], "element type", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}
		count, err := r.countToken(tok[3], "block element count", ErrMalformedMesh)
		if err != nil {
			return nil, err
		}

		// Only volume elements carry media; lower-dimensional blocks
		// (boundary triangles, curves, points) are read line by line and
		// discarded without parsing.
		if dim != 3 {
			for i := 0; i < count; i++ {
				if _, err = r.requireLine(); err != nil {
					return nil, err
				}
			}
			continue
		}
		if typ != tetCode {
			return nil, r.errf("block for entity %d: non-tetrahedral type %d: %w", entity, typ, ErrUnsupportedElementType)
		}

		for i := 0; i < count; i++ {
			line, err := r.requireLine()
			if err != nil {
				return nil, err
			}
			tok = strings.Fields(line)
			if len(tok) != 5 {
				return nil, r.errf("tetrahedron wants element tag and 4 node tags, got %d tokens: %w", len(tok), ErrMalformedMesh)
			}
			var v [5]int
			for j, what := range []string{"element tag", "node tag", "node tag", "node tag", "node tag"} {
				if v[j], err = r.intToken(tok[j], what, ErrMalformedMesh); err != nil {
					return nil, err
				}
				if v[j] < 0 {
					return nil, r.errf("%s %d must not be negative: %w", what, v[j], ErrMalformedMesh)
				}
			}
			if seen[v[0]] {
				return nil, r.errf("duplicate element tag %d: %w", v[0], ErrMalformedMesh)
			}
			seen[v[0]] = true
			elements = append(elements, rawElement{
				tag:    v[0],
				entity: entity,
				nodes:  [4]int{v[1], v[2], v[3], v[4]},
			})
		}
	}

	if len(elements) == 0 {
		return nil, r.errf("no tetrahedra in mesh: %w", ErrMalformedMesh)
	}

	return elements, r.endMarker("Elements")
}
