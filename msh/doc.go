// Package msh reads version-4.1 ASCII files of the Gmsh mesh exchange
// format into a core.Mesh, including the face-adjacency build.
//
// The parser is strict and section-oriented. Sections appear in any
// order between the mandatory leading $MeshFormat block and
// end-of-stream; each begins with $Name and ends with $EndName on
// their own lines:
//
//	$MeshFormat     — version gate: "4.1", ASCII, 8-byte data size
//	$Entities       — 3-D volume entities and their physical group
//	$PhysicalNames  — physical-group tag → material name (dim 3 only)
//	$Nodes          — multi-block node tags + coordinates
//	$Elements       — multi-block tetrahedra; other dimensions skipped
//
// Unrecognised sections are skipped to their $End marker for forward
// compatibility; a second $MeshFormat stops the parse cleanly
// (multi-mesh files are not supported). After end-of-stream the
// assembler cross-links the four sections, rejecting dangling
// references, non-contiguous node tags and non-tetrahedral volume
// elements, and hands the element list to package topology.
//
// Every failure aborts the parse; no partial mesh is ever returned.
// Errors carry the section, line number and offending tag, e.g.
//
//	msh: $Elements line 1204: block for entity 12: non-tetrahedral type 5: msh: unsupported element type
//
// Errors (match with errors.Is):
//
//	ErrIO                     - underlying stream failure.
//	ErrMalformedHeader        - missing or malformed $MeshFormat.
//	ErrUnsupportedVersion     - version other than "4.1".
//	ErrUnsupportedEncoding    - binary flag set, or data size ≠ 8.
//	ErrMalformedMesh          - structural violation within a section.
//	ErrTruncatedInput         - stream ended inside a section
//	                            (specialises ErrMalformedMesh).
//	ErrUnsupportedElementType - non-tetrahedral 3-D element block.
//	ErrDanglingReference      - element → entity or entity → group
//	                            reference with no target.
//	ErrBadOption              - invalid Option supplied to Parse.
package msh
