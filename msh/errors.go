// Package msh: sentinel error set.
//
// All parse failures return these sentinels wrapped with section and
// line context; tests match them via errors.Is. Parsing never panics
// on malformed input.
package msh

import (
	"errors"
	"fmt"
)

// Sentinel errors for mesh parsing.
var (
	// ErrIO indicates the underlying stream failed mid-read.
	ErrIO = errors.New("msh: input stream failure")

	// ErrMalformedHeader indicates a missing or malformed $MeshFormat
	// block.
	ErrMalformedHeader = errors.New("msh: malformed header")

	// ErrUnsupportedVersion indicates a mesh format version other than
	// "4.1".
	ErrUnsupportedVersion = errors.New("msh: unsupported version")

	// ErrUnsupportedEncoding indicates a binary-encoded file or a data
	// size other than 8 bytes.
	ErrUnsupportedEncoding = errors.New("msh: unsupported encoding")

	// ErrMalformedMesh indicates a structural violation within a
	// section: a missing token, a missing end marker, a duplicate tag,
	// an empty quoted name, or zero volume entities.
	ErrMalformedMesh = errors.New("msh: malformed mesh")

	// ErrUnsupportedElementType indicates a 3-D element block declaring
	// a non-tetrahedral type. Partial tetrahedral coverage of a volume
	// would silently drop mass during particle transport, so the whole
	// mesh is rejected.
	ErrUnsupportedElementType = errors.New("msh: unsupported element type")

	// ErrDanglingReference indicates an element referencing an unknown
	// volume entity, or a volume referencing an unknown physical group.
	ErrDanglingReference = errors.New("msh: dangling reference")

	// ErrBadOption indicates an invalid Option was supplied to Parse.
	ErrBadOption = errors.New("msh: invalid option supplied")
)

// ErrTruncatedInput indicates the stream ended inside a section whose
// $End marker is still outstanding. It specialises ErrMalformedMesh:
// errors.Is reports both.
var ErrTruncatedInput = fmt.Errorf("msh: truncated input: %w", ErrMalformedMesh)
