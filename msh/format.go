package msh

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// formatVersion enumerates the format revisions the body dispatcher
// can route. Only 4.1 exists today; the gate keeps the version check
// in one place.
type formatVersion uint8

const version41 formatVersion = 1

// parseFormat consumes the mandatory leading $MeshFormat section and
// returns the version token the body dispatcher routes on.
//
// The gate rejects anything that is not ASCII 4.1 with 8-byte data
// size: version ≠ "4.1" is ErrUnsupportedVersion, a set binary flag or
// a data size ≠ 8 is ErrUnsupportedEncoding, and a missing token or
// marker is ErrMalformedHeader.
func parseFormat(r *reader) (formatVersion, error) {
	line, err := r.next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("msh: empty input: %w", ErrMalformedHeader)
	}
	if err != nil {
		return 0, err
	}
	if line != "$MeshFormat" {
		return 0, r.errf("expected $MeshFormat, got %q: %w", line, ErrMalformedHeader)
	}
	defer r.enter("MeshFormat")()

	spec, err := r.requireLine()
	if err != nil {
		return 0, err
	}
	tok := strings.Fields(spec)
	if len(tok) != 3 {
		return 0, r.errf("want version, binary flag and data size, got %d tokens: %w", len(tok), ErrMalformedHeader)
	}
	if tok[0] != "4.1" {
		return 0, r.errf("version %q: %w", tok[0], ErrUnsupportedVersion)
	}
	binary, err := r.intToken(tok[1], "binary flag", ErrMalformedHeader)
	if err != nil {
		return 0, err
	}
	if binary != 0 {
		return 0, r.errf("binary encoding is not supported: %w", ErrUnsupportedEncoding)
	}
	size, err := r.intToken(tok[2], "data size", ErrMalformedHeader)
	if err != nil {
		return 0, err
	}
	if size != 8 {
		return 0, r.errf("data size %d, want 8: %w", size, ErrUnsupportedEncoding)
	}

	end, err := r.requireLine()
	if err != nil {
		return 0, err
	}
	if end != "$EndMeshFormat" {
		return 0, r.errf("expected $EndMeshFormat, got %q: %w", end, ErrMalformedHeader)
	}

	return version41, nil
}
