package edgeio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/quaddro/stargraph/core"
)

var (
	// ErrBadHeader indicates the leading "vertex_count edge_count" pair is
	// missing or not numeric.
	ErrBadHeader = errors.New("edgeio: malformed header")

	// ErrMalformedInput indicates a non-numeric token or a dangling origin
	// with no destination in the edge list.
	ErrMalformedInput = errors.New("edgeio: malformed edge list")

	// ErrEdgeCountMismatch indicates the number of parsed edges differs
	// from the header's declared edge count.
	ErrEdgeCountMismatch = errors.New("edgeio: declared edge count mismatch")
)

// Header carries the declared dimensions from the first two tokens.
type Header struct {
	VertexCount core.VertexID
	EdgeCount   uint32
}

// Read parses the edge-list format from r into a capacity-hinted EdgeBag.
// It returns ErrEdgeCountMismatch when the declared count and the parsed
// pair count disagree, and core.ErrZeroVertex (wrapped) when an edge
// references vertex 0.
func Read(r io.Reader) (Header, *core.EdgeBag, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var h Header

	vc, err := nextUint32(sc)
	if err != nil {
		return h, nil, ErrBadHeader
	}
	ec, err := nextUint32(sc)
	if err != nil {
		return h, nil, ErrBadHeader
	}
	h = Header{VertexCount: vc, EdgeCount: ec}

	bag := core.NewEdgeBag(int(ec))
	for sc.Scan() {
		orig, err := parseUint32(sc.Text())
		if err != nil {
			return h, nil, fmt.Errorf("%w: edge %d origin", ErrMalformedInput, bag.Len()+1)
		}
		dest, err := nextUint32(sc)
		if err != nil {
			return h, nil, fmt.Errorf("%w: edge %d has no destination", ErrMalformedInput, bag.Len()+1)
		}

		e, err := core.NewEdge(orig, dest)
		if err != nil {
			return h, nil, fmt.Errorf("edgeio: edge %d: %w", bag.Len()+1, err)
		}
		// A freshly validated edge cannot be rejected by the bag.
		_ = bag.Add(e)
	}
	if err := sc.Err(); err != nil {
		return h, nil, fmt.Errorf("edgeio: read: %w", err)
	}

	if bag.Len() != int(ec) {
		return h, nil, fmt.Errorf("%w: expected %d, got %d", ErrEdgeCountMismatch, ec, bag.Len())
	}

	return h, bag, nil
}

// nextUint32 advances the scanner one token and parses it.
func nextUint32(sc *bufio.Scanner) (uint32, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}

		return 0, io.ErrUnexpectedEOF
	}

	return parseUint32(sc.Text())
}

func parseUint32(tok string) (uint32, error) {
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, err
	}

	return uint32(n), nil
}
