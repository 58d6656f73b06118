package dfs

import (
	"github.com/quaddro/stargraph/core"
	"github.com/quaddro/stargraph/digraph"
)

// walker carries the state of one Run: the monotonic timestamp counter and
// the explicit vertex stack standing in for the recursion stack.
type walker struct {
	graph *digraph.ForwardStar
	opts  Options
	res   *Result
	stack []core.VertexID
	time  uint64
}

// Run performs one full-graph depth-first traversal of g: every vertex is
// visited exactly once, restarting at each undiscovered vertex in ascending
// id order so that disconnected components form their own DFS trees. The
// discovery/finish timestamps and parent links are identical to what a
// naive recursive DFS would produce; the result is frozen on return.
//
// Repeated runs over the same graph yield identical results.
func Run(g *digraph.ForwardStar, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize bookkeeping and the shared work stack
	w := &walker{
		graph: g,
		opts:  dopts,
		res:   newResult(g.VertexCount()),
		stack: make([]core.VertexID, 0, g.VertexCount()),
	}

	// 4. Forest loop: one inner traversal per undiscovered root
	for v := range g.Vertexes() {
		if w.res.at(v).Discovery != 0 {
			continue
		}
		// The stack is drained to empty by every inner traversal; a
		// leftover entry here is an engine bug.
		if len(w.stack) != 0 {
			panic("dfs: work stack not empty between roots")
		}
		w.visit(v)
	}

	return w.res, nil
}

// visit runs the inner traversal rooted at start, simulating recursion with
// the walker's explicit stack.
//
// The discipline is peek-discover-rescan: the top vertex is peeked, not
// popped, so it stays on the stack while its successors are explored —
// mirroring a recursive call frame that is still live. Pushing an
// undiscovered successor restarts the loop from the new top ("the
// recursive call"); on re-entry the successor list is rescanned from the
// start, re-classifying and re-emitting already-seen successors. A frame is
// popped and finish-stamped only once its scan completes without a push.
func (w *walker) visit(start core.VertexID) {
	w.stack = append(w.stack, start)

stLoop:
	for len(w.stack) > 0 {
		v := w.stack[len(w.stack)-1]
		vEntry := w.res.at(v)

		// Stamp the discovery on first peek only.
		if vEntry.Discovery == 0 {
			w.time++
			vEntry.Discovery = w.time
			if w.opts.OnVertex != nil {
				w.opts.OnVertex(v)
			}
		}

		// v came off the graph's own vertex range; Successors cannot fail.
		succs, _ := w.graph.Successors(v)
		for _, s := range succs {
			sEntry := w.res.at(s)

			if sEntry.Discovery == 0 {
				// Just discovered s through v.
				if w.opts.OnTreeEdge != nil {
					w.opts.OnTreeEdge(v, s)
				}
				sEntry.Parent = v
				w.stack = append(w.stack, s)

				continue stLoop
			}

			switch {
			case sEntry.Finish == 0:
				// s is a live ancestor of v.
				if w.opts.OnBackEdge != nil {
					w.opts.OnBackEdge(v, s)
				}
			case vEntry.Discovery < sEntry.Discovery:
				// s was discovered after v and already finished inside a
				// nested call.
				if w.opts.OnForwardEdge != nil {
					w.opts.OnForwardEdge(v, s)
				}
			default:
				// s belongs to a subtree discovered before v.
				if w.opts.OnCrossEdge != nil {
					w.opts.OnCrossEdge(v, s)
				}
			}
		}

		// Scan completed without a push: the frame is exhausted.
		w.stack = w.stack[:len(w.stack)-1]
		w.time++
		vEntry.Finish = w.time
	}
}
