// Package builder assembles deterministic graph fixtures on vertices 0..n-1.
//
// A fixture is BuildGraph(n, opts, constructors...): the graph starts with n
// isolated vertices and every Constructor adds edges in a fixed, documented
// order. Edges a constructor would duplicate are skipped, so constructors
// compose (a Cycle plus Chords is the usual triadic-rewire benchmark graph).
//
// Constructors:
//
//	Cycle()              C_n: i—(i+1) mod n                   (n ≥ 3)
//	Path()               P_n: i—(i+1)                         (n ≥ 2)
//	Star()               centre 0, leaves 1..n-1              (n ≥ 2)
//	Wheel()              centre 0, rim cycle 1..n-1           (n ≥ 4)
//	Complete()           K_n                                  (n ≥ 1)
//	CompleteBipartite(k) K_{k,n-k}: left 0..k-1, right k..n-1 (1 ≤ k < n)
//	Grid(rows, cols)     4-neighbour grid, vertex r·cols+c     (rows·cols = n)
//	Chords(step, stride) i—(i+step) mod n for i = 0, stride, 2·stride, ...
//	RandomSparse(p)      G(n, p) over unordered pairs          (needs rng for 0<p<1)
//	RandomRegular(d)     d-regular by stub matching, bounded retries (needs rng)
//
// Randomness comes only from WithSeed or WithRand; the same options and
// constructor order always rebuild the same graph.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrBadSize, ErrConstructFailed) wrapped with the
// constructor name; branch with errors.Is.
package builder
