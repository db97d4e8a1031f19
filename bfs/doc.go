// Package bfs runs breadth-first search over a core.Graph and turns it into
// unweighted hop distances.
//
// What
//
//   - BFS explores vertices in non-decreasing hop distance from a start
//     vertex and returns a Result with the visit Order, the Depth of every
//     vertex (-1 when unreachable) and the Parent links of the BFS tree.
//   - Hooks: OnVisit may abort the search with an error; FilterNeighbor may
//     skip individual edges; MaxDepth bounds the frontier.
//   - Distances and DistanceMatrix are the shortcuts used to build
//     transport costs: plain hop counts, with +Inf in the matrix for
//     unreachable pairs.
//
// Determinism
//
//	Neighbours are expanded in ascending vertex order, so the visit
//	sequence is reproducible for the same graph.
//
// Complexity
//
//   - BFS:            O(V + E log Δ) (neighbour lists are sorted)
//   - DistanceMatrix: O(k · (V + E log Δ)) for k source vertices
package bfs
