// Package core provides the thread-safe, simple undirected Graph shared by
// the null-model samplers, hop-distance search and curvature code.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - V is the dense range 0..n-1, fixed by NewGraph(n).
//   - E holds unordered pairs; self-loops and parallel edges are rejected
//     with ErrLoopNotAllowed / ErrMultiEdgeNotAllowed.
//   - Adjacency is a set per vertex, so HasEdge/AddEdge/RemoveEdge are O(1).
//   - The live edge set is also kept as a dense slice (EdgeAt), which makes
//     drawing a uniformly random edge a single index draw. This is the hot
//     path of double-edge-swap rewiring.
//   - A single sync.RWMutex guards all state; read-only use from many
//     goroutines is safe.
//
// Core Methods:
//
//	NewGraph(n int) *Graph                 // O(n)
//	Order() int, Size() int                // O(1)
//	AddEdge(u, v int) error                // O(1)†
//	RemoveEdge(u, v int) error             // O(1)
//	HasEdge(u, v int) bool                 // O(1)
//	EdgeAt(i int) (Edge, bool)             // O(1)
//	Neighbors(v int) ([]int, error)        // O(d log d), ascending
//	Degree(v int) (int, error), Degrees()  // O(1), O(V)
//	Adjacency() [][]int                    // O(V + E log Δ), one lock
//	Edges() []Edge                         // O(E log E), canonical + sorted
//	Clone() *Graph, Equal(*Graph) bool     // O(V + E)
//	ToGonum(), FromGonum(graph.Undirected) // gonum interchange
//
// † amortized
//
// Quick example:
//
//	g := core.NewGraph(4)
//	_ = g.AddEdge(0, 1)
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 0)
//	fmt.Println(g.Size(), g.HasEdge(0, 2)) // 3 true
package core
