// Package ricci is an in-memory toolkit for comparing graphs with optimal
// transport and structural null models.
//
// What is inside?
//
//	A small, deterministic set of packages:
//		• core       — simple undirected graph with O(1) uniform edge sampling
//		• builder    — cycle, path, star, wheel, complete, grid and random fixtures
//		• bfs        — hop distances, distance matrices, connected components
//		• sinkhorn   — entropic optimal transport (Sinkhorn-Knopp scaling)
//		• wasserstein — entropic Wasserstein-1 distance, single and batched
//		• nullmodel  — configuration-model and triangle-preserving rewire samplers
//		• curvature  — Ollivier-Ricci edge curvature built on wasserstein and bfs
//		• nulltest   — Monte-Carlo p-value, Cliff's delta and null summaries
//		• bridge     — validated entry points that report failure as NaN
//
// Randomness is always explicit: samplers take a *rand.Rand, batch drivers
// seed replicate i with seed+i, so results do not depend on worker count.
//
// Quick start:
//
//	cost := []float64{0, 1, 1, 0}
//	w := wasserstein.Distance([]float64{1, 0}, []float64{0, 1}, cost, 2, 0.1, 100)
//
//	g, _ := builder.BuildGraph(20, nil, builder.Cycle(), builder.Chords(2, 2))
//	nulls, _ := nullmodel.GenerateTriadicRewires(ctx, g, 100, nullmodel.WithSeed(1))
//
// The ricci command (cmd/ricci) wraps the same packages for shell use.
package ricci
