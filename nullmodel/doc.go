// Package nullmodel samples random comparison graphs ("null models") for a
// given network.
//
// Two families are provided:
//
//   - Configuration model: keeps each node's degree as far as simple-graph
//     constraints allow. Stubs are shuffled once and paired; self-loops and
//     duplicate pairs are dropped, never retried, so realized degrees can
//     fall below the request.
//   - Triadic rewire: keeps node count, edge count and the global triangle
//     count exactly, randomizing everything else with double-edge swaps.
//
// Randomness always comes from an explicit *rand.Rand. The batch drivers
// GenerateConfigurationModels and GenerateTriadicRewires derive one source
// per replicate from a base seed (seed + index), so a batch is reproducible
// regardless of the worker count.
//
// Quick start:
//
//	rng := rand.New(rand.NewSource(7))
//	cm := nullmodel.SampleConfigurationModel(g.Degrees(), rng)
//	tr := nullmodel.SampleTriadicRewire(g, rng)
//
//	reps, err := nullmodel.GenerateTriadicRewires(ctx, g, 100,
//		nullmodel.WithSeed(42), nullmodel.WithWorkers(8))
package nullmodel
