package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/katalvlaran/ricci/core"
	"github.com/katalvlaran/ricci/curvature"
	"github.com/katalvlaran/ricci/nullmodel"
	"github.com/katalvlaran/ricci/nulltest"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// graphStats describes one graph of the nulls report.
type graphStats struct {
	Nodes         int      `json:"nodes"`
	Edges         int      `json:"edges"`
	Triangles     int      `json:"triangles"`
	MeanCurvature *float64 `json:"mean_curvature,omitempty"`
}

// nullsReport is the JSON document written by the nulls command.
type nullsReport struct {
	Model      string            `json:"model"`
	Source     string            `json:"source"`
	Seed       int64             `json:"seed"`
	Observed   graphStats        `json:"observed"`
	Replicates []graphStats      `json:"replicates"`
	Curvature  *nulltest.Summary `json:"curvature,omitempty"`
}

var (
	nullsCmd = &cobra.Command{
		Use:   "nulls",
		Short: "Sample structural null models of a graph",
		Long: "Samples configuration-model or triangle-preserving rewire replicates of a\n" +
			"fixture or edge-list graph and reports edges and triangles per replicate.\n" +
			"With --curvature the observed mean Ollivier-Ricci curvature is tested\n" +
			"against the replicates.",
		Args: cobra.NoArgs,
	}

	nullsModel     = nullsCmd.Flags().String("model", "configuration", "Null model: configuration or triadic")
	nullsFixture   = nullsCmd.Flags().String("fixture", "chords", fmt.Sprintf("Observed graph fixture %v", fixtureNames))
	nullsEdges     = nullsCmd.Flags().String("edges", "", "JSON edge list {nodes, edges: [[u,v],...]} used instead of --fixture")
	nullsNodes     = nullsCmd.Flags().Int("nodes", 20, "Fixture vertex count")
	nullsP         = nullsCmd.Flags().Float64("p", 0.2, "Edge probability of the random fixture")
	nullsDegree    = nullsCmd.Flags().Int("degree", 3, "Degree of the regular fixture")
	nullsSamples   = nullsCmd.Flags().Int("samples", 100, "Number of null replicates")
	nullsSeed      = nullsCmd.Flags().Int64("seed", 1, "Base seed; replicate i uses seed+i")
	nullsWorkers   = nullsCmd.Flags().Int("workers", 0, "Worker goroutines (0 means GOMAXPROCS)")
	nullsSwaps     = nullsCmd.Flags().Int("swaps", nullmodel.DefaultSwapsPerEdge, "Rewire trials per edge")
	nullsCurvature = nullsCmd.Flags().Bool("curvature", false, "Run the mean curvature null test")
	nullsAlpha     = nullsCmd.Flags().Float64("alpha", curvature.DefaultAlpha, "Random walk idleness")
	nullsEpsilon   = nullsCmd.Flags().Float64("epsilon", curvature.DefaultEpsilon, "Sinkhorn regularization")
	nullsIters     = nullsCmd.Flags().Int("iterations", curvature.DefaultMaxIterations, "Sinkhorn iteration cap")
	nullsProgress  = nullsCmd.Flags().Bool("progress", true, "Show progress bars on stderr")
)

func init() {
	Root.AddCommand(nullsCmd)
	nullsCmd.RunE = runNulls
}

func runNulls(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if *nullsSamples < 0 {
		return errors.Errorf("--samples must be >= 0, got %d", *nullsSamples)
	}
	if *nullsModel != "configuration" && *nullsModel != "triadic" {
		return errors.Errorf("unknown model %q (want configuration or triadic)", *nullsModel)
	}
	if *nullsSwaps < 0 {
		return errors.Errorf("--swaps must be >= 0, got %d", *nullsSwaps)
	}

	// 1) Observed graph.
	var (
		g   *core.Graph
		err error
	)
	report := nullsReport{Model: *nullsModel, Seed: *nullsSeed}
	if *nullsEdges != "" {
		report.Source = *nullsEdges
		g, err = loadEdges(*nullsEdges)
	} else {
		report.Source = *nullsFixture
		g, err = fixture(*nullsFixture, *nullsNodes, *nullsSeed, *nullsP, *nullsDegree)
	}
	if err != nil {
		return err
	}
	report.Observed = describe(g)

	// 2) Replicates.
	bar := newBar(*nullsSamples, "Sampling "+*nullsModel)
	opts := []nullmodel.Option{
		nullmodel.WithSeed(*nullsSeed),
		nullmodel.WithWorkers(*nullsWorkers),
		nullmodel.WithSwapsPerEdge(*nullsSwaps),
		nullmodel.WithProgress(func(done, total int) { bar.Set(done) }),
	}
	var nulls []*core.Graph
	switch *nullsModel {
	case "configuration":
		nulls, err = nullmodel.GenerateConfigurationModels(ctx, g.Degrees(), *nullsSamples, opts...)
	case "triadic":
		nulls, err = nullmodel.GenerateTriadicRewires(ctx, g, *nullsSamples, opts...)
	}
	bar.Finish()
	if err != nil {
		return errors.Wrap(err, "sampling")
	}
	report.Replicates = make([]graphStats, len(nulls))
	for i, ng := range nulls {
		report.Replicates[i] = describe(ng)
	}
	log.Info().Msgf("Sampled %d %v replicates of %v (%d nodes, %d edges, %d triangles)",
		len(nulls), *nullsModel, report.Source, report.Observed.Nodes, report.Observed.Edges, report.Observed.Triangles)

	// 3) Optional curvature test.
	if *nullsCurvature {
		summary, err := curvatureTest(ctx, g, nulls, &report)
		if err != nil {
			return err
		}
		report.Curvature = &summary
	}

	enc := qjson.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(report), "writing report")
}

// curvatureTest fills the mean curvature of the observed graph and of every
// replicate into report and summarizes them. A replicate without edges
// contributes NaN and is dropped by the summary.
func curvatureTest(ctx context.Context, g *core.Graph, nulls []*core.Graph, report *nullsReport) (nulltest.Summary, error) {
	if !(*nullsAlpha >= 0 && *nullsAlpha <= 1) {
		return nulltest.Summary{}, errors.Errorf("--alpha must be in [0,1], got %v", *nullsAlpha)
	}
	if !(*nullsEpsilon > 0) {
		return nulltest.Summary{}, errors.Errorf("--epsilon must be > 0, got %v", *nullsEpsilon)
	}
	if *nullsIters <= 0 {
		return nulltest.Summary{}, errors.Errorf("--iterations must be > 0, got %d", *nullsIters)
	}
	opts := []curvature.Option{
		curvature.WithAlpha(*nullsAlpha),
		curvature.WithEpsilon(*nullsEpsilon),
		curvature.WithMaxIterations(*nullsIters),
		curvature.WithWorkers(*nullsWorkers),
	}

	observed, err := curvature.MeanCurvature(ctx, g, opts...)
	if err != nil {
		return nulltest.Summary{}, errors.Wrap(err, "observed curvature")
	}
	report.Observed.MeanCurvature = &observed

	bar := newBar(len(nulls), "Curvature")
	ks := make([]float64, len(nulls))
	for i, ng := range nulls {
		k, err := curvature.MeanCurvature(ctx, ng, opts...)
		switch {
		case err == nil:
			report.Replicates[i].MeanCurvature = &k
		case errors.Is(err, curvature.ErrNoEdges):
			log.Debug().Msgf("Replicate %d has no edges, skipping", i)
			k = math.NaN()
		default:
			bar.Finish()
			return nulltest.Summary{}, errors.Wrapf(err, "replicate %d curvature", i)
		}
		ks[i] = k
		bar.Add(1)
	}
	bar.Finish()

	summary, err := nulltest.Summarize(observed, ks)
	if err != nil {
		return nulltest.Summary{}, errors.Wrap(err, "curvature test")
	}
	log.Info().Msgf("Mean curvature %.4f vs null %.4f ± %.4f, p=%.3f",
		summary.Observed, summary.NullMean, summary.NullStd, summary.PValue)

	return summary, nil
}

func describe(g *core.Graph) graphStats {
	return graphStats{
		Nodes:     g.Order(),
		Edges:     g.Size(),
		Triangles: nullmodel.CountTriangles(g),
	}
}

func newBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(*nullsProgress),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("graphs"),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
}
