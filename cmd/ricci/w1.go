package main

import (
	"io"
	"math"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/katalvlaran/ricci/bridge"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

// problem is the JSON document read by the w1 command.
type problem struct {
	Mu            []float64 `json:"mu"`
	Nu            []float64 `json:"nu"`
	Cost          []float64 `json:"cost"`
	N             int       `json:"n"`
	Epsilon       float64   `json:"epsilon"`
	MaxIterations int       `json:"max_iterations"`
}

// answer is the JSON document written by the w1 command. Distance is null
// when the bridge rejected the problem.
type answer struct {
	Distance *float64 `json:"distance"`
}

var (
	w1Cmd = &cobra.Command{
		Use:   "w1 --input problem.json",
		Short: "Entropic Wasserstein-1 distance of a JSON problem",
		Args:  cobra.NoArgs,
	}

	w1input = w1Cmd.Flags().String("input", "-", "Problem file, - for stdin")
)

func init() {
	Root.AddCommand(w1Cmd)
	w1Cmd.RunE = runW1
}

func runW1(cmd *cobra.Command, args []string) error {
	p, err := readProblem(cmd, *w1input)
	if err != nil {
		return err
	}

	var out answer
	if d := bridge.ComputeWasserstein1(p.Mu, p.Nu, p.Cost, p.N, p.Epsilon, p.MaxIterations); !math.IsNaN(d) {
		out.Distance = &d
	}

	enc := qjson.NewEncoder(cmd.OutOrStdout())
	if err = enc.Encode(out); err != nil {
		return errors.Wrap(err, "writing result")
	}
	if out.Distance == nil {
		return errors.New("problem rejected")
	}

	return nil
}

func readProblem(cmd *cobra.Command, path string) (problem, error) {
	var (
		raw []byte
		err error
		p   problem
	)
	if path == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return p, errors.Wrapf(err, "reading %v", path)
	}
	if err = qjson.Unmarshal(raw, &p); err != nil {
		return p, errors.Wrapf(err, "decoding %v", path)
	}

	return p, nil
}
