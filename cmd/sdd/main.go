// Package main provides a small demonstration of the sdd decomposition:
// it builds a random tensor and prints the per-term extraction trace.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/tensoralg/sdd"
	"github.com/tensoralg/sdd/tensor"
)

func main() {
	var (
		shapeArg = flag.String("shape", "16,12,8", "comma-separated tensor extents")
		terms    = flag.Int("terms", 10, "maximum number of terms to extract")
		seed     = flag.Int64("seed", 1, "random seed for the input tensor")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	shape, err := parseShape(*shapeArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sdd: %v\n", err)
		os.Exit(1)
	}

	t := tensor.Randn(shape, rand.New(rand.NewSource(*seed)))
	normSq := t.NormSq()

	opts := []sdd.Option{sdd.WithMaxTerms(*terms)}
	if *verbose {
		opts = append(opts, sdd.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	dec, err := sdd.Decompose(t, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sdd: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("tensor %v, squared norm %.4f\n", shape, normSq)
	for k := 0; k < dec.Len(); k++ {
		fmt.Printf("term %2d: weight %8.4f  passes %2d  residual %8.4f\n",
			k+1, dec.Weights[k], dec.Iterations[k], math.Sqrt(dec.ResidualSq[k]))
	}
	fmt.Printf("captured %.1f%% of squared norm in %d terms\n",
		100*(1-dec.ResidualSq[dec.Len()-1]/normSq), dec.Len())
}

func parseShape(arg string) (tensor.Shape, error) {
	parts := strings.Split(arg, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("shape %q needs at least two extents", arg)
	}
	shape := make(tensor.Shape, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("bad extent %q in shape", p)
		}
		shape[i] = v
	}
	return shape, nil
}
