// Command aabbkit is the CLI front end for the testcase pipeline:
//
//	aabbkit gen    -n 1000 -distribution clustered -seed 42 -out testcase/0.bin
//	aabbkit oracle -in testcase/0.bin -out testcase/0.csv
//	aabbkit judge  0            (compares testcase/0.csv against out/0.csv)
//
// Exit codes follow the judge contract: 0 match, 1 could not evaluate,
// 2 mismatch. The oracle exits 2 when its cost guard refuses a run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aabbkit/aabbkit"
	"github.com/aabbkit/aabbkit/codec"
	"github.com/aabbkit/aabbkit/gen"
	"github.com/aabbkit/aabbkit/judge"
	"github.com/aabbkit/aabbkit/oracle"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var code int
	switch os.Args[1] {
	case "gen":
		code = runGen(os.Args[2:])
	case "oracle":
		code = runOracle(os.Args[2:])
	case "judge":
		code = runJudge(os.Args[2:])
	default:
		usage()
		code = 1
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: aabbkit <gen|oracle|judge> [flags]")
}

func runGen(args []string) int {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	n := fs.Int("n", 0, "number of AABBs to generate (required)")
	width := fs.Float64("width", 100, "world width")
	height := fs.Float64("height", 100, "world height")
	minSize := fs.Float64("min-size", 0.5, "minimum box edge length")
	maxSize := fs.Float64("max-size", 5.0, "maximum box edge length")
	distribution := fs.String("distribution", "uniform", "spatial distribution: uniform|clustered|grid|packed")
	sizeDist := fs.String("size-dist", "uniform", "size distribution: uniform|skewed")
	bigFraction := fs.Float64("big-fraction", 0.05, "fraction of large boxes when -size-dist=skewed")
	bigSizeMult := fs.Float64("big-size-mult", 3.0, "max size multiplier for large boxes (clamped to world)")
	occupancy := fs.Float64("occupancy", 0, "target occupancy (sum box areas / world area); 0 disables")
	packedOverlap := fs.Float64("packed-overlap-mult", 1.5, "size multiplier in packed distribution")
	seed := fs.Int64("seed", 0, "RNG seed for reproducibility")
	seeded := fs.Bool("seeded", false, "use -seed instead of a clock seed")
	out := fs.String("out", filepath.Join("testcase", "0.bin"), "output dataset path")
	format := fs.String("format", "", "dataset format: bin|text (default from extension)")
	_ = fs.Parse(args)

	logger := aabbkit.NewTextLogger(slog.LevelInfo)

	spatial, err := gen.ParseSpatialDist(*distribution)
	if err != nil {
		logger.Error("invalid flags", "error", err)
		return 1
	}
	size, err := gen.ParseSizeDist(*sizeDist)
	if err != nil {
		logger.Error("invalid flags", "error", err)
		return 1
	}

	var rng *gen.RNG
	if *seeded || *seed != 0 {
		rng = gen.NewRNG(*seed)
	} else {
		rng = gen.NewUnseededRNG()
	}

	dataset, err := gen.Generate(rng, *n,
		gen.WithWorld(float32(*width), float32(*height)),
		gen.WithSizeRange(*minSize, *maxSize),
		gen.WithSpatial(spatial),
		gen.WithSize(size),
		gen.WithSkew(*bigFraction, *bigSizeMult),
		gen.WithOccupancy(*occupancy),
		gen.WithPackedOverlap(*packedOverlap),
	)
	if err != nil {
		logger.Error("generation failed", "error", err)
		return 1
	}

	f := formatForPath(*out, *format)
	comp := codec.CompressionForPath(*out)
	if err := codec.WriteDataset(*out, f, comp, dataset); err != nil {
		logger.Error("write failed", "path", *out, "error", err)
		return 1
	}

	logger.LogGenerate(context.Background(), dataset, rng.Seed())
	logger.Info("dataset written", "path", *out, "format", f.String())
	return 0
}

func runOracle(args []string) int {
	fs := flag.NewFlagSet("oracle", flag.ExitOnError)
	in := fs.String("in", "", "input AASO .bin dataset (required)")
	out := fs.String("out", filepath.Join("testcase", "pairs.csv"), "output pair-list path")
	force := fs.Bool("force", false, "skip the N^2 safety check for large N")
	plain := fs.Bool("plain", false, "write whitespace pairs instead of CSV")
	_ = fs.Parse(args)

	logger := aabbkit.NewTextLogger(slog.LevelInfo)

	if *in == "" {
		logger.Error("missing -in")
		return 1
	}

	md, err := codec.OpenMMap(*in)
	if err != nil {
		logger.Error("read failed", "path", *in, "error", err)
		return 1
	}
	defer md.Close()
	logger.Info("dataset loaded",
		"path", *in,
		"boxes", md.Len(),
		"world_w", md.World().Width,
		"world_h", md.World().Height,
	)

	var opts []func(*oracle.Options)
	if *force {
		opts = append(opts, oracle.WithForce())
	}
	pairs, err := oracle.Pairs(md, opts...)
	if err != nil {
		var guard *oracle.ErrTooManyChecks
		if errors.As(err, &guard) {
			logger.Error("guard refused run",
				"estimated_checks", guard.Estimated,
				"max_checks", guard.MaxChecks,
			)
			return 2
		}
		logger.Error("oracle failed", "error", err)
		return 1
	}
	logger.Info("ground truth computed", "pairs", len(pairs))

	if *plain {
		err = codec.WritePairsText(*out, pairs)
	} else {
		err = codec.WritePairsCSV(*out, pairs)
	}
	if err != nil {
		logger.Error("write failed", "path", *out, "error", err)
		return 1
	}
	logger.Info("pairs written", "path", *out)
	return 0
}

func runJudge(args []string) int {
	fs := flag.NewFlagSet("judge", flag.ExitOnError)
	expected := fs.String("expected", "", "expected pair file (overrides testcase convention)")
	actual := fs.String("actual", "", "actual pair file (overrides testcase convention)")
	_ = fs.Parse(args)

	expPath, actPath := *expected, *actual
	if fs.NArg() > 0 {
		e, a := judge.ConventionalPaths(fs.Arg(0))
		if expPath == "" {
			expPath = e
		}
		if actPath == "" {
			actPath = a
		}
	}
	if expPath == "" || actPath == "" {
		fmt.Fprintln(os.Stderr, "usage: aabbkit judge <testcase> | -expected FILE -actual FILE")
		return 1
	}

	result, err := judge.CompareFiles(expPath, actPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		var missing *judge.ErrMissingInput
		if errors.As(err, &missing) {
			return judge.OutcomeMissingInput.ExitCode()
		}
		return 1
	}
	result.Report(os.Stdout)
	return result.Outcome().ExitCode()
}

// formatForPath resolves the dataset format from an explicit flag or
// the path extension (".in"/".txt" are text, everything else binary).
func formatForPath(path, explicit string) codec.Format {
	switch explicit {
	case "bin":
		return codec.FormatBinary
	case "text":
		return codec.FormatText
	}
	p := strings.ToLower(path)
	p = strings.TrimSuffix(p, ".gz")
	p = strings.TrimSuffix(p, ".lz4")
	if strings.HasSuffix(p, ".in") || strings.HasSuffix(p, ".txt") {
		return codec.FormatText
	}
	return codec.FormatBinary
}
