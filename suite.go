package aabbkit

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/aabbkit/aabbkit/blobstore"
	"github.com/aabbkit/aabbkit/codec"
	"github.com/aabbkit/aabbkit/gen"
	"github.com/aabbkit/aabbkit/oracle"
)

// Testcase describes one dataset to generate together with its ground
// truth.
type Testcase struct {
	// Name becomes the artifact base name: <Name>.bin for the dataset,
	// <Name>.csv for the expected pairs.
	Name string
	// Count is the number of boxes.
	Count int
	// Seed seeds the testcase's own RNG; runs with the same seed and
	// options reproduce the artifacts bit for bit.
	Seed int64
	// GenOptions configure the generator for this case.
	GenOptions []func(*gen.Options)
	// Force bypasses the oracle's pairwise-check guard.
	Force bool
}

// SuiteOptions configures GenerateSuite.
type SuiteOptions struct {
	// Parallelism bounds concurrent testcases; 0 means GOMAXPROCS.
	Parallelism int
	// Store receives the artifacts. Defaults to a LocalStore rooted at
	// "testcase".
	Store blobstore.Store
	// Compression applies to dataset artifacts (pair CSVs stay plain).
	Compression codec.Compression
	// Logger defaults to a text logger.
	Logger *Logger
}

// WithParallelism bounds the number of concurrently generated cases.
func WithParallelism(n int) func(*SuiteOptions) {
	return func(o *SuiteOptions) {
		o.Parallelism = n
	}
}

// WithStore publishes artifacts to the given store.
func WithStore(store blobstore.Store) func(*SuiteOptions) {
	return func(o *SuiteOptions) {
		o.Store = store
	}
}

// WithCompression compresses dataset artifacts.
func WithCompression(comp codec.Compression) func(*SuiteOptions) {
	return func(o *SuiteOptions) {
		o.Compression = comp
	}
}

// WithLogger sets the suite logger.
func WithLogger(logger *Logger) func(*SuiteOptions) {
	return func(o *SuiteOptions) {
		o.Logger = logger
	}
}

// GenerateTestcase runs the full pipeline for one testcase: generate
// the dataset with an owned RNG, compute the ground truth, and publish
// both artifacts to the store.
func GenerateTestcase(ctx context.Context, tc Testcase, store blobstore.Store, comp codec.Compression, logger *Logger) error {
	if logger == nil {
		logger = NoopLogger()
	}
	log := logger.WithTestcase(tc.Name)

	rng := gen.NewRNG(tc.Seed)
	dataset, err := gen.Generate(rng, tc.Count, tc.GenOptions...)
	if err != nil {
		return fmt.Errorf("testcase %s: %w", tc.Name, err)
	}
	log.LogGenerate(ctx, dataset, tc.Seed)

	var oracleOpts []func(*oracle.Options)
	if tc.Force {
		oracleOpts = append(oracleOpts, oracle.WithForce())
	}
	pairs, err := oracle.Pairs(dataset, oracleOpts...)
	log.LogOracle(ctx, dataset.Len(), len(pairs), err)
	if err != nil {
		return fmt.Errorf("testcase %s: %w", tc.Name, err)
	}

	var buf bytes.Buffer
	if err := codec.EncodeDataset(&buf, codec.FormatBinary, comp, dataset); err != nil {
		return fmt.Errorf("testcase %s: %w", tc.Name, err)
	}
	datasetName := tc.Name + ".bin" + compressionSuffix(comp)
	if err := store.Put(ctx, datasetName, buf.Bytes()); err != nil {
		log.LogPublish(ctx, datasetName, buf.Len(), err)
		return fmt.Errorf("testcase %s: %w", tc.Name, err)
	}
	log.LogPublish(ctx, datasetName, buf.Len(), nil)

	var csv strings.Builder
	csv.WriteString("id1,id2\n")
	for _, p := range pairs {
		fmt.Fprintf(&csv, "%d,%d\n", p.A, p.B)
	}
	pairsName := tc.Name + ".csv"
	if err := store.Put(ctx, pairsName, []byte(csv.String())); err != nil {
		log.LogPublish(ctx, pairsName, csv.Len(), err)
		return fmt.Errorf("testcase %s: %w", tc.Name, err)
	}
	log.LogPublish(ctx, pairsName, csv.Len(), nil)

	return nil
}

// GenerateSuite generates a whole benchmark suite, running testcases
// in parallel. Each case owns its RNG, so parallel generation stays
// reproducible per seed.
func GenerateSuite(ctx context.Context, cases []Testcase, optFns ...func(*SuiteOptions)) error {
	opts := SuiteOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	if opts.Store == nil {
		opts.Store = blobstore.NewLocalStore("testcase")
	}
	if opts.Logger == nil {
		opts.Logger = NewLogger(nil)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)
	for _, tc := range cases {
		tc := tc
		g.Go(func() error {
			return GenerateTestcase(ctx, tc, opts.Store, opts.Compression, opts.Logger)
		})
	}
	return g.Wait()
}

func compressionSuffix(comp codec.Compression) string {
	switch comp {
	case codec.CompressionGzip:
		return ".gz"
	case codec.CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
