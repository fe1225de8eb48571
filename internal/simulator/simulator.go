package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/arandu/internal/runid"
	"github.com/lox/arandu/internal/statistics"
	"github.com/lox/arandu/rng"
)

// ErrChecksFailed is returned by Report.Err when any check did not pass
var ErrChecksFailed = errors.New("quality checks failed")

// Default battery settings
const (
	DefaultDraws = 100_000
	DefaultAlpha = 0.001
	maxWorkers   = 8

	// Raw draws recorded per stream for the overlap check
	headLength = 16

	// Draws between context checks
	batchSize = 4096
)

// DefaultBuckets are the ranges the unbiased integer sampler is tested on
var DefaultBuckets = []uint64{2, 3, 7, 1000}

// Config holds configuration for a quality run
type Config struct {
	Seed    uint64   // 0 auto-seeds; the seed used is reported
	Workers int      // Parallel streams, one Jump apart
	Draws   int      // Draws per worker for every check
	Buckets []uint64 // Range sizes for the chi-square checks
	Alpha   float64  // Significance level for the chi-square checks
	RunID   string   // Generated when empty
	Logger  *log.Logger
	Clock   quartz.Clock
}

// WithDefaults fills zero fields with the default battery settings
func (c Config) WithDefaults() Config {
	if c.Workers == 0 {
		c.Workers = min(runtime.NumCPU(), maxWorkers)
	}
	if c.Draws == 0 {
		c.Draws = DefaultDraws
	}
	if len(c.Buckets) == 0 {
		c.Buckets = append([]uint64(nil), DefaultBuckets...)
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
	return c
}

// Validate checks the configuration can produce a meaningful run
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Draws < 1 {
		return fmt.Errorf("draws must be positive, got %d", c.Draws)
	}
	if _, err := statistics.ChiSquareCritical(1, c.Alpha); err != nil {
		return fmt.Errorf("invalid alpha: %w", err)
	}
	total := uint64(c.Workers) * uint64(c.Draws)
	for _, n := range c.Buckets {
		if n < 2 {
			return fmt.Errorf("bucket size must be at least 2, got %d", n)
		}
		// Chi-square needs roughly five expected hits per bucket
		if total < 5*n {
			return fmt.Errorf("bucket size %d needs at least %d total draws, have %d", n, 5*n, total)
		}
	}
	return nil
}

// CheckResult is the outcome of one property check
type CheckResult struct {
	Name      string  `json:"name"`
	Passed    bool    `json:"passed"`
	Detail    string  `json:"detail"`
	Statistic float64 `json:"statistic"`
	Threshold float64 `json:"threshold"`
}

// Report summarises a quality run
type Report struct {
	RunID    string        `json:"run_id"`
	Seed     uint64        `json:"seed"`
	Workers  int           `json:"workers"`
	Draws    int           `json:"draws"`
	Duration time.Duration `json:"duration_ns"`
	Passed   bool          `json:"passed"`
	Checks   []CheckResult `json:"checks"`
}

// Failed returns the checks that did not pass
func (r *Report) Failed() []CheckResult {
	var failed []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

// Err returns ErrChecksFailed, naming the failed checks, or nil
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, c := range failed {
		names[i] = c.Name
	}
	return fmt.Errorf("%w: %s", ErrChecksFailed, strings.Join(names, ", "))
}

// Simulator runs the statistical quality battery over parallel streams
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config.WithDefaults()}
}

// workerResult is what a single stream contributes to the report
type workerResult struct {
	head       []uint64
	zeroState  bool
	outOfRange int
	uniform    statistics.Sample
	counts     [][]int
	normal     statistics.Sample
}

// Run executes every check and returns the report. The error is only
// non-nil if the run itself could not complete; use Report.Err for the
// verdict.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	cfg := s.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger.WithPrefix("simulator")
	start := cfg.Clock.Now()

	base := rng.New(cfg.Seed)
	streams := base.Streams(cfg.Workers)

	logger.Info("Starting quality run",
		"seed", base.Seed(),
		"workers", cfg.Workers,
		"draws", cfg.Draws,
		"buckets", cfg.Buckets)

	results := make([]workerResult, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w, stream := range streams {
		g.Go(func() error {
			res, err := runWorker(ctx, stream, cfg)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = res
			logger.Debug("Worker finished", "worker", w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	runID := cfg.RunID
	if runID == "" {
		// Separate auto-seeded generator so the ID never disturbs the streams
		runID = runid.NewGenerator(rng.New(0, rng.WithClock(cfg.Clock)), cfg.Clock).Generate()
	}

	report := &Report{
		RunID:   runID,
		Seed:    base.Seed(),
		Workers: cfg.Workers,
		Draws:   cfg.Draws,
		Checks:  evaluate(results, cfg),
	}
	report.Passed = len(report.Failed()) == 0
	report.Duration = cfg.Clock.Since(start)

	logger.Info("Quality run complete",
		"run_id", report.RunID,
		"passed", report.Passed,
		"checks", len(report.Checks),
		"duration", report.Duration)
	for _, c := range report.Failed() {
		logger.Warn("Check failed", "check", c.Name, "detail", c.Detail)
	}

	return report, nil
}

// RunChecks is a convenience function for running the default battery
func RunChecks(ctx context.Context, seed uint64, workers, draws int, logger *log.Logger) (*Report, error) {
	return New(Config{
		Seed:    seed,
		Workers: workers,
		Draws:   draws,
		Logger:  logger,
	}).Run(ctx)
}

func runWorker(ctx context.Context, g *rng.Generator, cfg Config) (workerResult, error) {
	res := workerResult{
		head:   make([]uint64, headLength),
		counts: make([][]int, len(cfg.Buckets)),
	}
	for i := range res.head {
		res.head[i] = g.Uint64()
	}

	if err := batched(ctx, cfg.Draws, func() {
		g.Uint64()
		if g.State() == [4]uint64{} {
			res.zeroState = true
		}
	}); err != nil {
		return res, err
	}

	if err := batched(ctx, cfg.Draws, func() {
		f := g.Float64()
		if f < 0 || f >= 1 {
			res.outOfRange++
		}
		res.uniform.Add(f)
	}); err != nil {
		return res, err
	}

	for i, n := range cfg.Buckets {
		counts := make([]int, n)
		if err := batched(ctx, cfg.Draws, func() {
			counts[g.Uint64Range(0, n)]++
		}); err != nil {
			return res, err
		}
		res.counts[i] = counts
	}

	if err := batched(ctx, cfg.Draws, func() {
		res.normal.Add(g.Normal())
	}); err != nil {
		return res, err
	}

	return res, nil
}

// batched calls fn n times, checking for cancellation between batches
func batched(ctx context.Context, n int, fn func()) error {
	for done := 0; done < n; {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(done+batchSize, n)
		for ; done < end; done++ {
			fn()
		}
	}
	return nil
}

func evaluate(results []workerResult, cfg Config) []CheckResult {
	var (
		checks     []CheckResult
		zeroState  bool
		outOfRange int
		uniform    statistics.Sample
		normal     statistics.Sample
	)
	counts := make([][]int, len(cfg.Buckets))
	for i, n := range cfg.Buckets {
		counts[i] = make([]int, n)
	}

	for _, r := range results {
		zeroState = zeroState || r.zeroState
		outOfRange += r.outOfRange
		uniform.Merge(&r.uniform)
		normal.Merge(&r.normal)
		for i := range r.counts {
			for j, c := range r.counts[i] {
				counts[i][j] += c
			}
		}
	}

	checks = append(checks, CheckResult{
		Name:   "state-nonzero",
		Passed: !zeroState,
		Detail: fmt.Sprintf("%d raw draws without an all-zero state", cfg.Workers*cfg.Draws),
	})

	checks = append(checks, CheckResult{
		Name:      "uniform01-range",
		Passed:    outOfRange == 0 && uniform.Min >= 0 && uniform.Max < 1,
		Detail:    fmt.Sprintf("min %.6g, max %.17g, %d out of range", uniform.Min, uniform.Max, outOfRange),
		Statistic: uniform.Max,
		Threshold: 1,
	})

	// Five standard errors of a U(0,1) mean
	meanTol := 5 * math.Sqrt(1.0/12.0/float64(uniform.N))
	meanDev := math.Abs(uniform.Mean() - 0.5)
	checks = append(checks, CheckResult{
		Name:      "uniform01-mean",
		Passed:    meanDev <= meanTol,
		Detail:    fmt.Sprintf("mean %.6f over %d draws", uniform.Mean(), uniform.N),
		Statistic: meanDev,
		Threshold: meanTol,
	})

	for i, n := range cfg.Buckets {
		res, err := statistics.ChiSquareUniform(counts[i], cfg.Alpha)
		check := CheckResult{Name: fmt.Sprintf("int-range-%d", n)}
		if err != nil {
			check.Detail = err.Error()
		} else {
			check.Passed = res.Passed()
			check.Statistic = res.Statistic
			check.Threshold = res.Critical
			check.Detail = fmt.Sprintf("chi-square %.2f, df %d, critical %.2f at alpha %g",
				res.Statistic, res.DF, res.Critical, res.Alpha)
		}
		checks = append(checks, check)
	}

	const normalTol = 0.05
	normalMean := math.Abs(normal.Mean())
	checks = append(checks, CheckResult{
		Name:      "normal-mean",
		Passed:    normalMean <= normalTol,
		Detail:    fmt.Sprintf("mean %.6f over %d draws", normal.Mean(), normal.N),
		Statistic: normalMean,
		Threshold: normalTol,
	})
	normalSD := math.Abs(normal.StdDev() - 1)
	checks = append(checks, CheckResult{
		Name:      "normal-stddev",
		Passed:    normalSD <= normalTol,
		Detail:    fmt.Sprintf("stddev %.6f over %d draws", normal.StdDev(), normal.N),
		Statistic: normalSD,
		Threshold: normalTol,
	})

	checks = append(checks, overlapCheck(results))

	return checks
}

// overlapCheck looks for any raw value shared between the heads of two
// different streams
func overlapCheck(results []workerResult) CheckResult {
	owner := make(map[uint64]int)
	collisions := 0
	for w, r := range results {
		for _, v := range r.head {
			if prev, ok := owner[v]; ok && prev != w {
				collisions++
				continue
			}
			owner[v] = w
		}
	}
	return CheckResult{
		Name:      "stream-overlap",
		Passed:    collisions == 0,
		Detail:    fmt.Sprintf("%d streams, %d shared values in the first %d draws", len(results), collisions, headLength),
		Statistic: float64(collisions),
	}
}
