package accuracy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/qdcalc/internal/platform"
	"github.com/agbru/qdcalc/qd"
)

const (
	// BlockSize is the number of trials in one unit of work. Operands are
	// drawn from a generator seeded per block, so results do not depend on
	// the worker count.
	BlockSize = 256
	// DefaultSpread is the default operand exponent spread. It is capped so
	// that the last component of a product or quotient of two operands is
	// still a normal word.
	DefaultSpread = min(40, (-platform.MinExp-4*platform.Mantissa)/2)
	// ProgressBufferMultiplier sizes the progress channel per variant.
	ProgressBufferMultiplier = 5
)

var tracer = otel.Tracer("github.com/agbru/qdcalc/internal/accuracy")

// Config parameterizes a study.
type Config struct {
	// Trials is the number of operand pairs per variant.
	Trials int
	// Seed selects the operand sequence.
	Seed uint64
	// Workers bounds the number of concurrently running blocks.
	Workers int
	// Spread bounds operand exponents to [-Spread, Spread]; zero selects
	// DefaultSpread.
	Spread int
}

// Result summarizes the error of one variant.
type Result struct {
	Name     string
	Op       string
	Accurate bool
	Trials   int
	// MeanErr and MaxErr are relative errors in units of qd.Eps.
	MeanErr float64
	MaxErr  float64
	// NonCanonical counts results that were not in canonical form.
	NonCanonical int
}

// Report is the outcome of a study.
type Report struct {
	Results  []Result
	Trials   int
	Seed     uint64
	Workers  int
	Spread   int
	Strategy qd.BuildStrategy
	Duration time.Duration
}

type partial struct {
	sum, max     float64
	nonCanonical int
	n            int
}

// result summarizes p for variant. Non-canonical results are counted but
// carry no error measurement, so the mean is taken over the others.
func (p partial) result(variant Variant) Result {
	res := Result{
		Name:         variant.Name,
		Op:           variant.Op,
		Accurate:     variant.Accurate,
		Trials:       p.n,
		MaxErr:       p.max,
		NonCanonical: p.nonCanonical,
	}
	if measured := p.n - p.nonCanonical; measured > 0 {
		res.MeanErr = p.sum / float64(measured)
	}
	return res
}

// Run executes the study. Progress updates are sent to reporter, which
// renders them on out. Run returns the context's error, wrapped, when the
// study is canceled or times out before completion.
func Run(ctx context.Context, cfg Config, reporter ProgressReporter, out io.Writer) (*Report, error) {
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("accuracy: trials must be positive, got %d", cfg.Trials)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Spread <= 0 {
		cfg.Spread = DefaultSpread
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	ctx, span := tracer.Start(ctx, "accuracy.Run", trace.WithAttributes(
		attribute.Int("accuracy.trials", cfg.Trials),
		attribute.Int("accuracy.workers", cfg.Workers),
		attribute.Int64("accuracy.seed", int64(cfg.Seed)),
	))
	defer span.End()

	start := time.Now()
	variants := Variants()
	blocks := (cfg.Trials + BlockSize - 1) / BlockSize
	partials := make([][]partial, len(variants))
	done := make([]atomic.Int64, len(variants))
	for i := range partials {
		partials[i] = make([]partial, blocks)
	}

	progressChan := make(chan ProgressUpdate, len(variants)*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(variants), out)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for v := range variants {
		for b := 0; b < blocks; b++ {
			n := min(BlockSize, cfg.Trials-b*BlockSize)
			g.Go(func() error {
				p, err := runBlock(gctx, variants[v], cfg, b, n)
				if err != nil {
					return err
				}
				partials[v][b] = p
				completed := done[v].Add(int64(n))
				select {
				case progressChan <- ProgressUpdate{Index: v, Value: float64(completed) / float64(cfg.Trials)}:
				case <-gctx.Done():
				}
				return nil
			})
		}
	}
	err := g.Wait()
	close(progressChan)
	displayWg.Wait()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("accuracy study: %w", err)
	}

	report := &Report{
		Results:  make([]Result, len(variants)),
		Trials:   cfg.Trials,
		Seed:     cfg.Seed,
		Workers:  cfg.Workers,
		Spread:   cfg.Spread,
		Strategy: qd.Strategy(),
		Duration: time.Since(start),
	}
	for v, variant := range variants {
		var total partial
		for _, p := range partials[v] {
			total.sum += p.sum
			total.max = max(total.max, p.max)
			total.nonCanonical += p.nonCanonical
			total.n += p.n
		}
		report.Results[v] = total.result(variant)
		span.SetAttributes(attribute.Float64("accuracy."+variant.Name+".mean_eps", report.Results[v].MeanErr))
	}
	return report, nil
}

// runBlock evaluates variant on the n operand pairs of block b.
func runBlock(ctx context.Context, variant Variant, cfg Config, b, n int) (partial, error) {
	var p partial
	rng := blockRand(cfg.Seed, b)
	eps := float64(qd.Eps)
	x, y := newBig(), newBig()
	ref, got, d := newBig(), newBig(), newBig()
	for i := 0; i < n; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return partial{}, err
			}
		}
		a, c := Operand(rng, cfg.Spread), Operand(rng, cfg.Spread)
		r := variant.Fn(a, c)
		p.n++
		if !r.IsCanonical() {
			p.nonCanonical++
			continue
		}
		setBig(x, a)
		setBig(y, c)
		reference(variant.Op, ref, x, y)
		setBig(got, r)
		d.Sub(got, ref)
		d.Abs(d)
		if ref.Sign() != 0 {
			d.Quo(d, ref.Abs(ref))
		}
		e, _ := d.Float64()
		e /= eps
		p.sum += e
		p.max = max(p.max, e)
	}
	return p, nil
}

// blockRand returns the generator for block b of the study seeded by seed.
func blockRand(seed uint64, b int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(b)^0x9e3779b97f4a7c15))
}

// Operand draws a nonzero canonical value with a random sign and an
// exponent in [-spread, spread].
func Operand(rng *rand.Rand, spread int) qd.Real {
	r := qd.Rand(rng)
	if r.IsZero() {
		r = qd.One()
	}
	r = r.Ldexp(rng.IntN(2*spread+1) - spread)
	if rng.IntN(2) == 0 {
		r = r.Neg()
	}
	return r
}

func newBig() *big.Float { return new(big.Float).SetPrec(qd.BigPrec) }

// setBig sets z to the exact value of the finite expansion r.
func setBig(z *big.Float, r qd.Real) {
	var t big.Float
	z.SetFloat64(0)
	for _, w := range r.Vec4() {
		z.Add(z, t.SetFloat64(float64(w)))
	}
}

// ErrNoResult is returned by Report.Result for an unknown variant.
var ErrNoResult = errors.New("accuracy: no such variant")

// Result returns the result of the named variant.
func (r *Report) Result(name string) (Result, error) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, nil
		}
	}
	return Result{}, fmt.Errorf("%w: %q", ErrNoResult, name)
}
