package batch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/martinemde/parsec/parsec"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// DefaultWorkers is the pool size used when Options.Workers is not positive.
const DefaultWorkers = 4

// Options configures a batch run.
type Options struct {
	// Name is the parser name recorded in the report.
	Name string
	// Workers bounds the number of inputs parsed at once.
	Workers int
	// Exact requires each input to be consumed entirely.
	Exact  bool
	Logger *zap.Logger
	Events *EventEmitter
}

// Outcome is the result of parsing one input.
type Outcome struct {
	Line      int    `json:"line" yaml:"line"`
	Input     string `json:"input" yaml:"input"`
	OK        bool   `json:"ok" yaml:"ok"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
	Remaining string `json:"remaining,omitempty" yaml:"remaining,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Report collects the outcomes of a batch run in input order.
type Report struct {
	ID         string    `json:"id" yaml:"id"`
	Parser     string    `json:"parser" yaml:"parser"`
	Exact      bool      `json:"exact" yaml:"exact"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	DurationMs int64     `json:"duration_ms" yaml:"duration_ms"`
	Passed     int       `json:"passed" yaml:"passed"`
	Failed     int       `json:"failed" yaml:"failed"`
	Results    []Outcome `json:"results" yaml:"results"`
}

// Run parses every input with p using a bounded worker pool. Outcomes keep
// the order of inputs; Line is the 1-based input index. Parse failures are
// recorded in the report, not returned. Run returns an error only when ctx
// is done before every input was parsed.
func Run(ctx context.Context, p parsec.Parser[any], inputs []string, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Exact {
		p = parsec.AndThenTakeFirst(p, parsec.EOF())
	}

	start := time.Now()
	report := &Report{
		ID:        uuid.NewString(),
		Parser:    opts.Name,
		Exact:     opts.Exact,
		StartedAt: start,
		Results:   make([]Outcome, len(inputs)),
	}
	logger = logger.With(zap.String("batch_id", report.ID), zap.String("parser", opts.Name))
	logger.Debug("batch started", zap.Int("inputs", len(inputs)), zap.Int("workers", workers))
	opts.Events.Emit(BatchStartedEvent(report.ID, opts.Name, len(inputs)))

	wp := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	for i, input := range inputs {
		wp.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := evaluate(p, i+1, input)
			report.Results[i] = out
			if out.OK {
				logger.Debug("input parsed", zap.Int("line", out.Line))
			} else {
				logger.Debug("input failed", zap.Int("line", out.Line), zap.String("error", out.Error))
			}
			opts.Events.Emit(InputEvent(out))
			return nil
		})
	}
	waitErr := wp.Wait()
	if err := ctx.Err(); err != nil {
		logger.Warn("batch cancelled", zap.Error(err))
		return nil, fmt.Errorf("batch %s: %w", report.ID, err)
	}
	if waitErr != nil {
		return nil, fmt.Errorf("batch %s: %w", report.ID, waitErr)
	}

	duration := time.Since(start)
	report.DurationMs = duration.Milliseconds()
	report.Passed = lo.CountBy(report.Results, func(o Outcome) bool { return o.OK })
	report.Failed = len(report.Results) - report.Passed
	logger.Debug("batch completed", zap.Int("passed", report.Passed), zap.Int("failed", report.Failed))
	opts.Events.Emit(BatchCompletedEvent(report.Passed, report.Failed, duration))
	return report, nil
}

func evaluate(p parsec.Parser[any], line int, input string) Outcome {
	out := Outcome{Line: line, Input: input}
	value, remaining, err := p.Parse(input).Get()
	if err != nil {
		out.Error = err.Error()
		var pe *parsec.ParseError
		if errors.As(err, &pe) {
			out.Kind = pe.Kind.String()
		}
		return out
	}
	out.OK = true
	out.Value = value
	out.Remaining = remaining
	return out
}
