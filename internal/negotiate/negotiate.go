package negotiate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/concordlabs/concord/internal/align"
	"github.com/concordlabs/concord/internal/rules"
	"github.com/concordlabs/concord/internal/schema"
)

// DefaultConfidenceThreshold is the minimum overall confidence for a
// negotiation to be approved without manual review.
const DefaultConfidenceThreshold = 0.8

// DefaultParallelism bounds how many field evaluations run concurrently.
const DefaultParallelism = 4

// ExternalAligner is a production semantic-matching backend (an LLM or
// retrieval service). It must return one candidate per target field, in
// target order, exactly like align.Scorer.Score. The orchestrator falls
// back to the deterministic scorer when it returns an error.
type ExternalAligner interface {
	Score(ctx context.Context, source schema.FieldDescriptor, targets []schema.FieldDescriptor) ([]align.CandidateMatch, error)
}

// FieldOutcome reports one source field's evaluation to an Observer.
// Alignment is nil when the field went unmatched.
type FieldOutcome struct {
	Source    schema.FieldDescriptor
	Alignment *Alignment
}

// Observer receives a notification after each field evaluation, enabling
// progress reporting without global state.
//
// Notifications follow evaluation completion order, not schema order:
// fields are evaluated concurrently. The orchestrator serializes the
// calls, so implementations need no locking of their own.
type Observer interface {
	FieldEvaluated(FieldOutcome)
}

// Negotiator drives the per-field alignment loop across a schema pair.
//
// A Negotiator is immutable after construction and safe for concurrent
// use: every Negotiate call carries its own state.
type Negotiator struct {
	scorer      *align.Scorer
	external    ExternalAligner
	observer    Observer
	idGen       RequestIDGenerator
	threshold   float64
	minFloor    float64
	parallelism int
}

// Option configures a Negotiator.
type Option func(*Negotiator)

// WithConfidenceThreshold sets the overall-confidence bar for approval.
func WithConfidenceThreshold(threshold float64) Option {
	return func(n *Negotiator) { n.threshold = threshold }
}

// WithMinFloor sets the minimum candidate score below which a source
// field is reported unmatched instead of aligned.
func WithMinFloor(floor float64) Option {
	return func(n *Negotiator) { n.minFloor = floor }
}

// WithScorer replaces the default deterministic scorer (e.g., to supply
// a custom synonym table).
func WithScorer(s *align.Scorer) Option {
	return func(n *Negotiator) { n.scorer = s }
}

// WithExternalAligner installs a semantic-matching backend. The
// deterministic scorer remains the fallback when the backend fails.
func WithExternalAligner(a ExternalAligner) Option {
	return func(n *Negotiator) { n.external = a }
}

// WithObserver installs a progress observer.
func WithObserver(o Observer) Option {
	return func(n *Negotiator) { n.observer = o }
}

// WithRequestIDs replaces the UUIDv7 request ID generator (for testing).
func WithRequestIDs(g RequestIDGenerator) Option {
	return func(n *Negotiator) { n.idGen = g }
}

// WithParallelism bounds concurrent field evaluations. Values below 1
// are clamped to 1 (fully sequential).
func WithParallelism(workers int) Option {
	return func(n *Negotiator) {
		if workers < 1 {
			workers = 1
		}
		n.parallelism = workers
	}
}

// New creates a Negotiator with the default deterministic scorer,
// a 0.8 confidence threshold, and a 0.3 minimum floor.
func New(opts ...Option) *Negotiator {
	n := &Negotiator{
		scorer:      align.NewScorer(),
		idGen:       UUIDv7Generator{},
		threshold:   DefaultConfidenceThreshold,
		minFloor:    align.DefaultMinFloor,
		parallelism: DefaultParallelism,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Negotiate aligns every source field against the target schema and
// aggregates the outcome into a Result.
//
// Structurally invalid schemas are the only hard failure; a field with no
// acceptable candidate is data (Result.Unmatched), not an error.
//
// Field evaluations run concurrently up to the configured parallelism and
// are merged back into source declaration order, so the result does not
// depend on scheduling. If ctx is cancelled mid-negotiation the partial
// work is discarded in full and ctx.Err() is returned.
func (n *Negotiator) Negotiate(ctx context.Context, source, target *schema.Schema) (*Result, error) {
	if errs := source.Validate(); len(errs) > 0 {
		return nil, schemaError("source", errs)
	}
	if errs := target.Validate(); len(errs) > 0 {
		return nil, schemaError("target", errs)
	}

	slog.Debug("starting negotiation",
		"source", source.Name,
		"target", target.Name,
		"source_fields", len(source.Fields),
		"target_fields", len(target.Fields))

	outcomes := make([]fieldOutcome, len(source.Fields))

	var (
		wg  sync.WaitGroup
		sem = make(chan struct{}, n.parallelism)
		mu  sync.Mutex // serializes observer notifications
	)

eval:
	for i, field := range source.Fields {
		select {
		case <-ctx.Done():
			break eval
		case sem <- struct{}{}:
			// select picks randomly when both cases are ready; re-check
			// so a cancelled context never starts new evaluations.
			if ctx.Err() != nil {
				<-sem
				break eval
			}
		}

		wg.Add(1)
		go func(slot int, src schema.FieldDescriptor) {
			defer wg.Done()
			defer func() { <-sem }()

			outcome := n.evaluateField(ctx, src, target.Fields)
			outcomes[slot] = outcome

			if n.observer != nil {
				mu.Lock()
				n.observer.FieldEvaluated(FieldOutcome{Source: src, Alignment: outcome.alignment})
				mu.Unlock()
			}
		}(i, field)
	}

	wg.Wait()

	// Either complete and return, or discard in full.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		ID:           n.idGen.Generate(),
		SourceSchema: source.Name,
		TargetSchema: target.Name,
		CreatedAt:    time.Now().UTC(),
	}

	// Merge slots back into source declaration order.
	var sum float64
	for _, o := range outcomes {
		if o.alignment != nil {
			result.Alignments = append(result.Alignments, *o.alignment)
			sum += o.alignment.Confidence
		} else {
			result.Unmatched = append(result.Unmatched, o.source.Name)
		}
	}

	if len(result.Alignments) > 0 {
		result.OverallConfidence = sum / float64(len(result.Alignments))
	}
	result.Decision = DecisionNeedsReview
	if result.OverallConfidence >= n.threshold {
		result.Decision = DecisionApproved
	}
	result.Compliance = annotateCompliance(result.Decision)

	slog.Debug("negotiation complete",
		"id", result.ID,
		"alignments", len(result.Alignments),
		"unmatched", len(result.Unmatched),
		"overall_confidence", result.OverallConfidence,
		"decision", result.Decision)

	return result, nil
}

type fieldOutcome struct {
	source    schema.FieldDescriptor
	alignment *Alignment // nil when unmatched
}

// evaluateField runs the score -> select -> generate pipeline for one
// source field. Reads only its own descriptor and the shared read-only
// target list.
func (n *Negotiator) evaluateField(ctx context.Context, source schema.FieldDescriptor, targets []schema.FieldDescriptor) fieldOutcome {
	candidates := n.scoreCandidates(ctx, source, targets)

	best, ok := align.Select(candidates, n.minFloor)
	if !ok {
		return fieldOutcome{source: source}
	}

	a := &Alignment{
		Source:      source,
		Target:      best.Target,
		Confidence:  best.Score,
		Type:        align.ClassifyScore(best.Score),
		Basis:       best.Basis,
		Explanation: best.Explanation,
		Rule:        rules.Generate(source, best.Target, best.Score),
	}
	return fieldOutcome{source: source, alignment: a}
}

// scoreCandidates asks the external backend first and falls back to the
// deterministic scorer on any failure or malformed response.
func (n *Negotiator) scoreCandidates(ctx context.Context, source schema.FieldDescriptor, targets []schema.FieldDescriptor) []align.CandidateMatch {
	if n.external != nil {
		candidates, err := n.external.Score(ctx, source, targets)
		if err == nil && len(candidates) == len(targets) {
			return candidates
		}
		if err == nil {
			err = fmt.Errorf("backend returned %d candidates for %d targets", len(candidates), len(targets))
		}
		slog.Warn("external aligner failed, falling back to deterministic scorer",
			"field", source.Name, "error", err)
	}
	return n.scorer.Score(source, targets)
}

func schemaError(role string, errs []schema.ValidationError) error {
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return fmt.Errorf("invalid %s schema: %w", role, errors.Join(joined...))
}
