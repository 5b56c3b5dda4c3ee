// Package pipeline implements the progressive translation pipeline: three
// dependent remote lookups whose results merge into one evolving
// TranslationResult, guarded against out-of-order completion of superseded
// queries.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
	"github.com/heartmarshall/thaivocab-backend/internal/provider"
)

// CoarseTranslator is the Stage-1 contract: whole-phrase translation plus
// romanized transliteration. Implementations fail with
// domain.ErrTranslationUnavailable.
type CoarseTranslator interface {
	FetchCoarseTranslation(ctx context.Context, text string) (provider.CoarseResult, error)
}

// Analyzer is the Stage-2 contract: word segmentation with per-segment gloss,
// transliteration and part of speech, plus one example sentence pair.
// Implementations fail with domain.ErrAnalysisUnavailable.
type Analyzer interface {
	FetchLinguisticAnalysis(ctx context.Context, original, translated string) (provider.AnalysisResult, error)
}

// SynonymProvider is the Stage-3 contract: best-effort synonyms for a bounded
// word list. Implementations fail with domain.ErrEnrichmentUnavailable.
type SynonymProvider interface {
	FetchSynonyms(ctx context.Context, words []string) ([]provider.SynonymEntry, error)
}

// Snapshot is an atomic observation of the pipeline. Result is nil unless
// State.HasResult(); it is always a deep copy the caller may keep.
type Snapshot struct {
	State  domain.PipelineState
	Result *domain.TranslationResult
}

// Orchestrator sequences the three stages for the most recently submitted
// query and suppresses every outcome of superseded queries.
//
// Staleness is tracked by a monotonically increasing sequence number stamped
// at Submit and carried through each stage continuation; a continuation whose
// number no longer matches drops its outcome unconditionally, success or
// failure. In-flight HTTP requests of old queries are not cancelled, their
// results are just ignored (logical cancellation).
type Orchestrator struct {
	log      *slog.Logger
	coarse   CoarseTranslator
	analyzer Analyzer
	synonyms SynonymProvider

	stageTimeout time.Duration
	enrichCap    int
	onPublish    func(Snapshot)

	mu     sync.Mutex
	seq    uint64
	state  domain.PipelineState
	result *domain.TranslationResult
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithPublishHook registers a hook invoked (outside the lock) after every
// published transition. Used by the SSE transport.
func WithPublishHook(fn func(Snapshot)) Option {
	return func(o *Orchestrator) { o.onPublish = fn }
}

// New creates an Orchestrator in the IDLE state.
func New(
	log *slog.Logger,
	coarse CoarseTranslator,
	analyzer Analyzer,
	synonyms SynonymProvider,
	cfg config.PipelineConfig,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		log:          log.With("component", "pipeline"),
		coarse:       coarse,
		analyzer:     analyzer,
		synonyms:     synonyms,
		stageTimeout: cfg.StageTimeout,
		enrichCap:    cfg.EnrichSegmentCap,
		state:        domain.PipelineStateIdle,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Submit starts the pipeline for a new query, superseding any in-flight one.
// An empty or whitespace-only query is a no-op: no state change, returns
// false. Otherwise the state moves to LOADING synchronously, the previous
// result is cleared, and Stage 1 runs on a new goroutine.
func (o *Orchestrator) Submit(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}

	o.mu.Lock()
	o.seq++
	token := o.seq
	o.state = domain.PipelineStateLoading
	o.result = nil
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
	o.log.Debug("query submitted", slog.Uint64("seq", token), slog.String("query", query))

	go o.runStages(token, query)
	return true
}

// Snapshot returns the current (state, result) pair as one atomic copy.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshotLocked()
}

// runStages executes Stage 1 → Stage 2 → Stage 3 sequentially for one query.
// Each stage boundary re-checks the token before touching shared state.
func (o *Orchestrator) runStages(token uint64, query string) {
	// Stage 1: coarse translation.
	coarse, err := o.fetchCoarse(query)
	if err != nil {
		if o.transition(token, domain.PipelineStateError, nil) {
			o.log.Warn("coarse translation failed",
				slog.Uint64("seq", token), slog.String("error", err.Error()))
		}
		return
	}
	ok := o.transition(token, domain.PipelineStatePartialSuccess, &domain.TranslationResult{
		OriginalText:    query,
		TranslatedText:  coarse.TranslatedText,
		Transliteration: coarse.Transliteration,
	})
	if !ok {
		return
	}

	// Stage 2: linguistic analysis.
	analysis, err := o.fetchAnalysis(query, coarse.TranslatedText)
	if err != nil {
		// The partial result stays published; only the state degrades.
		if o.patch(token, domain.PipelineStateError, func(r *domain.TranslationResult) {}) {
			o.log.Warn("linguistic analysis failed",
				slog.Uint64("seq", token), slog.String("error", err.Error()))
		}
		return
	}
	ok = o.patch(token, domain.PipelineStateSuccess, func(r *domain.TranslationResult) {
		r.Segments = analysis.Segments
		r.ExampleThai = analysis.ExampleThai
		r.ExampleEnglish = analysis.ExampleEnglish
	})
	if !ok {
		return
	}

	// Stage 3: synonym enrichment, best effort. Failures never surface and
	// never change state, whether the token is current or not.
	words := enrichWords(analysis.Segments, o.enrichCap)
	if len(words) == 0 {
		return
	}
	entries, err := o.fetchSynonyms(words)
	if err != nil {
		o.log.Debug("synonym enrichment failed",
			slog.Uint64("seq", token), slog.String("error", err.Error()))
		return
	}
	o.patch(token, domain.PipelineStateSuccess, func(r *domain.TranslationResult) {
		mergeSynonyms(r.Segments, entries)
	})
}

func (o *Orchestrator) fetchCoarse(query string) (provider.CoarseResult, error) {
	ctx, cancel := o.stageContext()
	defer cancel()
	return o.coarse.FetchCoarseTranslation(ctx, query)
}

func (o *Orchestrator) fetchAnalysis(original, translated string) (provider.AnalysisResult, error) {
	ctx, cancel := o.stageContext()
	defer cancel()
	return o.analyzer.FetchLinguisticAnalysis(ctx, original, translated)
}

func (o *Orchestrator) fetchSynonyms(words []string) ([]provider.SynonymEntry, error) {
	ctx, cancel := o.stageContext()
	defer cancel()
	return o.synonyms.FetchSynonyms(ctx, words)
}

// stageContext bounds one remote call so a dead provider cannot park the
// state machine in LOADING or PARTIAL_SUCCESS forever.
func (o *Orchestrator) stageContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), o.stageTimeout)
}

// transition replaces state and result wholesale if the token is still
// current. Returns false (dropping the outcome silently) when stale.
func (o *Orchestrator) transition(token uint64, state domain.PipelineState, result *domain.TranslationResult) bool {
	o.mu.Lock()
	if token != o.seq {
		o.mu.Unlock()
		o.logStale(token)
		return false
	}
	o.state = state
	o.result = result
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
	return true
}

// patch applies an in-place mutation to the current result if the token is
// still current, then publishes. Used by Stage 2 and Stage 3 merges; each
// mutation is one atomic critical section.
func (o *Orchestrator) patch(token uint64, state domain.PipelineState, mutate func(*domain.TranslationResult)) bool {
	o.mu.Lock()
	if token != o.seq {
		o.mu.Unlock()
		o.logStale(token)
		return false
	}
	o.state = state
	if o.result != nil {
		mutate(o.result)
	}
	snap := o.snapshotLocked()
	o.mu.Unlock()

	o.notify(snap)
	return true
}

func (o *Orchestrator) snapshotLocked() Snapshot {
	snap := Snapshot{State: o.state}
	if o.state.HasResult() {
		snap.Result = o.result.Clone()
	}
	return snap
}

func (o *Orchestrator) notify(snap Snapshot) {
	if o.onPublish != nil {
		o.onPublish(snap)
	}
}

// logStale records an intentional suppression. Deliberately debug-level:
// a stale drop is not a failure.
func (o *Orchestrator) logStale(token uint64) {
	o.log.Debug("stale stage outcome dropped", slog.Uint64("seq", token))
}
