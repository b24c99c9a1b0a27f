package features

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"stylometer/internal/lexicon"
	"stylometer/internal/metrics"
)

type Input struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
}

type ErrorEntry struct {
	Stage     string `json:"stage"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Retryable bool   `json:"retryable"`
}

type SpanTrace struct {
	Name       string `json:"name"`
	DurationMs int64  `json:"duration_ms"`
	Status     string `json:"status"`
}

type Report struct {
	DocumentID    string       `json:"document_id"`
	SchemaVersion int          `json:"schema_version"`
	Fingerprint   string       `json:"fingerprint"`
	Empty         bool         `json:"empty"`
	Language      string       `json:"language,omitempty"` // set by callers that run detection
	Vector        Vector       `json:"vector"`
	Legacy        LegacyVector `json:"legacy"`
	Errors        []ErrorEntry `json:"errors"`
	Traces        []SpanTrace  `json:"traces"`
}

// Extractor turns text into feature vectors. It holds no per-call state and
// may be shared by concurrent callers.
type Extractor struct {
	toolkit Toolkit
	lex     *lexicon.Lexicon
	cfg     Config
	logger  Logger
}

func NewExtractor(toolkit Toolkit, lex *lexicon.Lexicon, cfg Config, logger Logger) (*Extractor, error) {
	if err := toolkit.validate(); err != nil {
		return nil, err
	}
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Extractor{toolkit: toolkit, lex: lex, cfg: cfg, logger: logger}, nil
}

// Compute returns the feature vector of text. Blank text yields the zero vector
// and a nil error; a failing load-bearing capability yields a *CapabilityError.
func (e *Extractor) Compute(ctx context.Context, text string) (Vector, error) {
	report, err := e.Analyze(ctx, Input{Text: text})
	if err != nil {
		return Vector{}, err
	}
	return report.Vector, nil
}

// ComputeValue is Compute for values of unknown type. Anything that is not
// text yields the zero vector.
func (e *Extractor) ComputeValue(ctx context.Context, v any) (Vector, error) {
	text, ok := normalizeInput(v)
	if !ok {
		metrics.Extractions.WithLabelValues("empty").Inc()
		return Vector{}, nil
	}
	report, err := e.analyze(ctx, "", text)
	if err != nil {
		return Vector{}, err
	}
	return report.Vector, nil
}

func (e *Extractor) Analyze(ctx context.Context, in Input) (Report, error) {
	text, ok := normalizeInput(in.Text)
	if !ok {
		metrics.Extractions.WithLabelValues("empty").Inc()
		return newReport(in.DocumentID, ""), nil
	}
	return e.analyze(ctx, in.DocumentID, text)
}

func newReport(documentID, text string) Report {
	sum := sha256.Sum256([]byte(text))
	return Report{
		DocumentID:    documentID,
		SchemaVersion: SchemaVersion,
		Fingerprint:   hex.EncodeToString(sum[:]),
		Empty:         text == "",
		Errors:        []ErrorEntry{},
		Traces:        []SpanTrace{},
	}
}

// Fingerprint is the store key of a text: the SHA-256 of its trimmed form.
func Fingerprint(text string) string {
	normalized, _ := normalizeInput(text)
	return newReport("", normalized).Fingerprint
}

type gathered struct {
	sentences []Sentence
	tokens    []Token
	tagged    []TaggedToken
	sentiment Sentiment
	compound  float64
	entities  []Entity
	flesch    scoreResult
	fog       scoreResult
}

type capabilityCall struct {
	name     string
	optional bool
	run      func(ctx context.Context) error
}

func (e *Extractor) analyze(ctx context.Context, documentID, text string) (Report, error) {
	start := time.Now()
	report := newReport(documentID, text)

	var g gathered
	calls := []capabilityCall{
		{name: CapabilitySegment, run: func(ctx context.Context) (err error) {
			g.sentences, err = e.toolkit.Segmenter.Segment(ctx, text)
			return err
		}},
		{name: CapabilityTokenize, run: func(ctx context.Context) (err error) {
			g.tokens, err = e.toolkit.Segmenter.Tokenize(ctx, text)
			return err
		}},
		{name: CapabilityTag, run: func(ctx context.Context) (err error) {
			g.tagged, err = e.toolkit.Tagger.Tag(ctx, text)
			return err
		}},
		{name: CapabilitySentiment, run: func(ctx context.Context) (err error) {
			g.sentiment, err = e.toolkit.Sentiment.ScoreSentiment(ctx, text)
			return err
		}},
		{name: CapabilityCompound, run: func(ctx context.Context) (err error) {
			g.compound, err = e.toolkit.Sentiment.ScoreCompound(ctx, text)
			return err
		}},
		{name: CapabilityEntities, run: func(ctx context.Context) (err error) {
			g.entities, err = e.toolkit.Entities.Entities(ctx, text)
			return err
		}},
		{name: CapabilityFlesch, optional: true, run: func(ctx context.Context) error {
			g.flesch = fleschScore(ctx, e.toolkit.Readability, text)
			return g.flesch.err
		}},
		{name: CapabilityGunningFog, optional: true, run: func(ctx context.Context) error {
			g.fog = gunningFogScore(ctx, e.toolkit.Readability, text)
			return g.fog.err
		}},
	}

	errs := e.runCalls(ctx, calls, &report)
	for i, c := range calls {
		if errs[i] == nil {
			continue
		}
		metrics.CapabilityFailures.WithLabelValues(c.name).Inc()
		if c.optional {
			report.Errors = append(report.Errors, ErrorEntry{
				Stage:     c.name,
				Message:   fmt.Sprintf("%v (substituted 0.0)", errs[i]),
				Type:      "capability_recovered",
				Retryable: true,
			})
			continue
		}
		metrics.Extractions.WithLabelValues("error").Inc()
		if e.logger != nil {
			e.logger.Log("ERROR", "FEATURES", "feature extraction failed", fmt.Sprintf("document_id=%s capability=%s error=%v", documentID, c.name, errs[i]))
		}
		return report, &CapabilityError{Capability: c.name, Err: errs[i]}
	}

	var s stats
	withSpan(&report, "compute_statistics", func() error {
		words := alphabeticTokens(g.tokens)
		s = stats{
			lexical:     computeLexical(words),
			syntactic:   computeSyntactic(text, g.sentences, words, g.tagged, e.lex),
			affective:   computeAffective(words, g.sentiment, g.compound, e.lex),
			readability: computeReadability(g.flesch, g.fog),
			reference:   computeReference(words, g.entities, e.lex),
			ngrams:      computeNgrams(lowered(words)),
		}
		return nil
	})

	withSpan(&report, "assemble_vector", func() error {
		report.Vector = assemble(s)
		report.Legacy = legacyVector(s)
		for _, v := range enforceContract(&report.Vector) {
			metrics.ContractViolations.WithLabelValues(v.feature).Inc()
			report.Errors = append(report.Errors, ErrorEntry{
				Stage:     "assemble_vector",
				Message:   v.String(),
				Type:      "contract_violation",
				Retryable: false,
			})
			if e.logger != nil {
				e.logger.Log("WARN", "FEATURES", "capability value out of range", fmt.Sprintf("document_id=%s %s", documentID, v))
			}
		}
		return nil
	})

	metrics.Extractions.WithLabelValues("ok").Inc()
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())
	if e.logger != nil {
		e.logger.Log("ANALYSIS", "FEATURES", "feature extraction completed", fmt.Sprintf("document_id=%s words=%d sentences=%d errors=%d duration_ms=%d",
			documentID, s.lexical.wordCount, s.syntactic.sentenceCount, len(report.Errors), time.Since(start).Milliseconds()))
	}
	return report, nil
}

// runCalls invokes every capability, concurrently when configured, and records
// one trace per call in declaration order.
func (e *Extractor) runCalls(ctx context.Context, calls []capabilityCall, report *Report) []error {
	errs := make([]error, len(calls))
	durations := make([]time.Duration, len(calls))
	invoke := func(i int) {
		t0 := time.Now()
		errs[i] = calls[i].run(ctx)
		durations[i] = time.Since(t0)
	}

	if e.cfg.Parallel {
		var wg sync.WaitGroup
		for i := range calls {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				invoke(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range calls {
			invoke(i)
		}
	}

	for i, c := range calls {
		status := "ok"
		if errs[i] != nil {
			status = "error"
		}
		report.Traces = append(report.Traces, SpanTrace{
			Name:       c.name,
			DurationMs: durations[i].Milliseconds(),
			Status:     status,
		})
	}
	return errs
}

func withSpan(report *Report, name string, fn func() error) {
	start := time.Now()
	status := "ok"
	if err := fn(); err != nil {
		status = "error"
		report.Errors = append(report.Errors, ErrorEntry{
			Stage:     name,
			Message:   err.Error(),
			Type:      "exception",
			Retryable: false,
		})
	}
	report.Traces = append(report.Traces, SpanTrace{
		Name:       name,
		DurationMs: time.Since(start).Milliseconds(),
		Status:     status,
	})
}
