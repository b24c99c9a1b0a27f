package features

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"stylometer/internal/lexicon"
)

func newTestExtractor(t *testing.T, tk Toolkit, parallel bool) *Extractor {
	t.Helper()
	ex, err := NewExtractor(tk, lexicon.Default(), Config{Parallel: parallel}, nil)
	if err != nil {
		t.Fatalf("new extractor: %v", err)
	}
	return ex
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeEmptyInputReturnsZeroVector(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	for _, text := range []string{"", "   ", "\n\t  \r\n"} {
		v, err := ex.Compute(context.Background(), text)
		if err != nil {
			t.Fatalf("expected no error for %q, got %v", text, err)
		}
		if len(v.Slice()) != NumFeatures || !v.IsZero() {
			t.Fatalf("expected %d zeros for %q, got %v", NumFeatures, text, v)
		}
	}
}

func TestComputeValueNonTextReturnsZeroVector(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	var nilString *string
	for _, in := range []any{nil, 42, 3.14, struct{}{}, []byte{0xff, 0xfe}, nilString, []string{"a"}} {
		v, err := ex.ComputeValue(context.Background(), in)
		if err != nil {
			t.Fatalf("expected no error for %#v, got %v", in, err)
		}
		if !v.IsZero() {
			t.Fatalf("expected zero vector for %#v, got %v", in, v)
		}
	}
	v, err := ex.ComputeValue(context.Background(), []byte("Hello"))
	if err != nil {
		t.Fatalf("compute bytes: %v", err)
	}
	if v.WordCount() != 1 {
		t.Fatalf("expected byte input to be treated as text, got word_count=%v", v.WordCount())
	}
}

func TestScenarioTwoSentences(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	v, err := ex.Compute(context.Background(), "I love programming. Programming is fun!")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"word_count", v.WordCount(), 6},
		{"char_count", v.CharCount(), 32},
		{"avg_word_length", v.AvgWordLength(), 32.0 / 6.0},
		{"unique_word_count", v.UniqueWordCount(), 5},
		{"ttr", v.TTR(), 5.0 / 6.0},
		{"hapax_rate", v.HapaxRate(), 4.0 / 6.0},
		{"complex_word_count", v.ComplexWordCount(), 2},
		{"sentence_count", v.SentenceCount(), 2},
		{"avg_sentence_len", v.AvgSentenceLen(), 3},
		{"punctuation_count", v.PunctuationCount(), 2},
		{"stopword_count", v.StopwordCount(), 2},
		{"question_count", v.QuestionCount(), 0},
		{"exclamation_count", v.ExclamationCount(), 1},
		{"first_person_count", v.FirstPersonCount(), 1},
		{"second_person_count", v.SecondPersonCount(), 0},
		{"emotion_word_ratio", v.EmotionWordRatio(), 2.0 / 6.0},
		{"bigram_uniqueness", v.BigramUniqueness(), 1},
		{"trigram_uniqueness", v.TrigramUniqueness(), 1},
		{"polarity", v.Polarity(), 0.25},
		{"subjectivity", v.Subjectivity(), 0.5},
		{"vader_compound", v.VaderCompound(), 0.4},
		{"flesch", v.Flesch(), 72.5},
		{"gunning_fog", v.GunningFog(), 8.1},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want) {
			t.Fatalf("expected %s=%v, got %v", c.name, c.want, c.got)
		}
	}
	if v.UniqueWordCount() >= v.WordCount() {
		t.Fatalf("expected case folding to merge Programming/programming")
	}
}

func TestScenarioSingleWord(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), false)
	v, err := ex.Compute(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if v.WordCount() != 1 || v.TTR() != 1.0 {
		t.Fatalf("expected word_count=1 ttr=1, got %v/%v", v.WordCount(), v.TTR())
	}
	if v.BigramUniqueness() != 0 || v.TrigramUniqueness() != 0 {
		t.Fatalf("expected zero n-gram uniqueness, got %v/%v", v.BigramUniqueness(), v.TrigramUniqueness())
	}
}

func TestScenarioNoPunctuationNoEntities(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	v, err := ex.Compute(context.Background(), "the cat sat on the mat")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if v.PunctuationCount() != 0 || v.PersonEntitiesCount() != 0 || v.DateEntitiesCount() != 0 {
		t.Fatalf("expected zero punctuation and entities, got %v/%v/%v", v.PunctuationCount(), v.PersonEntitiesCount(), v.DateEntitiesCount())
	}
	if v.WordCount() != 6 || v.SentenceCount() != 1 || v.StopwordCount() != 3 {
		t.Fatalf("unexpected counts: words=%v sentences=%v stopwords=%v", v.WordCount(), v.SentenceCount(), v.StopwordCount())
	}
	if !almostEqual(v.BigramUniqueness(), 1) {
		t.Fatalf("expected all bigrams distinct, got %v", v.BigramUniqueness())
	}
}

func TestNoAlphabeticTokensKeepsRatiosZero(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	v, err := ex.Compute(context.Background(), "123 456 ... !!! ???")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if v.WordCount() != 0 {
		t.Fatalf("expected no words, got %v", v.WordCount())
	}
	for _, i := range []int{AvgWordLength, TTR, HapaxRate, EmotionWordRatio, NounRatio, VerbRatio, AdjRatio, AdvRatio, SyntaxVariety, BigramUniqueness, TrigramUniqueness} {
		if v[i] != 0 {
			t.Fatalf("expected %s=0 without words, got %v", schema[i].Name, v[i])
		}
	}
	if v.QuestionCount() != 3 || v.ExclamationCount() != 3 {
		t.Fatalf("expected 3 questions and 3 exclamations, got %v/%v", v.QuestionCount(), v.ExclamationCount())
	}
}

func TestBoundedFeaturesStayInRange(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	texts := []string{
		"Hello",
		"I love programming. Programming is fun!",
		"the the the the the the",
		"You and you and YOU. We were happy, quickly happy!",
		"Is it? It is. It is! Is it?",
		strings.Repeat("A long winding sentence repeats itself endlessly. ", 20),
	}
	for _, text := range texts {
		v, err := ex.Compute(context.Background(), text)
		if err != nil {
			t.Fatalf("compute %q: %v", text, err)
		}
		for _, f := range Schema() {
			if f.Bounded && (v[f.Index] < f.Min || v[f.Index] > f.Max) {
				t.Fatalf("%s=%v outside [%v,%v] for %q", f.Name, v[f.Index], f.Min, f.Max, text)
			}
		}
		if v.UniqueWordCount() > v.WordCount() {
			t.Fatalf("unique_word_count > word_count for %q", text)
		}
	}
}

func TestComputeIsIdempotentAcrossModes(t *testing.T) {
	text := "You said we would meet on Monday. I doubt it! Would you? We'll see, won't we."
	par := newTestExtractor(t, stubToolkit(), true)
	seq := newTestExtractor(t, stubToolkit(), false)
	a, err := par.Compute(context.Background(), text)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	b, err := par.Compute(context.Background(), text)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	c, err := seq.Compute(context.Background(), text)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if a != b || a != c {
		t.Fatalf("expected bit-identical vectors:\n%v\n%v\n%v", a, b, c)
	}
}

func TestDuplicatingTextNeverRaisesTTR(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	base := "The quick brown fox jumps over the lazy dog."
	once, err := ex.Compute(context.Background(), base)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	twice, err := ex.Compute(context.Background(), base+" "+base)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if twice.TTR() > once.TTR() {
		t.Fatalf("expected ttr not to increase: %v -> %v", once.TTR(), twice.TTR())
	}
	if twice.UniqueWordCount() != once.UniqueWordCount() {
		t.Fatalf("expected vocabulary to stay fixed")
	}
}

func TestReadabilityFailureIsNonFatal(t *testing.T) {
	tk := stubToolkit()
	tk.Readability = stubReadability{fleschErr: errors.New("no syllables"), fog: 11.2}
	ex := newTestExtractor(t, tk, true)
	report, err := ex.Analyze(context.Background(), Input{DocumentID: "doc-1", Text: "Short text here."})
	if err != nil {
		t.Fatalf("expected readability failure to be recovered, got %v", err)
	}
	if report.Vector.Flesch() != 0 {
		t.Fatalf("expected flesch substituted with 0, got %v", report.Vector.Flesch())
	}
	if !almostEqual(report.Vector.GunningFog(), 11.2) {
		t.Fatalf("expected gunning_fog to survive, got %v", report.Vector.GunningFog())
	}
	found := false
	for _, e := range report.Errors {
		if e.Stage == CapabilityFlesch && e.Type == "capability_recovered" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recovered flesch error entry, got %+v", report.Errors)
	}
}

func TestMissingReadabilityScorerSubstitutesZero(t *testing.T) {
	tk := stubToolkit()
	tk.Readability = nil
	ex := newTestExtractor(t, tk, false)
	v, err := ex.Compute(context.Background(), "Plain words only.")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if v.Flesch() != 0 || v.GunningFog() != 0 {
		t.Fatalf("expected zero readability, got %v/%v", v.Flesch(), v.GunningFog())
	}
}

func TestHardCapabilityFailurePropagates(t *testing.T) {
	cause := errors.New("tagger model missing")
	cases := []struct {
		name       string
		mutate     func(*Toolkit)
		capability string
	}{
		{"tagger", func(tk *Toolkit) { tk.Tagger = stubTagger{err: cause} }, CapabilityTag},
		{"segmenter", func(tk *Toolkit) { tk.Segmenter = stubSegmenter{err: cause} }, CapabilitySegment},
		{"sentiment", func(tk *Toolkit) { tk.Sentiment = stubSentiment{err: cause} }, CapabilitySentiment},
		{"entities", func(tk *Toolkit) { tk.Entities = stubEntities{err: cause} }, CapabilityEntities},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tk := stubToolkit()
			tc.mutate(&tk)
			ex := newTestExtractor(t, tk, true)
			_, err := ex.Compute(context.Background(), "Some text to analyze.")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrCapability) || !errors.Is(err, cause) {
				t.Fatalf("expected capability error wrapping cause, got %v", err)
			}
			var capErr *CapabilityError
			if !errors.As(err, &capErr) || capErr.Capability != tc.capability {
				t.Fatalf("expected capability %s, got %v", tc.capability, err)
			}
		})
	}
}

func TestOutOfRangeSentimentIsClamped(t *testing.T) {
	tk := stubToolkit()
	tk.Sentiment = stubSentiment{sentiment: Sentiment{Polarity: 3, Subjectivity: -0.2}, compound: math.NaN()}
	logger := &recordingLogger{}
	ex, err := NewExtractor(tk, nil, Config{}, logger)
	if err != nil {
		t.Fatalf("new extractor: %v", err)
	}
	report, err := ex.Analyze(context.Background(), Input{Text: "Great stuff."})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	v := report.Vector
	if v.Polarity() != 1 || v.Subjectivity() != 0 || v.VaderCompound() != 0 {
		t.Fatalf("expected clamped sentiment, got %v/%v/%v", v.Polarity(), v.Subjectivity(), v.VaderCompound())
	}
	violations := 0
	for _, e := range report.Errors {
		if e.Type == "contract_violation" {
			violations++
		}
	}
	if violations != 3 {
		t.Fatalf("expected 3 contract violations, got %d (%+v)", violations, report.Errors)
	}
	warned := false
	for _, line := range logger.lines {
		if strings.HasPrefix(line, "WARN") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("expected a WARN log line, got %v", logger.lines)
	}
}

func TestEntityCountsByLabel(t *testing.T) {
	tk := stubToolkit()
	tk.Entities = stubEntities{entities: []Entity{
		{Text: "Ada Lovelace", Label: LabelPerson},
		{Text: "Charles", Label: LabelPerson},
		{Text: "Monday", Label: LabelDate},
		{Text: "London", Label: "GPE"},
	}}
	ex := newTestExtractor(t, tk, true)
	v, err := ex.Compute(context.Background(), "Ada Lovelace met Charles in London on Monday.")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if v.PersonEntitiesCount() != 2 || v.DateEntitiesCount() != 1 {
		t.Fatalf("expected 2 persons and 1 date, got %v/%v", v.PersonEntitiesCount(), v.DateEntitiesCount())
	}
}

func TestAnalyzeReportMetadata(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	report, err := ex.Analyze(context.Background(), Input{DocumentID: "doc-7", Text: "  Hello there.  "})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.SchemaVersion != SchemaVersion || report.DocumentID != "doc-7" || report.Empty {
		t.Fatalf("unexpected report metadata: %+v", report)
	}
	if report.Fingerprint != Fingerprint("Hello there.") {
		t.Fatalf("expected fingerprint over trimmed text")
	}
	if len(report.Traces) == 0 || report.Traces[0].Name != CapabilitySegment {
		t.Fatalf("expected ordered traces, got %+v", report.Traces)
	}
	empty, err := ex.Analyze(context.Background(), Input{DocumentID: "doc-8", Text: " "})
	if err != nil {
		t.Fatalf("analyze empty: %v", err)
	}
	if !empty.Empty || !empty.Vector.IsZero() || len(empty.Traces) != 0 {
		t.Fatalf("expected short-circuited empty report, got %+v", empty)
	}
}

func TestLegacyVector(t *testing.T) {
	ex := newTestExtractor(t, stubToolkit(), true)
	report, err := ex.Analyze(context.Background(), Input{Text: "One two three. Four."})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	l := report.Legacy
	if l[0] != 4 || l[5] != 2 {
		t.Fatalf("expected word_count=4 sentence_count=2, got %v", l)
	}
	if !almostEqual(l[6], 2) || !almostEqual(l[7], 1) {
		t.Fatalf("expected mean 2 and population variance 1, got %v/%v", l[6], l[7])
	}
	if len(LegacyNames()) != NumLegacyFeatures || LegacyNames()[7] != "var_sentence_len" {
		t.Fatalf("unexpected legacy names: %v", LegacyNames())
	}
}

func TestNewExtractorRequiresLoadBearingCapabilities(t *testing.T) {
	tk := stubToolkit()
	tk.Tagger = nil
	tk.Entities = nil
	_, err := NewExtractor(tk, nil, DefaultConfig(), nil)
	if err == nil {
		t.Fatal("expected error for missing capabilities")
	}
	var capErr *CapabilityError
	if !errors.As(err, &capErr) || capErr.Capability != "tag,entities" {
		t.Fatalf("expected tag,entities to be reported, got %v", err)
	}
}

func TestDefaultConfigIsParallel(t *testing.T) {
	t.Setenv("STYLO_PARALLEL", "false")
	if !DefaultConfig().Parallel {
		t.Fatal("expected the default config to run capabilities in parallel")
	}
}
