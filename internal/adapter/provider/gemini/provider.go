package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
	"github.com/heartmarshall/thaivocab-backend/internal/provider"
)

// maxSynonymsPerWord bounds the synonym list per entry regardless of what
// the model returns.
const maxSynonymsPerWord = 3

type coarsePayload struct {
	TranslatedText  string `json:"translatedText"`
	Transliteration string `json:"transliteration"`
}

type analysisPayload struct {
	Segments []struct {
		Text            string `json:"text"`
		Transliteration string `json:"transliteration"`
		Gloss           string `json:"gloss"`
		PartOfSpeech    string `json:"partOfSpeech"`
	} `json:"segments"`
	ExampleThai    string `json:"exampleThai"`
	ExampleEnglish string `json:"exampleEnglish"`
}

type synonymsPayload struct {
	Entries []struct {
		Word     string   `json:"word"`
		Synonyms []string `json:"synonyms"`
	} `json:"entries"`
}

// FetchCoarseTranslation is the slow Stage-1 fallback. Failures wrap
// domain.ErrTranslationUnavailable.
func (c *Client) FetchCoarseTranslation(ctx context.Context, text string) (provider.CoarseResult, error) {
	raw, err := c.generate(ctx, coarsePrompt(text))
	if err != nil {
		return provider.CoarseResult{}, stageErr(domain.ErrTranslationUnavailable, err)
	}

	var payload coarsePayload
	if err := decodeModelJSON(raw, &payload); err != nil {
		return provider.CoarseResult{}, stageErr(domain.ErrTranslationUnavailable, err)
	}
	if payload.TranslatedText == "" {
		return provider.CoarseResult{}, stageErr(domain.ErrTranslationUnavailable, fmt.Errorf("empty translation"))
	}

	return provider.CoarseResult{
		TranslatedText:  payload.TranslatedText,
		Transliteration: payload.Transliteration,
	}, nil
}

// FetchLinguisticAnalysis is the Stage-2 source. Failures wrap
// domain.ErrAnalysisUnavailable.
func (c *Client) FetchLinguisticAnalysis(ctx context.Context, original, translated string) (provider.AnalysisResult, error) {
	raw, err := c.generate(ctx, analysisPrompt(original, translated))
	if err != nil {
		return provider.AnalysisResult{}, stageErr(domain.ErrAnalysisUnavailable, err)
	}

	var payload analysisPayload
	if err := decodeModelJSON(raw, &payload); err != nil {
		return provider.AnalysisResult{}, stageErr(domain.ErrAnalysisUnavailable, err)
	}

	result := provider.AnalysisResult{
		ExampleThai:    payload.ExampleThai,
		ExampleEnglish: payload.ExampleEnglish,
	}
	for _, s := range payload.Segments {
		if s.Text == "" {
			continue
		}
		result.Segments = append(result.Segments, domain.Segment{
			Text:            s.Text,
			Transliteration: s.Transliteration,
			Gloss:           s.Gloss,
			PartOfSpeech:    domain.ParsePartOfSpeech(s.PartOfSpeech),
		})
	}

	c.log.DebugContext(ctx, "analysis complete",
		slog.String("text", original), slog.Int("segments", len(result.Segments)))

	return result, nil
}

// FetchSynonyms is the Stage-3 source. Failures wrap
// domain.ErrEnrichmentUnavailable; the orchestrator swallows them.
func (c *Client) FetchSynonyms(ctx context.Context, words []string) ([]provider.SynonymEntry, error) {
	if len(words) == 0 {
		return nil, nil
	}

	raw, err := c.generate(ctx, synonymsPrompt(words))
	if err != nil {
		return nil, stageErr(domain.ErrEnrichmentUnavailable, err)
	}

	var payload synonymsPayload
	if err := decodeModelJSON(raw, &payload); err != nil {
		return nil, stageErr(domain.ErrEnrichmentUnavailable, err)
	}

	entries := make([]provider.SynonymEntry, 0, len(payload.Entries))
	for _, e := range payload.Entries {
		if e.Word == "" {
			continue
		}
		syns := e.Synonyms
		if len(syns) > maxSynonymsPerWord {
			syns = syns[:maxSynonymsPerWord]
		}
		entries = append(entries, provider.SynonymEntry{Word: e.Word, Synonyms: syns})
	}
	return entries, nil
}

// decodeModelJSON parses model output as JSON, tolerating markdown code
// fences the model sometimes adds despite the JSON output mode.
func decodeModelJSON(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode model json: %w", err)
	}
	return nil
}

func stageErr(sentinel, err error) error {
	return fmt.Errorf("gemini: %w: %w", sentinel, err)
}
