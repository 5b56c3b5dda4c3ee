package pipeline

import (
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
	"github.com/heartmarshall/thaivocab-backend/internal/provider"
)

// enrichWords returns the texts of the first limit segments, bounding the cost
// of the enrichment call. Duplicate texts are kept: the response is keyed by
// word, so duplicates cost the provider nothing extra and the merge fans the
// same synonym set out to every matching segment.
func enrichWords(segments []domain.Segment, limit int) []string {
	if len(segments) > limit {
		segments = segments[:limit]
	}
	words := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			words = append(words, seg.Text)
		}
	}
	return words
}

// mergeSynonyms patches enrichment entries into segments, matching purely by
// the segment's literal source-language text. Every segment with a matching
// text receives its own copy of the synonym set; segments absent from the
// response keep Synonyms == nil ("not yet enriched").
func mergeSynonyms(segments []domain.Segment, entries []provider.SynonymEntry) {
	if len(segments) == 0 || len(entries) == 0 {
		return
	}
	byWord := make(map[string][]string, len(entries))
	for _, e := range entries {
		byWord[e.Word] = e.Synonyms
	}
	for i := range segments {
		syns, ok := byWord[segments[i].Text]
		if !ok {
			continue
		}
		if syns == nil {
			syns = []string{}
		}
		segments[i].Synonyms = append([]string(nil), syns...)
	}
}
