package domain

// TranslationResult is the evolving record produced by the translation
// pipeline for a single query. Stage 1 creates it with only the coarse
// fields set; Stage 2 patches in segments and the example pair; Stage 3
// patches synonyms into segments.
type TranslationResult struct {
	OriginalText    string
	TranslatedText  string
	Transliteration string
	Segments        []Segment
	ExampleThai     string
	ExampleEnglish  string
}

// Segment is one word-level unit of the analyzed input.
// Synonyms == nil means "not yet enriched"; an empty non-nil slice means
// the enrichment ran and found nothing.
type Segment struct {
	Text            string
	Transliteration string
	Gloss           string
	PartOfSpeech    PartOfSpeech
	Synonyms        []string
}

// Clone returns a deep copy of the result. The pipeline hands clones to
// observers so published snapshots can never alias orchestrator-owned state.
func (r *TranslationResult) Clone() *TranslationResult {
	if r == nil {
		return nil
	}
	out := *r
	if r.Segments != nil {
		out.Segments = make([]Segment, len(r.Segments))
		for i, seg := range r.Segments {
			out.Segments[i] = seg
			if seg.Synonyms != nil {
				out.Segments[i].Synonyms = append([]string(nil), seg.Synonyms...)
			}
		}
	}
	return &out
}
