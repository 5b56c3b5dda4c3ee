package provider

import "github.com/heartmarshall/thaivocab-backend/internal/domain"

// CoarseResult is the structured result of a fast translation lookup:
// the whole-phrase gloss plus a romanized transliteration.
type CoarseResult struct {
	TranslatedText  string
	Transliteration string
}

// AnalysisResult is the structured result of a deep linguistic analysis:
// a word-level segmentation plus one example sentence pair.
// Segments carry no synonyms at this point.
type AnalysisResult struct {
	Segments       []domain.Segment
	ExampleThai    string
	ExampleEnglish string
}

// SynonymEntry holds up to a few synonyms for one source-language word.
type SynonymEntry struct {
	Word     string
	Synonyms []string
}
