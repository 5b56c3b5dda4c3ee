package domain

// PipelineState represents the observable state of the translation pipeline.
type PipelineState string

const (
	PipelineStateIdle           PipelineState = "IDLE"
	PipelineStateLoading        PipelineState = "LOADING"
	PipelineStatePartialSuccess PipelineState = "PARTIAL_SUCCESS"
	PipelineStateSuccess        PipelineState = "SUCCESS"
	PipelineStateError          PipelineState = "ERROR"
)

func (s PipelineState) String() string { return string(s) }

func (s PipelineState) IsValid() bool {
	switch s {
	case PipelineStateIdle, PipelineStateLoading, PipelineStatePartialSuccess,
		PipelineStateSuccess, PipelineStateError:
		return true
	}
	return false
}

// HasResult reports whether a non-nil TranslationResult may exist in this
// state. A result is published only in PARTIAL_SUCCESS and SUCCESS.
func (s PipelineState) HasResult() bool {
	return s == PipelineStatePartialSuccess || s == PipelineStateSuccess
}

// PartOfSpeech represents the grammatical category of a segment.
// The set covers Thai-specific categories (classifiers, final particles)
// on top of the usual ones.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechClassifier   PartOfSpeech = "CLASSIFIER"
	PartOfSpeechParticle     PartOfSpeech = "PARTICLE"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective,
		PartOfSpeechAdverb, PartOfSpeechPronoun, PartOfSpeechPreposition,
		PartOfSpeechConjunction, PartOfSpeechInterjection,
		PartOfSpeechClassifier, PartOfSpeechParticle, PartOfSpeechOther:
		return true
	}
	return false
}

// ParsePartOfSpeech maps free-form provider output ("noun", "Verb", "adj")
// to a PartOfSpeech, defaulting to OTHER.
func ParsePartOfSpeech(s string) PartOfSpeech {
	switch NormalizeText(s) {
	case "noun":
		return PartOfSpeechNoun
	case "verb":
		return PartOfSpeechVerb
	case "adjective", "adj":
		return PartOfSpeechAdjective
	case "adverb", "adv":
		return PartOfSpeechAdverb
	case "pronoun":
		return PartOfSpeechPronoun
	case "preposition":
		return PartOfSpeechPreposition
	case "conjunction":
		return PartOfSpeechConjunction
	case "interjection":
		return PartOfSpeechInterjection
	case "classifier":
		return PartOfSpeechClassifier
	case "particle":
		return PartOfSpeechParticle
	default:
		return PartOfSpeechOther
	}
}
