package gemini

import (
	"fmt"
	"strings"
)

const coarsePromptTemplate = `Translate the following Thai text to English.
Respond with JSON only, in exactly this shape:
{"translatedText": "<english translation>", "transliteration": "<romanized thai>"}

Thai text: %s`

const analysisPromptTemplate = `You are a Thai linguistics assistant. The Thai text %q translates to English as %q.
Break the Thai text into word-level segments. For each segment give its romanized transliteration, its English gloss, and its part of speech (one of: noun, verb, adjective, adverb, pronoun, preposition, conjunction, interjection, classifier, particle, other).
Also provide one natural example sentence using the text, in Thai and in English.
Respond with JSON only, in exactly this shape:
{"segments": [{"text": "...", "transliteration": "...", "gloss": "...", "partOfSpeech": "..."}], "exampleThai": "...", "exampleEnglish": "..."}`

const synonymsPromptTemplate = `For each of the following Thai words, list up to 3 common Thai synonyms. Omit words that have no common synonyms.
Respond with JSON only, in exactly this shape:
{"entries": [{"word": "...", "synonyms": ["...", "..."]}]}

Words: %s`

func coarsePrompt(text string) string {
	return fmt.Sprintf(coarsePromptTemplate, text)
}

func analysisPrompt(original, translated string) string {
	return fmt.Sprintf(analysisPromptTemplate, original, translated)
}

func synonymsPrompt(words []string) string {
	return fmt.Sprintf(synonymsPromptTemplate, strings.Join(words, ", "))
}
