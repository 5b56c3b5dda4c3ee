package gtranslate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/thaivocab-backend/internal/provider"
)

// The gtx endpoint returns a positional JSON array, not an object. The first
// element is a list of sentence chunks:
//
//	[[["Hello","สวัสดี",null,null,10],
//	  [null,null,null,"sawatdee"]], null, "th", ...]
//
// Translation rows carry the translated text at index 0; the trailing
// romanization row carries it at index 2 or 3 depending on direction.
func parseResponse(body []byte) (provider.CoarseResult, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return provider.CoarseResult{}, fmt.Errorf("decode json: %w", err)
	}
	if len(outer) == 0 {
		return provider.CoarseResult{}, fmt.Errorf("empty response array")
	}

	var chunks [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &chunks); err != nil {
		return provider.CoarseResult{}, fmt.Errorf("decode sentence chunks: %w", err)
	}

	var translated, translit strings.Builder
	for _, chunk := range chunks {
		if s := stringAt(chunk, 0); s != "" {
			translated.WriteString(s)
			continue
		}
		// Romanization row: the text sits at index 2 or 3.
		if s := stringAt(chunk, 3); s != "" {
			translit.WriteString(s)
		} else if s := stringAt(chunk, 2); s != "" {
			translit.WriteString(s)
		}
	}

	return provider.CoarseResult{
		TranslatedText:  strings.TrimSpace(translated.String()),
		Transliteration: strings.TrimSpace(translit.String()),
	}, nil
}

// stringAt decodes chunk[i] as a string, returning "" on null, absence, or
// non-string values.
func stringAt(chunk []json.RawMessage, i int) string {
	if i >= len(chunk) {
		return ""
	}
	var s string
	if err := json.Unmarshal(chunk[i], &s); err != nil {
		return ""
	}
	return s
}
