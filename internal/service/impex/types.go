package impex

import "time"

// documentVersion is the current export document format version.
const documentVersion = 1

// ExportDocument is the top-level JSON export format.
type ExportDocument struct {
	Version    int            `json:"version"`
	ExportedAt time.Time      `json:"exportedAt"`
	Folders    []ExportFolder `json:"folders"`
}

// ExportFolder is one folder with its cards.
type ExportFolder struct {
	Name  string       `json:"name"`
	Cards []ExportCard `json:"cards"`
}

// ExportCard is one flashcard in the export format. Timestamps and IDs are
// deliberately omitted; they are regenerated on import.
type ExportCard struct {
	FrontText       string  `json:"frontText"`
	BackText        string  `json:"backText"`
	Transliteration *string `json:"transliteration,omitempty"`
}

// ImportReport summarizes an import run. Skipped carries one short reason
// per skipped card, in document order.
type ImportReport struct {
	FoldersCreated int
	CardsImported  int
	CardsSkipped   int
	Skipped        []string
}

func (r *ImportReport) skip(reason string) {
	r.CardsSkipped++
	r.Skipped = append(r.Skipped, reason)
}
