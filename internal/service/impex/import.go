package impex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// Import reads an export document and recreates its folders and cards.
// Folders are matched by name; existing folders are reused. Cards whose
// normalized front already exists in the target folder are skipped, so
// importing the same document twice is a no-op for the second run.
func (s *Service) Import(ctx context.Context, data []byte) (ImportReport, error) {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return ImportReport{}, domain.NewValidationError("document", "invalid JSON: "+err.Error())
	}
	if doc.Version != documentVersion {
		return ImportReport{}, domain.NewValidationError("version",
			fmt.Sprintf("unsupported version %d (want %d)", doc.Version, documentVersion))
	}

	existing, err := s.folders.ListAll(ctx)
	if err != nil {
		return ImportReport{}, fmt.Errorf("list folders: %w", err)
	}
	folderIDByName := make(map[string]uuid.UUID, len(existing))
	for _, f := range existing {
		folderIDByName[f.Name] = f.ID
	}

	var report ImportReport
	for _, ef := range doc.Folders {
		name := strings.TrimSpace(ef.Name)
		if name == "" {
			return report, domain.NewValidationError("folders", "folder with empty name")
		}

		folderID, ok := folderIDByName[name]
		if !ok {
			folder, err := s.folders.Create(ctx, name)
			if err != nil {
				return report, fmt.Errorf("create folder %q: %w", name, err)
			}
			folderID = folder.ID
			folderIDByName[name] = folderID
			report.FoldersCreated++
		}

		if err := s.importCards(ctx, folderID, ef.Cards, &report); err != nil {
			return report, fmt.Errorf("folder %q: %w", name, err)
		}
	}

	s.log.InfoContext(ctx, "library imported",
		slog.Int("folders_created", report.FoldersCreated),
		slog.Int("cards_imported", report.CardsImported),
		slog.Int("cards_skipped", report.CardsSkipped),
	)

	return report, nil
}

// importCards inserts cards in chunks, one transaction per chunk, so a late
// failure does not roll back everything already imported.
func (s *Service) importCards(ctx context.Context, folderID uuid.UUID, cards []ExportCard, report *ImportReport) error {
	chunkSize := s.cfg.ImportChunkSize
	if chunkSize <= 0 {
		chunkSize = len(cards)
	}

	for start := 0; start < len(cards); start += chunkSize {
		end := start + chunkSize
		if end > len(cards) {
			end = len(cards)
		}
		chunk := cards[start:end]

		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			for _, ec := range chunk {
				front := strings.TrimSpace(ec.FrontText)
				back := strings.TrimSpace(ec.BackText)
				if front == "" || back == "" {
					report.skip(fmt.Sprintf("%q: empty front or back text", ec.FrontText))
					continue
				}
				normalized := domain.NormalizeText(front)

				// Duplicates are detected with a SELECT rather than by
				// catching the unique violation: a violation would abort
				// the whole chunk's transaction.
				_, err := s.cards.GetByNormalizedFront(txCtx, folderID, normalized)
				if err == nil {
					report.skip(fmt.Sprintf("%q: already exists in folder", front))
					continue
				}
				if !errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("check duplicate %q: %w", front, err)
				}

				_, err = s.cards.Create(txCtx, domain.Flashcard{
					FolderID:        folderID,
					FrontText:       front,
					FrontNormalized: normalized,
					BackText:        back,
					Transliteration: ec.Transliteration,
				})
				if err != nil {
					return fmt.Errorf("create card %q: %w", front, err)
				}
				report.CardsImported++
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
