package impex

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// Export serializes every folder and its cards into the JSON export format.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	var (
		folders []domain.Folder
		cards   []domain.Flashcard
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		folders, err = s.folders.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("list folders: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		cards, err = s.cards.List(gctx, flashcard.ListFilter{})
		if err != nil {
			return fmt.Errorf("list cards: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(cards) > s.cfg.ExportMaxCards {
		return nil, domain.NewValidationError("cards",
			fmt.Sprintf("too many cards to export (max %d)", s.cfg.ExportMaxCards))
	}

	cardsByFolderID := make(map[uuid.UUID][]ExportCard, len(folders))
	for _, c := range cards {
		cardsByFolderID[c.FolderID] = append(cardsByFolderID[c.FolderID], ExportCard{
			FrontText:       c.FrontText,
			BackText:        c.BackText,
			Transliteration: c.Transliteration,
		})
	}

	doc := ExportDocument{
		Version:    documentVersion,
		ExportedAt: time.Now().UTC(),
		Folders:    make([]ExportFolder, 0, len(folders)),
	}
	for _, f := range folders {
		exportCards := cardsByFolderID[f.ID]
		if exportCards == nil {
			exportCards = []ExportCard{}
		}
		doc.Folders = append(doc.Folders, ExportFolder{
			Name:  f.Name,
			Cards: exportCards,
		})
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal export document: %w", err)
	}

	s.log.InfoContext(ctx, "library exported",
		"folders", len(doc.Folders),
		"cards", len(cards),
	)

	return jsonBytes, nil
}
