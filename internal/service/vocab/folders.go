package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// CreateFolder creates a new folder.
func (s *Service) CreateFolder(ctx context.Context, input CreateFolderInput) (domain.Folder, error) {
	if err := input.Validate(); err != nil {
		return domain.Folder{}, err
	}

	name := strings.TrimSpace(input.Name)

	existing, err := s.folders.ListAll(ctx)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("list folders: %w", err)
	}
	if len(existing) >= s.cfg.MaxFolders {
		return domain.Folder{}, domain.NewValidationError("folders",
			fmt.Sprintf("limit reached (max %d)", s.cfg.MaxFolders))
	}

	folder, err := s.folders.Create(ctx, name)
	if err != nil {
		return domain.Folder{}, fmt.Errorf("create folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder created",
		slog.String("folder_id", folder.ID.String()),
		slog.String("name", name),
	)

	return folder, nil
}

// GetFolder returns a folder with its card count.
func (s *Service) GetFolder(ctx context.Context, folderID uuid.UUID) (domain.Folder, error) {
	if folderID == uuid.Nil {
		return domain.Folder{}, domain.NewValidationError("folder_id", "required")
	}
	return s.folders.GetByID(ctx, folderID)
}

// ListFolders returns all folders ordered by name.
func (s *Service) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	return s.folders.ListAll(ctx)
}

// RenameFolder changes a folder's name.
func (s *Service) RenameFolder(ctx context.Context, input RenameFolderInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	name := strings.TrimSpace(input.Name)
	if err := s.folders.Rename(ctx, input.FolderID, name); err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder renamed",
		slog.String("folder_id", input.FolderID.String()),
		slog.String("name", name),
	)

	return nil
}

// DeleteFolder removes a folder and every flashcard in it.
func (s *Service) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	if folderID == uuid.Nil {
		return domain.NewValidationError("folder_id", "required")
	}

	if err := s.folders.Delete(ctx, folderID); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	s.log.InfoContext(ctx, "folder deleted",
		slog.String("folder_id", folderID.String()),
	)

	return nil
}
