package service

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"textvault/internal/apperr"
	"textvault/internal/model"
	"textvault/internal/repository"
)

// FolderDeleteResult reports how many documents lost a membership when a
// folder was removed. The documents themselves are untouched.
type FolderDeleteResult struct {
	DocumentsMoved int `json:"documents_moved"`
}

// FolderService defines the use cases for organizing documents into folders.
type FolderService interface {
	// Create adds a folder for the owner. Names are unique per owner,
	// compared case-sensitively.
	Create(ctx context.Context, ownerID int64, name string) (*model.Folder, error)

	// List returns the owner's folders, oldest first.
	List(ctx context.Context, ownerID int64) ([]model.Folder, error)

	// Delete removes the folder and detaches all member documents, returning
	// the detachment count.
	Delete(ctx context.Context, ownerID, id int64) (*FolderDeleteResult, error)
}

type folderService struct {
	repo repository.FolderRepository
}

// NewFolderService constructs a new FolderService.
func NewFolderService(repo repository.FolderRepository) FolderService {
	return &folderService{repo: repo}
}

func (s *folderService) Create(ctx context.Context, ownerID int64, name string) (*model.Folder, error) {
	name = strings.TrimSpace(name)
	if err := validation.Validate(name,
		validation.Required,
		validation.RuneLength(1, 255),
	); err != nil {
		return nil, fmt.Errorf("folder name: %v: %w", err, apperr.ErrInvalidInput)
	}

	return s.repo.Create(ctx, &model.Folder{OwnerID: ownerID, Name: name})
}

func (s *folderService) List(ctx context.Context, ownerID int64) ([]model.Folder, error) {
	return s.repo.List(ctx, ownerID)
}

func (s *folderService) Delete(ctx context.Context, ownerID, id int64) (*FolderDeleteResult, error) {
	moved, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return &FolderDeleteResult{DocumentsMoved: moved}, nil
}
