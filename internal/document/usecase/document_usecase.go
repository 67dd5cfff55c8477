package usecase

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"lawdesk-backend/internal/apperr"
	"lawdesk-backend/internal/document/domain"
	"lawdesk-backend/internal/document/repository"
	"lawdesk-backend/pkg/blob"
)

// documentUsecase implements DocumentUsecase interface
type documentUsecase struct {
	docRepo repository.DocumentRepository
	blobs   blob.Store
	logger  *zap.SugaredLogger
}

// NewDocumentUsecase creates a new instance of documentUsecase
func NewDocumentUsecase(docRepo repository.DocumentRepository, blobs blob.Store, logger *zap.SugaredLogger) DocumentUsecase {
	return &documentUsecase{
		docRepo: docRepo,
		blobs:   blobs,
		logger:  logger,
	}
}

func (u *documentUsecase) List(folderID string) ([]domain.Document, error) {
	parent := parentRef(folderID)

	folders, err := u.docRepo.ListByParent(parent, domain.KindFolder)
	if err != nil {
		return nil, err
	}
	files, err := u.docRepo.ListByParent(parent, domain.KindFile)
	if err != nil {
		return nil, err
	}

	// Folders are presented before files
	return append(folders, files...), nil
}

func (u *documentUsecase) CreateFolder(name, parentID string) (*domain.Document, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperr.ErrEmptyName
	}

	parent := parentRef(parentID)
	if err := u.checkParent(parent); err != nil {
		return nil, err
	}

	folder := domain.NewFolder(trimmed, parent)
	if err := u.docRepo.Create(folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (u *documentUsecase) Upload(name, parentID, mimeType string, r io.Reader) (*domain.Document, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperr.ErrEmptyName
	}

	parent := parentRef(parentID)
	if err := u.checkParent(parent); err != nil {
		return nil, err
	}

	key, size, err := u.blobs.Write(r)
	if err != nil {
		return nil, err
	}

	file := domain.NewFile(trimmed, parent, mimeType, size, key)
	file.ID = key
	if err := u.docRepo.Create(file); err != nil {
		// Orphaned blob cleanup; the metadata record is authoritative
		if derr := u.blobs.Delete(key); derr != nil {
			u.logger.Warnw("failed to remove blob after create error", "key", key, "error", derr)
		}
		return nil, err
	}
	return file, nil
}

func (u *documentUsecase) RenameFolder(id, name string) (*domain.Document, error) {
	return u.rename(id, name, domain.KindFolder)
}

func (u *documentUsecase) RenameFile(id, name string) (*domain.Document, error) {
	return u.rename(id, name, domain.KindFile)
}

func (u *documentUsecase) rename(id, name string, kind domain.Kind) (*domain.Document, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, apperr.ErrEmptyName
	}

	doc, err := u.docRepo.FindByID(id, kind)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperr.ErrNotFound
	}
	return u.docRepo.Rename(doc, trimmed)
}

func (u *documentUsecase) DeleteFolder(id string) error {
	folder, err := u.docRepo.FindByID(id, domain.KindFolder)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperr.ErrNotFound
	}
	return u.docRepo.DeleteFolderIfEmpty(id)
}

func (u *documentUsecase) DeleteFile(id string) error {
	file, err := u.docRepo.FindByID(id, domain.KindFile)
	if err != nil {
		return err
	}
	if file == nil {
		return apperr.ErrNotFound
	}

	if err := u.docRepo.Delete(id); err != nil {
		return err
	}

	// Physical bytes removal is best-effort; metadata deletion already won
	if file.StoragePath != "" {
		if err := u.blobs.Delete(file.StoragePath); err != nil {
			u.logger.Warnw("failed to delete blob", "key", file.StoragePath, "error", err)
		}
	}
	return nil
}

func (u *documentUsecase) GetFile(id string) (*domain.Document, error) {
	file, err := u.docRepo.FindByID(id, domain.KindFile)
	if err != nil {
		return nil, err
	}
	if file == nil || file.StoragePath == "" {
		return nil, apperr.ErrNotFound
	}
	return file, nil
}

func (u *documentUsecase) OpenContent(doc *domain.Document) (io.ReadCloser, error) {
	return u.blobs.Open(doc.StoragePath)
}

// checkParent rejects orphan creates: a non-root parent must name an
// existing folder node.
func (u *documentUsecase) checkParent(parent *string) error {
	if parent == nil {
		return nil
	}
	folder, err := u.docRepo.FindByID(*parent, domain.KindFolder)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperr.ErrInvalidParent
	}
	return nil
}

func parentRef(folderID string) *string {
	if folderID == "" || folderID == RootFolderID {
		return nil
	}
	return &folderID
}
