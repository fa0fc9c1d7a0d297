package usecase

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidDocumentID      = errors.New("invalid document id")
	ErrDocumentNotReady       = errors.New("document is not ready")
	ErrFileStorageUnavailable = errors.New("file storage is not configured")
	ErrDocumentNotPersisted   = errors.New("document no longer exists")
)

const pngContentType = "image/png"

// IDocumentUseCase exposes read access to generated documents and the stale-processing sweep.
//
// Every read is gated by ownership; foreign documents are reported as not found.

type IDocumentUseCase interface {
	GetDocument(ctx context.Context, userID, documentID string) (entities.Document, error)
	ListUserDocuments(ctx context.Context, userID string) ([]entities.Document, error)
	ListRebornDocuments(ctx context.Context, userID, rebornID string) ([]entities.Document, error)
	DownloadDocument(ctx context.Context, userID, documentID string) (entities.GeneratedFile, error)
	SweepStaleDocuments(ctx context.Context, olderThan time.Time) (int, error)
}

type DocumentUseCase struct {
	documents interfaces.IDocumentRepository
	reborns   interfaces.IRebornRepository
	storage   interfaces.IFileStorage
	log       *zap.Logger

	now func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	documents interfaces.IDocumentRepository,
	reborns interfaces.IRebornRepository,
	storage interfaces.IFileStorage,
	log *zap.Logger,
) *DocumentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentUseCase{
		documents: documents,
		reborns:   reborns,
		storage:   storage,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *DocumentUseCase) GetDocument(ctx context.Context, userID, documentID string) (entities.Document, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Document{}, ErrInvalidUserID
	}
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	d, err := u.documents.GetByID(ctx, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, newNotFound(ResourceDocument, ReasonMissing)
	}
	if !d.BelongsToUser(userID) {
		return entities.Document{}, newNotFound(ResourceDocument, ReasonNotOwned)
	}
	return d, nil
}

func (u *DocumentUseCase) ListUserDocuments(ctx context.Context, userID string) ([]entities.Document, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.documents.ListByUserID(ctx, userID)
}

func (u *DocumentUseCase) ListRebornDocuments(ctx context.Context, userID, rebornID string) ([]entities.Document, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	rebornID = strings.TrimSpace(rebornID)
	if rebornID == "" {
		return nil, ErrInvalidRebornID
	}

	r, err := u.reborns.GetByID(ctx, rebornID)
	if err != nil {
		return nil, err
	}
	if r.ID == "" {
		return nil, newNotFound(ResourceSubject, ReasonMissing)
	}
	if !r.BelongsToUser(userID) {
		return nil, newNotFound(ResourceSubject, ReasonNotOwned)
	}

	docs, err := u.documents.ListByRebornID(ctx, rebornID)
	if err != nil {
		return nil, err
	}
	owned := make([]entities.Document, 0, len(docs))
	for _, d := range docs {
		if d.BelongsToUser(userID) {
			owned = append(owned, d)
		}
	}
	return owned, nil
}

// DownloadDocument reads the stored bytes of a ready document back from object storage.
func (u *DocumentUseCase) DownloadDocument(ctx context.Context, userID, documentID string) (entities.GeneratedFile, error) {
	d, err := u.GetDocument(ctx, userID, documentID)
	if err != nil {
		return entities.GeneratedFile{}, err
	}
	if !d.IsReady() || d.FileURL == "" {
		return entities.GeneratedFile{}, ErrDocumentNotReady
	}
	if u.storage == nil {
		return entities.GeneratedFile{}, ErrFileStorageUnavailable
	}

	fileName := path.Base(d.FileURL)
	data, err := u.storage.Download(ctx, DocumentObjectName(d.ID, fileName))
	if err != nil {
		return entities.GeneratedFile{}, err
	}
	return entities.GeneratedFile{Buffer: data, FileName: fileName, ContentType: pngContentType}, nil
}

// SweepStaleDocuments fails documents stuck in processing since before olderThan. It keeps
// going after a single document fails and reports every error joined.
func (u *DocumentUseCase) SweepStaleDocuments(ctx context.Context, olderThan time.Time) (int, error) {
	processing, err := u.documents.ListByStatus(ctx, entities.DocumentStatusProcessing)
	if err != nil {
		return 0, err
	}

	var (
		swept int
		errs  []error
	)
	for _, d := range processing {
		if !d.UpdatedAt.Before(olderThan) {
			continue
		}
		failed, err := d.MarkAsFailed(u.now())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		saved, err := u.documents.Update(ctx, failed)
		if err != nil {
			u.log.Error("cannot fail stale document", zap.String("document_id", d.ID), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		if saved.ID == "" {
			u.log.Warn("stale document disappeared before it could be failed", zap.String("document_id", d.ID))
			continue
		}
		u.log.Warn("stale processing document marked as failed",
			zap.String("document_id", d.ID),
			zap.Time("updated_at", d.UpdatedAt),
		)
		swept++
	}
	return swept, errors.Join(errs...)
}
