package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidRebornID       = errors.New("invalid reborn id")
	ErrInvalidTemplateID     = errors.New("invalid template id")
	ErrInvalidDocumentFormat = errors.New("invalid document format")
)

// Keys stored in Document.TemplateData.
const (
	DataTemplateID         = "template_id"
	DataHospital           = "hospital"
	DataDoctor             = "doctor"
	DataRegistrationNumber = "registration_number"
	DataMotherName         = "mother_name"
	DataCity               = "city"
	DataState              = "state"
	DataFormat             = "format"
)

type GenerateBirthCertificateInput struct {
	TemplateID string
	Format     entities.DocumentFormat
	Fields     entities.CertificateFields
}

// BirthCertificateResult carries the persisted READY snapshot and the rendered bytes for
// immediate download.
type BirthCertificateResult struct {
	Document entities.Document
	File     entities.GeneratedFile
}

// IBirthCertificateUseCase generates birth certificates for reborns.
//
// Flow:
//   - reborn must exist and belong to the caller
//   - template must exist, be a birth certificate and be active
//   - document is persisted as processing, rendered, uploaded, then persisted as ready
//   - any failure after the first write persists the document as failed and returns the
//     original error

type IBirthCertificateUseCase interface {
	GenerateBirthCertificate(ctx context.Context, userID, rebornID string, in GenerateBirthCertificateInput) (BirthCertificateResult, error)
}

type BirthCertificateUseCase struct {
	reborns   interfaces.IRebornRepository
	templates interfaces.IDocumentTemplateRepository
	documents interfaces.IDocumentRepository
	generator interfaces.ICertificateGenerator
	storage   interfaces.IFileStorage
	log       *zap.Logger

	now   func() time.Time
	newID func() string
}

var _ IBirthCertificateUseCase = (*BirthCertificateUseCase)(nil)

// NewBirthCertificateUseCase wires the generation flow. storage may be nil, in which case the
// rendered bytes are only returned to the caller.
func NewBirthCertificateUseCase(
	reborns interfaces.IRebornRepository,
	templates interfaces.IDocumentTemplateRepository,
	documents interfaces.IDocumentRepository,
	generator interfaces.ICertificateGenerator,
	storage interfaces.IFileStorage,
	log *zap.Logger,
) *BirthCertificateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &BirthCertificateUseCase{
		reborns:   reborns,
		templates: templates,
		documents: documents,
		generator: generator,
		storage:   storage,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (u *BirthCertificateUseCase) GenerateBirthCertificate(ctx context.Context, userID, rebornID string, in GenerateBirthCertificateInput) (BirthCertificateResult, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return BirthCertificateResult{}, ErrInvalidUserID
	}
	rebornID = strings.TrimSpace(rebornID)
	if rebornID == "" {
		return BirthCertificateResult{}, ErrInvalidRebornID
	}
	in.TemplateID = strings.TrimSpace(in.TemplateID)
	if in.TemplateID == "" {
		return BirthCertificateResult{}, ErrInvalidTemplateID
	}
	switch in.Format {
	case entities.DocumentFormatPNG:
	case entities.DocumentFormatPDF:
		return BirthCertificateResult{}, entities.ErrUnsupportedFormat
	default:
		return BirthCertificateResult{}, ErrInvalidDocumentFormat
	}

	reborn, err := u.loadOwnedReborn(ctx, userID, rebornID)
	if err != nil {
		return BirthCertificateResult{}, err
	}
	tpl, err := u.loadUsableTemplate(ctx, userID, in.TemplateID)
	if err != nil {
		return BirthCertificateResult{}, err
	}

	now := u.now()
	processing, err := entities.NewDocument(u.newID(), userID, reborn.ID, entities.DocumentTypeBirthCertificate, buildTemplateData(in), now).
		StartProcessing(now)
	if err != nil {
		return BirthCertificateResult{}, err
	}
	if _, err := u.documents.Create(ctx, processing); err != nil {
		return BirthCertificateResult{}, err
	}

	result, uploaded, err := u.renderAndStore(ctx, processing, tpl, reborn, in)
	if err != nil {
		u.markFailed(ctx, processing, uploaded, err)
		return BirthCertificateResult{}, err
	}

	u.log.Info("birth certificate generated",
		zap.String("document_id", result.Document.ID),
		zap.String("reborn_id", reborn.ID),
		zap.String("user_id", userID),
		zap.String("template_id", tpl.ID),
		zap.String("file_name", result.File.FileName),
	)
	return result, nil
}

func (u *BirthCertificateUseCase) loadOwnedReborn(ctx context.Context, userID, rebornID string) (entities.Reborn, error) {
	reborn, err := u.reborns.GetByID(ctx, rebornID)
	if err != nil {
		return entities.Reborn{}, err
	}
	if reborn.ID == "" {
		return entities.Reborn{}, u.rejected(newNotFound(ResourceSubject, ReasonMissing), userID, rebornID)
	}
	if !reborn.BelongsToUser(userID) {
		return entities.Reborn{}, u.rejected(newNotFound(ResourceSubject, ReasonNotOwned), userID, rebornID)
	}
	return reborn, nil
}

func (u *BirthCertificateUseCase) loadUsableTemplate(ctx context.Context, userID, templateID string) (entities.DocumentTemplate, error) {
	tpl, err := u.templates.GetByID(ctx, templateID)
	if err != nil {
		return entities.DocumentTemplate{}, err
	}
	switch {
	case tpl.ID == "":
		return entities.DocumentTemplate{}, u.rejected(newNotFound(ResourceTemplate, ReasonMissing), userID, templateID)
	case !tpl.IsForType(entities.DocumentTypeBirthCertificate):
		return entities.DocumentTemplate{}, u.rejected(newNotFound(ResourceTemplate, ReasonWrongType), userID, templateID)
	case !tpl.IsAvailable():
		return entities.DocumentTemplate{}, u.rejected(newNotFound(ResourceTemplate, ReasonInactive), userID, templateID)
	}
	return tpl, nil
}

// renderAndStore returns the object name once the upload succeeded so a later failure can
// remove it.
func (u *BirthCertificateUseCase) renderAndStore(
	ctx context.Context,
	processing entities.Document,
	tpl entities.DocumentTemplate,
	reborn entities.Reborn,
	in GenerateBirthCertificateInput,
) (BirthCertificateResult, string, error) {
	file, err := u.generator.Generate(ctx, tpl, reborn, in.Fields, in.Format)
	if err != nil {
		return BirthCertificateResult{}, "", err
	}

	var uploaded string
	if u.storage != nil {
		objectName := DocumentObjectName(processing.ID, file.FileName)
		if _, err := u.storage.Upload(ctx, objectName, bytes.NewReader(file.Buffer), int64(len(file.Buffer)), file.ContentType); err != nil {
			return BirthCertificateResult{}, "", err
		}
		uploaded = objectName
	}

	ready, err := processing.MarkAsReady(DocumentFileURL(processing.ID, file.FileName), u.now())
	if err != nil {
		return BirthCertificateResult{}, uploaded, err
	}
	saved, err := u.documents.Update(ctx, ready)
	if err != nil {
		return BirthCertificateResult{}, uploaded, err
	}
	if saved.ID == "" {
		return BirthCertificateResult{}, uploaded, ErrDocumentNotPersisted
	}
	return BirthCertificateResult{Document: saved, File: file}, uploaded, nil
}

// markFailed persists the failed snapshot and removes an already uploaded file. Its own errors
// are logged so the caller always gets the original cause.
func (u *BirthCertificateUseCase) markFailed(ctx context.Context, processing entities.Document, uploaded string, cause error) {
	logger := u.log.With(zap.String("document_id", processing.ID), zap.String("reborn_id", processing.RebornID))
	logger.Error("birth certificate generation failed", zap.Error(cause))

	ctx = context.WithoutCancel(ctx)
	if uploaded != "" {
		if err := u.storage.Delete(ctx, uploaded); err != nil {
			logger.Error("cannot remove orphaned document file", zap.String("object", uploaded), zap.Error(err))
		}
	}

	failed, err := processing.MarkAsFailed(u.now())
	if err != nil {
		logger.Error("cannot mark document as failed", zap.Error(err))
		return
	}
	saved, err := u.documents.Update(ctx, failed)
	switch {
	case err != nil:
		logger.Error("cannot persist failed document", zap.Error(err))
	case saved.ID == "":
		logger.Error("cannot persist failed document", zap.Error(ErrDocumentNotPersisted))
	}
}

func (u *BirthCertificateUseCase) rejected(nf *NotFoundError, userID, id string) error {
	u.log.Info("birth certificate request rejected",
		zap.String("resource", nf.Resource),
		zap.String("reason", string(nf.Reason)),
		zap.String("resource_id", id),
		zap.String("user_id", userID),
	)
	return nf
}

func buildTemplateData(in GenerateBirthCertificateInput) map[string]string {
	data := map[string]string{
		DataTemplateID: in.TemplateID,
		DataFormat:     string(in.Format),
	}
	optional := map[string]string{
		DataHospital:           in.Fields.Hospital,
		DataDoctor:             in.Fields.Doctor,
		DataRegistrationNumber: in.Fields.RegistrationNumber,
		DataMotherName:         in.Fields.MotherName,
		DataCity:               in.Fields.City,
		DataState:              in.Fields.State,
	}
	for k, v := range optional {
		if strings.TrimSpace(v) != "" {
			data[k] = v
		}
	}
	return data
}

// DocumentFileURL is the public reference stored on a ready document.
func DocumentFileURL(documentID, fileName string) string {
	return fmt.Sprintf("/documents/%s/%s", documentID, fileName)
}

// DocumentObjectName is the object storage key of a document file.
func DocumentObjectName(documentID, fileName string) string {
	return fmt.Sprintf("documents/%s/%s", documentID, fileName)
}
