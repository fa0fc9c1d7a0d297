package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"reborn_api/internal/domain/entities"
	mock_interfaces "reborn_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type birthCertificateMocks struct {
	reborns   *mock_interfaces.MockIRebornRepository
	templates *mock_interfaces.MockIDocumentTemplateRepository
	documents *mock_interfaces.MockIDocumentRepository
	generator *mock_interfaces.MockICertificateGenerator
	storage   *mock_interfaces.MockIFileStorage
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newBirthCertificateUseCaseForTest(ctrl *gomock.Controller, withStorage bool) (*BirthCertificateUseCase, birthCertificateMocks) {
	m := birthCertificateMocks{
		reborns:   mock_interfaces.NewMockIRebornRepository(ctrl),
		templates: mock_interfaces.NewMockIDocumentTemplateRepository(ctrl),
		documents: mock_interfaces.NewMockIDocumentRepository(ctrl),
		generator: mock_interfaces.NewMockICertificateGenerator(ctrl),
		storage:   mock_interfaces.NewMockIFileStorage(ctrl),
	}
	var uc *BirthCertificateUseCase
	if withStorage {
		uc = NewBirthCertificateUseCase(m.reborns, m.templates, m.documents, m.generator, m.storage, nil)
	} else {
		uc = NewBirthCertificateUseCase(m.reborns, m.templates, m.documents, m.generator, nil, nil)
	}
	uc.now = func() time.Time { return fixedNow }
	uc.newID = func() string { return "doc-1" }
	return uc, m
}

func testReborn() entities.Reborn {
	return entities.Reborn{
		ID:        "reborn-1",
		UserID:    "user-1",
		Name:      "Maria Clara",
		BirthDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Weight:    2500,
		Height:    50,
	}
}

func testTemplate() entities.DocumentTemplate {
	return entities.DocumentTemplate{
		ID:       "tpl-1",
		Name:     "Template Rosa Clássico",
		Type:     entities.DocumentTypeBirthCertificate,
		Width:    800,
		Height:   600,
		Palette:  entities.PalettePink,
		IsActive: true,
	}
}

func pngInput() GenerateBirthCertificateInput {
	return GenerateBirthCertificateInput{TemplateID: "tpl-1", Format: entities.DocumentFormatPNG}
}

func TestBirthCertificateUseCase_Validation(t *testing.T) {
	cases := []struct {
		name     string
		userID   string
		rebornID string
		in       GenerateBirthCertificateInput
		want     error
	}{
		{name: "blank user", userID: " ", rebornID: "reborn-1", in: pngInput(), want: ErrInvalidUserID},
		{name: "blank reborn", userID: "user-1", rebornID: "", in: pngInput(), want: ErrInvalidRebornID},
		{name: "blank template", userID: "user-1", rebornID: "reborn-1", in: GenerateBirthCertificateInput{Format: entities.DocumentFormatPNG}, want: ErrInvalidTemplateID},
		{name: "unknown format", userID: "user-1", rebornID: "reborn-1", in: GenerateBirthCertificateInput{TemplateID: "tpl-1", Format: "gif"}, want: ErrInvalidDocumentFormat},
		{name: "pdf is explicit gap", userID: "user-1", rebornID: "reborn-1", in: GenerateBirthCertificateInput{TemplateID: "tpl-1", Format: entities.DocumentFormatPDF}, want: entities.ErrUnsupportedFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, _ := newBirthCertificateUseCaseForTest(ctrl, false)

			_, err := uc.GenerateBirthCertificate(context.Background(), tc.userID, tc.rebornID, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBirthCertificateUseCase_NotFound(t *testing.T) {
	t.Run("reborn missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, false)
		m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(entities.Reborn{}, nil)

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if !errors.Is(err, ErrNotFound) || err.Error() != "subject not found" {
			t.Fatalf("expected subject not found, got %v", err)
		}
		if NotFoundReasonOf(err) != ReasonMissing {
			t.Fatalf("expected missing reason, got %q", NotFoundReasonOf(err))
		}
	})

	t.Run("reborn of another user never creates a document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, false)
		r := testReborn()
		r.UserID = "someone-else"
		m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(r, nil)
		m.documents.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if !errors.Is(err, ErrNotFound) || err.Error() != "subject not found" {
			t.Fatalf("expected subject not found, got %v", err)
		}
		if NotFoundReasonOf(err) != ReasonNotOwned {
			t.Fatalf("expected not owned reason, got %q", NotFoundReasonOf(err))
		}
	})

	templateCases := []struct {
		name   string
		tpl    entities.DocumentTemplate
		reason NotFoundReason
	}{
		{name: "template missing", tpl: entities.DocumentTemplate{}, reason: ReasonMissing},
		{name: "template wrong type", tpl: func() entities.DocumentTemplate {
			tpl := testTemplate()
			tpl.Type = "diploma"
			return tpl
		}(), reason: ReasonWrongType},
		{name: "template inactive", tpl: func() entities.DocumentTemplate {
			tpl := testTemplate()
			tpl.IsActive = false
			return tpl
		}(), reason: ReasonInactive},
	}
	for _, tc := range templateCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newBirthCertificateUseCaseForTest(ctrl, false)
			m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(testReborn(), nil)
			m.templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(tc.tpl, nil)
			m.documents.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
			if !errors.Is(err, ErrNotFound) || err.Error() != "template not found" {
				t.Fatalf("expected template not found, got %v", err)
			}
			if NotFoundReasonOf(err) != tc.reason {
				t.Fatalf("expected reason %q, got %q", tc.reason, NotFoundReasonOf(err))
			}
		})
	}

	t.Run("repository errors propagate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, false)
		m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(testReborn(), nil)
		m.templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(entities.DocumentTemplate{}, errors.New("db"))

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBirthCertificateUseCase_Success(t *testing.T) {
	file := entities.GeneratedFile{
		Buffer:      []byte("png-bytes"),
		FileName:    "certidao_nascimento_Maria_Clara_1709294400000.png",
		ContentType: "image/png",
	}

	t.Run("two writes and ready document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, false)

		in := pngInput()
		in.Fields = entities.CertificateFields{Hospital: "Hospital Central", City: "  "}

		m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(testReborn(), nil)
		m.templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(testTemplate(), nil)
		gomock.InOrder(
			m.documents.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
				func(_ context.Context, d entities.Document) (entities.Document, error) {
					if d.ID != "doc-1" || d.Status != entities.DocumentStatusProcessing || d.FileURL != "" {
						t.Fatalf("unexpected created document: %+v", d)
					}
					if d.UserID != "user-1" || d.RebornID != "reborn-1" || d.Type != entities.DocumentTypeBirthCertificate {
						t.Fatalf("unexpected ownership fields: %+v", d)
					}
					if d.TemplateData[DataTemplateID] != "tpl-1" || d.TemplateData[DataHospital] != "Hospital Central" || d.TemplateData[DataFormat] != "png" {
						t.Fatalf("unexpected template data: %+v", d.TemplateData)
					}
					if _, ok := d.TemplateData[DataCity]; ok {
						t.Fatalf("blank custom fields must not be stored: %+v", d.TemplateData)
					}
					return d, nil
				},
			),
			m.generator.EXPECT().Generate(gomock.Any(), testTemplate(), testReborn(), in.Fields, entities.DocumentFormatPNG).Return(file, nil),
			m.documents.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
				func(_ context.Context, d entities.Document) (entities.Document, error) {
					if d.Status != entities.DocumentStatusReady {
						t.Fatalf("expected ready, got %s", d.Status)
					}
					return d, nil
				},
			),
		)

		res, err := uc.GenerateBirthCertificate(context.Background(), " user-1 ", " reborn-1 ", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "/documents/doc-1/" + file.FileName
		if res.Document.FileURL != want {
			t.Fatalf("expected file url %s got %s", want, res.Document.FileURL)
		}
		if res.Document.Status != entities.DocumentStatusReady {
			t.Fatalf("expected ready document, got %s", res.Document.Status)
		}
		if string(res.File.Buffer) != "png-bytes" || res.File.FileName != file.FileName {
			t.Fatalf("unexpected file: %+v", res.File)
		}
	})

	t.Run("uploads bytes when storage is configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, true)

		m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(testReborn(), nil)
		m.templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(testTemplate(), nil)
		m.documents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) { return d, nil },
		)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(file, nil)
		m.storage.EXPECT().Upload(gomock.Any(), "documents/doc-1/"+file.FileName, gomock.Any(), int64(len(file.Buffer)), "image/png").DoAndReturn(
			func(_ context.Context, name string, r io.Reader, _ int64, _ string) (string, error) {
				b, _ := io.ReadAll(r)
				if string(b) != "png-bytes" {
					t.Fatalf("unexpected uploaded bytes: %q", b)
				}
				return name, nil
			},
		)
		m.documents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) { return d, nil },
		)

		res, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(res.Document.FileURL, "/documents/doc-1/") {
			t.Fatalf("unexpected file url: %s", res.Document.FileURL)
		}
	})
}

func TestBirthCertificateUseCase_Failure(t *testing.T) {
	expectUntilCreate := func(m birthCertificateMocks) {
		m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(testReborn(), nil)
		m.templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(testTemplate(), nil)
		m.documents.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) { return d, nil },
		)
	}
	expectFailedUpdate := func(t *testing.T, m birthCertificateMocks, updateErr error) {
		m.documents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Status != entities.DocumentStatusFailed || d.FileURL != "" {
					t.Fatalf("expected failed document without file, got %+v", d)
				}
				return d, updateErr
			},
		)
	}

	t.Run("render failure marks failed and returns original error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, false)
		renderErr := errors.New("encode failed")

		expectUntilCreate(m)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.GeneratedFile{}, renderErr)
		expectFailedUpdate(t, m, nil)

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err != renderErr {
			t.Fatalf("expected original error unchanged, got %v", err)
		}
	})

	t.Run("upload failure marks failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, true)
		uploadErr := errors.New("minio down")

		expectUntilCreate(m)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.GeneratedFile{Buffer: []byte("x"), FileName: "f.png", ContentType: "image/png"}, nil)
		m.storage.EXPECT().Upload(gomock.Any(), "documents/doc-1/f.png", gomock.Any(), int64(1), "image/png").Return("", uploadErr)
		expectFailedUpdate(t, m, nil)

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err != uploadErr {
			t.Fatalf("expected upload error, got %v", err)
		}
	})

	t.Run("ready write failure removes the uploaded file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, true)
		updateErr := errors.New("dynamo down")

		expectUntilCreate(m)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.GeneratedFile{Buffer: []byte("x"), FileName: "f.png", ContentType: "image/png"}, nil)
		m.storage.EXPECT().Upload(gomock.Any(), "documents/doc-1/f.png", gomock.Any(), int64(1), "image/png").Return("documents/doc-1/f.png", nil)
		gomock.InOrder(
			m.documents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, d entities.Document) (entities.Document, error) {
					if d.Status != entities.DocumentStatusReady {
						t.Fatalf("expected ready write first, got %s", d.Status)
					}
					return entities.Document{}, updateErr
				},
			),
			m.storage.EXPECT().Delete(gomock.Any(), "documents/doc-1/f.png").Return(nil),
		)
		expectFailedUpdate(t, m, nil)

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err != updateErr {
			t.Fatalf("expected update error, got %v", err)
		}
	})

	t.Run("file removal error is only logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, true)
		updateErr := errors.New("dynamo down")

		expectUntilCreate(m)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.GeneratedFile{Buffer: []byte("x"), FileName: "f.png", ContentType: "image/png"}, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("documents/doc-1/f.png", nil)
		m.documents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Document{}, updateErr)
		m.storage.EXPECT().Delete(gomock.Any(), "documents/doc-1/f.png").Return(errors.New("minio down"))
		expectFailedUpdate(t, m, nil)

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err != updateErr {
			t.Fatalf("expected update error, got %v", err)
		}
	})

	t.Run("upload failure does not remove anything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, true)

		expectUntilCreate(m)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.GeneratedFile{Buffer: []byte("x"), FileName: "f.png", ContentType: "image/png"}, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("minio down"))
		m.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)
		expectFailedUpdate(t, m, nil)

		if _, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput()); err == nil {
			t.Fatalf("expected upload error")
		}
	})

	t.Run("vanished row on ready write is a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, true)

		expectUntilCreate(m)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.GeneratedFile{Buffer: []byte("x"), FileName: "f.png", ContentType: "image/png"}, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("documents/doc-1/f.png", nil)
		gomock.InOrder(
			m.documents.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Document{}, nil),
			m.storage.EXPECT().Delete(gomock.Any(), "documents/doc-1/f.png").Return(nil),
			m.documents.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, d entities.Document) (entities.Document, error) {
					if d.Status != entities.DocumentStatusFailed {
						t.Fatalf("expected failed write, got %s", d.Status)
					}
					return entities.Document{}, nil
				},
			),
		)

		res, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if !errors.Is(err, ErrDocumentNotPersisted) {
			t.Fatalf("expected ErrDocumentNotPersisted, got %v", err)
		}
		if res.Document.ID != "" || res.File.Buffer != nil {
			t.Fatalf("expected empty result, got %+v", res)
		}
	})

	t.Run("failed persist error does not hide the cause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, false)
		renderErr := errors.New("font missing")

		expectUntilCreate(m)
		m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.GeneratedFile{}, renderErr)
		expectFailedUpdate(t, m, errors.New("dynamo down"))

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err != renderErr {
			t.Fatalf("expected render error, got %v", err)
		}
	})

	t.Run("create failure returns without failed write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newBirthCertificateUseCaseForTest(ctrl, false)

		m.reborns.EXPECT().GetByID(gomock.Any(), "reborn-1").Return(testReborn(), nil)
		m.templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(testTemplate(), nil)
		m.documents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Document{}, errors.New("db"))
		m.documents.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.GenerateBirthCertificate(context.Background(), "user-1", "reborn-1", pngInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
