package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"reborn_api/internal/adapter/http/dto/response"
	"reborn_api/internal/adapter/http/handlers/mocks"
	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type documentHandlerDeps struct {
	certificates *mocks.MockIBirthCertificateUseCase
	templates    *mocks.MockITemplateUseCase
	documents    *mocks.MockIDocumentUseCase
	router       *gin.Engine
}

func newDocumentRouter(t *testing.T) documentHandlerDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	d := documentHandlerDeps{
		certificates: mocks.NewMockIBirthCertificateUseCase(ctrl),
		templates:    mocks.NewMockITemplateUseCase(ctrl),
		documents:    mocks.NewMockIDocumentUseCase(ctrl),
		router:       gin.New(),
	}
	h := NewDocumentHandler(d.certificates, d.templates, d.documents)

	v1 := d.router.Group("/v1", asUser("user-1"))
	v1.GET("/documents/templates", h.ListTemplates)
	v1.GET("/documents/templates/birth-certificate", h.ListBirthCertificateTemplates)
	v1.POST("/documents/reborns/:reborn_id/birth-certificate", h.GenerateBirthCertificate)
	v1.GET("/documents", h.ListDocuments)
	v1.GET("/documents/:id", h.GetDocument)
	v1.GET("/documents/:id/download", h.DownloadDocument)
	v1.GET("/reborns/:reborn_id/documents", h.ListRebornDocuments)
	return d
}

func TestDocumentHandler_ListTemplates(t *testing.T) {
	t.Run("without type lists every active template", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.templates.EXPECT().ListTemplates(gomock.Any(), gomock.Nil()).Return([]entities.DocumentTemplate{{ID: "tpl-1"}}, nil)

		w := serve(d.router, http.MethodGet, "/v1/documents/templates", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []response.TemplateResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || len(res) != 1 {
			t.Fatalf("unexpected body %s: %v", w.Body.String(), err)
		}
	})

	t.Run("with type", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.templates.EXPECT().ListTemplates(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, docType *entities.DocumentType) ([]entities.DocumentTemplate, error) {
				if docType == nil || *docType != entities.DocumentTypeBirthCertificate {
					t.Fatalf("unexpected type: %v", docType)
				}
				return nil, nil
			},
		)

		w := serve(d.router, http.MethodGet, "/v1/documents/templates?type=birth_certificate", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.templates.EXPECT().ListTemplates(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidDocumentType)

		w := serve(d.router, http.MethodGet, "/v1/documents/templates?type=passport", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("birth certificate shortcut", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.templates.EXPECT().ListTemplates(gomock.Any(), gomock.Not(gomock.Nil())).Return([]entities.DocumentTemplate{{ID: "tpl-1"}, {ID: "tpl-2"}}, nil)

		w := serve(d.router, http.MethodGet, "/v1/documents/templates/birth-certificate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_GenerateBirthCertificate(t *testing.T) {
	const path = "/v1/documents/reborns/reborn-1/birth-certificate"

	t.Run("invalid json", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.certificates.EXPECT().GenerateBirthCertificate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := serve(d.router, http.MethodPost, path, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing template id", func(t *testing.T) {
		d := newDocumentRouter(t)
		w := serve(d.router, http.MethodPost, path, `{"format":"png"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if e := decodeError(t, w); e.Code != "INVALID_BIRTH_CERTIFICATE_INPUT" {
			t.Fatalf("unexpected code: %s", e.Code)
		}
	})

	t.Run("success streams png", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.certificates.EXPECT().
			GenerateBirthCertificate(gomock.Any(), "user-1", "reborn-1", usecase.GenerateBirthCertificateInput{
				TemplateID: "tpl-1",
				Format:     entities.DocumentFormatPNG,
				Fields:     entities.CertificateFields{Hospital: "Hospital Central", City: "Recife"},
			}).
			Return(usecase.BirthCertificateResult{
				Document: entities.Document{ID: "doc-1", Status: entities.DocumentStatusReady},
				File: entities.GeneratedFile{
					Buffer:      []byte("\x89PNG"),
					FileName:    "certidao_nascimento_Maria_Clara_1709294400000.png",
					ContentType: "image/png",
				},
			}, nil)

		w := serve(d.router, http.MethodPost, path, `{"template_id":"tpl-1","hospital":" Hospital Central ","city":"Recife"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Type"); got != "image/png" {
			t.Fatalf("unexpected content type: %s", got)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="certidao_nascimento_Maria_Clara_1709294400000.png"` {
			t.Fatalf("unexpected disposition: %s", got)
		}
		if w.Header().Get("X-Document-ID") != "doc-1" || w.Body.String() != "\x89PNG" {
			t.Fatalf("unexpected response: %v %q", w.Header(), w.Body.String())
		}
	})

	t.Run("foreign reborn is 404", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.certificates.EXPECT().GenerateBirthCertificate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BirthCertificateResult{}, &usecase.NotFoundError{Resource: usecase.ResourceSubject, Reason: usecase.ReasonNotOwned})

		w := serve(d.router, http.MethodPost, path, `{"template_id":"tpl-1","format":"png"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if e := decodeError(t, w); e.Code != "DOCUMENT_RESOURCE_NOT_FOUND" || e.Message != "subject not found" {
			t.Fatalf("unexpected error: %+v", e)
		}
	})

	t.Run("pdf is 422", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.certificates.EXPECT().GenerateBirthCertificate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, in usecase.GenerateBirthCertificateInput) (usecase.BirthCertificateResult, error) {
				if in.Format != entities.DocumentFormatPDF {
					t.Fatalf("unexpected format: %s", in.Format)
				}
				return usecase.BirthCertificateResult{}, entities.ErrUnsupportedFormat
			})

		w := serve(d.router, http.MethodPost, path, `{"template_id":"tpl-1","format":"PDF"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("render failure is 500 without detail", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.certificates.EXPECT().GenerateBirthCertificate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.BirthCertificateResult{}, errors.New("font cache corrupted"))

		w := serve(d.router, http.MethodPost, path, `{"template_id":"tpl-1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if e := decodeError(t, w); e.Message != "An internal error occurred" {
			t.Fatalf("internal detail leaked: %+v", e)
		}
	})
}

func TestDocumentHandler_Documents(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ready := entities.Document{ID: "doc-1", UserID: "user-1", RebornID: "reborn-1", Status: entities.DocumentStatusReady, CreatedAt: now, UpdatedAt: now}

	t.Run("list", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.documents.EXPECT().ListUserDocuments(gomock.Any(), "user-1").Return([]entities.Document{ready}, nil)

		w := serve(d.router, http.MethodGet, "/v1/documents", "")
		var res response.DocumentsListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || w.Code != http.StatusOK || res.Total != 1 {
			t.Fatalf("unexpected response %d %s: %v", w.Code, w.Body.String(), err)
		}
	})

	t.Run("get", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.documents.EXPECT().GetDocument(gomock.Any(), "user-1", "doc-1").Return(ready, nil)

		w := serve(d.router, http.MethodGet, "/v1/documents/doc-1", "")
		var res response.DocumentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Status != "ready" {
			t.Fatalf("unexpected response %d %s: %v", w.Code, w.Body.String(), err)
		}
	})

	t.Run("get foreign", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.documents.EXPECT().GetDocument(gomock.Any(), "user-1", "doc-2").
			Return(entities.Document{}, &usecase.NotFoundError{Resource: usecase.ResourceDocument, Reason: usecase.ReasonNotOwned})

		w := serve(d.router, http.MethodGet, "/v1/documents/doc-2", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("download", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.documents.EXPECT().DownloadDocument(gomock.Any(), "user-1", "doc-1").
			Return(entities.GeneratedFile{Buffer: []byte("png"), FileName: "cert.png", ContentType: "image/png"}, nil)

		w := serve(d.router, http.MethodGet, "/v1/documents/doc-1/download", "")
		if w.Code != http.StatusOK || w.Body.String() != "png" {
			t.Fatalf("unexpected response %d %q", w.Code, w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="cert.png"` {
			t.Fatalf("unexpected disposition: %s", got)
		}
	})

	t.Run("download not ready", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.documents.EXPECT().DownloadDocument(gomock.Any(), "user-1", "doc-1").Return(entities.GeneratedFile{}, usecase.ErrDocumentNotReady)

		w := serve(d.router, http.MethodGet, "/v1/documents/doc-1/download", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("by reborn", func(t *testing.T) {
		d := newDocumentRouter(t)
		d.documents.EXPECT().ListRebornDocuments(gomock.Any(), "user-1", "reborn-1").Return(nil, nil)

		w := serve(d.router, http.MethodGet, "/v1/reborns/reborn-1/documents", "")
		var res response.DocumentsListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Total != 0 || res.Documents == nil {
			t.Fatalf("unexpected response %d %s: %v", w.Code, w.Body.String(), err)
		}
	})
}
