package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	request "reborn_api/internal/adapter/http/dto/request"
	response "reborn_api/internal/adapter/http/dto/response"
	"reborn_api/internal/adapter/http/middleware"
	"reborn_api/internal/domain/entities"
	"reborn_api/internal/infrastructure/metrics"
	"reborn_api/internal/usecase"
	"reborn_api/pkg"

	"github.com/gin-gonic/gin"
)

const (
	outcomeReady    = "ready"
	outcomeFailed   = "failed"
	outcomeRejected = "rejected"
)

var errInvalidBirthCertificatePayload = pkg.NewDomainErrorSimple("INVALID_BIRTH_CERTIFICATE_INPUT", "Invalid birth certificate payload", http.StatusBadRequest)

// DocumentHandler serves templates, certificate generation and generated documents.

type DocumentHandler struct {
	certificates usecase.IBirthCertificateUseCase
	templates    usecase.ITemplateUseCase
	documents    usecase.IDocumentUseCase
}

func NewDocumentHandler(certificates usecase.IBirthCertificateUseCase, templates usecase.ITemplateUseCase, documents usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{certificates: certificates, templates: templates, documents: documents}
}

// ListTemplates godoc
// @Summary      List document templates
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        type  query     string  false  "Document type (birth_certificate)"
// @Success      200   {array}   response.TemplateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /documents/templates [get]
func (h *DocumentHandler) ListTemplates(c *gin.Context) {
	var docType *entities.DocumentType
	if raw := strings.TrimSpace(c.Query("type")); raw != "" {
		t := entities.DocumentType(raw)
		docType = &t
	}
	h.listTemplates(c, docType)
}

// ListBirthCertificateTemplates godoc
// @Summary      List birth certificate templates
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  response.TemplateResponse
// @Router       /documents/templates/birth-certificate [get]
func (h *DocumentHandler) ListBirthCertificateTemplates(c *gin.Context) {
	t := entities.DocumentTypeBirthCertificate
	h.listTemplates(c, &t)
}

func (h *DocumentHandler) listTemplates(c *gin.Context, docType *entities.DocumentType) {
	templates, err := h.templates.ListTemplates(c.Request.Context(), docType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTemplates(templates))
}

// GenerateBirthCertificate godoc
// @Summary      Generate a birth certificate for a reborn
// @Description  Renders the certificate and returns it as a PNG attachment. The document id is sent in X-Document-ID.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      image/png
// @Param        reborn_id  path      string                           true  "Reborn ID"
// @Param        body       body      request.BirthCertificateRequest  true  "Certificate data"
// @Success      201        {file}    binary
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      422        {object}  pkg.HTTPError
// @Failure      500        {object}  pkg.HTTPError
// @Router       /documents/reborns/{reborn_id}/birth-certificate [post]
func (h *DocumentHandler) GenerateBirthCertificate(c *gin.Context) {
	var payload request.BirthCertificateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		metrics.BirthCertificatesTotal.WithLabelValues(outcomeRejected).Inc()
		c.JSON(errInvalidBirthCertificatePayload.HTTPStatus, errInvalidBirthCertificatePayload.ToHTTPError())
		return
	}

	result, err := h.certificates.GenerateBirthCertificate(c.Request.Context(), middleware.UserID(c), c.Param("reborn_id"), usecase.GenerateBirthCertificateInput{
		TemplateID: payload.TemplateID,
		Format:     payload.ResolveFormat(),
		Fields:     payload.Fields(),
	})
	if err != nil {
		metrics.BirthCertificatesTotal.WithLabelValues(generationOutcome(err)).Inc()
		respondError(c, err)
		return
	}
	metrics.BirthCertificatesTotal.WithLabelValues(outcomeReady).Inc()

	c.Header("X-Document-ID", result.Document.ID)
	sendFile(c, http.StatusCreated, result.File)
}

// ListDocuments godoc
// @Summary      List the caller's documents
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  response.DocumentsListResponse
// @Router       /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := h.documents.ListUserDocuments(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

// GetDocument godoc
// @Summary      Get one document
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  response.DocumentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documents.GetDocument(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// DownloadDocument godoc
// @Summary      Download a ready document
// @Tags         documents
// @Security     Bearer
// @Produce      image/png
// @Param        id   path      string  true  "Document ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /documents/{id}/download [get]
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	file, err := h.documents.DownloadDocument(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, http.StatusOK, file)
}

// ListRebornDocuments godoc
// @Summary      List documents generated for one reborn
// @Tags         reborns
// @Security     Bearer
// @Produce      json
// @Param        reborn_id  path      string  true  "Reborn ID"
// @Success      200        {object}  response.DocumentsListResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /reborns/{reborn_id}/documents [get]
func (h *DocumentHandler) ListRebornDocuments(c *gin.Context) {
	docs, err := h.documents.ListRebornDocuments(c.Request.Context(), middleware.UserID(c), c.Param("reborn_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

func sendFile(c *gin.Context, status int, file entities.GeneratedFile) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	c.Header("Content-Length", strconv.Itoa(len(file.Buffer)))
	c.Data(status, file.ContentType, file.Buffer)
}

// generationOutcome separates requests refused before any document was written from
// generations that failed midway.
func generationOutcome(err error) string {
	if errors.Is(err, usecase.ErrNotFound) ||
		errors.Is(err, usecase.ErrInvalidUserID) ||
		errors.Is(err, usecase.ErrInvalidRebornID) ||
		errors.Is(err, usecase.ErrInvalidTemplateID) ||
		errors.Is(err, usecase.ErrInvalidDocumentFormat) ||
		errors.Is(err, entities.ErrUnsupportedFormat) {
		return outcomeRejected
	}
	return outcomeFailed
}
