package handlers

import (
	"errors"
	"net/http"

	"reborn_api/internal/domain/entities"
	"reborn_api/internal/usecase"
	"reborn_api/pkg"

	"github.com/gin-gonic/gin"
)

const codeResourceNotFound = "DOCUMENT_RESOURCE_NOT_FOUND"

var (
	errMissingCaller = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing authenticated user", http.StatusUnauthorized)
)

// mapDomainError is shared by every handler; not-found messages never say why the lookup failed.
func mapDomainError(err error) *pkg.AppError {
	var nf *usecase.NotFoundError
	switch {
	case errors.As(err, &nf):
		return pkg.NewDomainErrorSimple(codeResourceNotFound, nf.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple(codeResourceNotFound, "resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return errMissingCaller
	case errors.Is(err, usecase.ErrInvalidRebornID),
		errors.Is(err, usecase.ErrInvalidTemplateID),
		errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrInvalidDocumentFormat),
		errors.Is(err, usecase.ErrInvalidDocumentType):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRebornName),
		errors.Is(err, usecase.ErrInvalidRebornBirthDate),
		errors.Is(err, usecase.ErrInvalidRebornWeight),
		errors.Is(err, usecase.ErrInvalidRebornHeight):
		return pkg.NewDomainError("INVALID_REBORN_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnsupportedFormat):
		return pkg.NewDomainError("UNSUPPORTED_DOCUMENT_FORMAT", "Document format is not supported yet", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDocumentNotReady):
		return pkg.NewDomainError("DOCUMENT_NOT_READY", "Document is not ready", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrFileStorageUnavailable):
		return pkg.NewDomainError("FILE_STORAGE_UNAVAILABLE", "Document files are not kept by this deployment", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapDomainError(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
