package routes

import (
	"reborn_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments = "/documents"
	PathReborns   = "/reborns"
)

func addDocumentRoutes(rg *gin.RouterGroup, documentHandler *handlers.DocumentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.GET("/templates", documentHandler.ListTemplates)
		documents.GET("/templates/birth-certificate", documentHandler.ListBirthCertificateTemplates)
		documents.POST("/reborns/:reborn_id/birth-certificate", documentHandler.GenerateBirthCertificate)
		documents.GET("", documentHandler.ListDocuments)
		documents.GET("/:id", documentHandler.GetDocument)
		documents.GET("/:id/download", documentHandler.DownloadDocument)
	}
}
