package routes

import (
	"reborn_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addRebornRoutes(rg *gin.RouterGroup, rebornHandler *handlers.RebornHandler, documentHandler *handlers.DocumentHandler) {
	reborns := rg.Group(PathReborns)
	{
		reborns.POST("", rebornHandler.CreateReborn)
		reborns.GET("", rebornHandler.ListReborns)
		reborns.GET("/:reborn_id", rebornHandler.GetReborn)
		reborns.GET("/:reborn_id/documents", documentHandler.ListRebornDocuments)
	}
}
