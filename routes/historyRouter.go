package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abanoubkerols/SpotifyApi/controllers"
	"github.com/abanoubkerols/SpotifyApi/middleware"
)

func HistoryRoutes(incomingRoutes *gin.Engine) {
	authed := incomingRoutes.Group("/api/history")
	authed.Use(middleware.Authentication())
	{
		authed.GET("/me", controllers.GetMyHistory())
		authed.DELETE("/clear", controllers.ClearHistory())
	}
}
