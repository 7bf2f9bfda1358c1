package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abanoubkerols/SpotifyApi/controllers"
	"github.com/abanoubkerols/SpotifyApi/middleware"
)

func SongRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/songs", controllers.GetSongs())
	incomingRoutes.GET("/api/songs/top", controllers.GetTopSongs())
	incomingRoutes.GET("/api/songs/new-releases", controllers.GetNewReleases())
	incomingRoutes.GET("/api/songs/:id", middleware.OptionalAuthentication(), controllers.GetSongByID())

	admin := incomingRoutes.Group("/api/songs")
	admin.Use(middleware.Authentication(), middleware.AdminOnly())
	{
		admin.POST("", controllers.CreateSong())
		admin.PUT("/:id", controllers.UpdateSong())
		admin.DELETE("/:id", controllers.DeleteSong())
	}
}
