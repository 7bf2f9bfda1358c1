package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abanoubkerols/SpotifyApi/controllers"
	"github.com/abanoubkerols/SpotifyApi/middleware"
)

func AlbumRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/albums", controllers.GetAlbums())
	incomingRoutes.GET("/api/albums/new-releases", controllers.GetAlbumNewReleases())
	incomingRoutes.GET("/api/albums/:id", controllers.GetAlbumByID())

	admin := incomingRoutes.Group("/api/albums")
	admin.Use(middleware.Authentication(), middleware.AdminOnly())
	{
		admin.POST("", controllers.CreateAlbum())
		admin.PUT("/:id", controllers.UpdateAlbum())
		admin.DELETE("/:id", controllers.DeleteAlbum())
		admin.PUT("/:id/add-songs", controllers.AddSongsToAlbum())
		admin.DELETE("/:id/remove-song/:songId", controllers.RemoveSongFromAlbum())
	}
}
