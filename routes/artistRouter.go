package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abanoubkerols/SpotifyApi/controllers"
	"github.com/abanoubkerols/SpotifyApi/middleware"
)

func ArtistRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/artists", controllers.GetArtists())
	incomingRoutes.GET("/api/artists/top", controllers.GetTopArtists())
	incomingRoutes.GET("/api/artists/:id", controllers.GetArtistByID())
	incomingRoutes.GET("/api/artists/:id/top-songs", controllers.GetArtistTopSongs())

	admin := incomingRoutes.Group("/api/artists")
	admin.Use(middleware.Authentication(), middleware.AdminOnly())
	{
		admin.POST("", controllers.CreateArtist())
		admin.PUT("/:id", controllers.UpdateArtist())
		admin.DELETE("/:id", controllers.DeleteArtist())
	}
}
