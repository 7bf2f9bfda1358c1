package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abanoubkerols/SpotifyApi/controllers"
	"github.com/abanoubkerols/SpotifyApi/middleware"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/api/users/register", controllers.RegisterUser())
	incomingRoutes.POST("/api/users/login", controllers.LoginUser())

	authed := incomingRoutes.Group("/api/users")
	authed.Use(middleware.Authentication())
	{
		authed.GET("/profile", controllers.GetUserProfile())
		authed.PUT("/profile", controllers.UpdateUserProfile())
		authed.PUT("/like-song/:id", controllers.ToggleLikeSong())
		authed.PUT("/like-album/:id", controllers.ToggleLikeAlbum())
		authed.PUT("/follow-artist/:id", controllers.ToggleFollowArtist())
		authed.PUT("/follow-playlist/:id", controllers.ToggleFollowPlaylist())
	}
}
