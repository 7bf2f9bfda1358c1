package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abanoubkerols/SpotifyApi/controllers"
	"github.com/abanoubkerols/SpotifyApi/middleware"
)

func PlaylistRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/playlists", controllers.GetPlaylists())
	incomingRoutes.GET("/api/playlists/featured", controllers.GetFeaturedPlaylists())
	incomingRoutes.GET("/api/playlists/:id", middleware.OptionalAuthentication(), controllers.GetPlaylistByID())

	authed := incomingRoutes.Group("/api/playlists")
	authed.Use(middleware.Authentication())
	{
		authed.POST("", controllers.CreatePlaylist())
		authed.GET("/user/me", controllers.GetUserPlaylists())
		authed.PUT("/:id", controllers.UpdatePlaylist())
		authed.DELETE("/:id", controllers.DeletePlaylist())
		authed.PUT("/:id/add-songs", controllers.AddSongsToPlaylist())
		authed.PUT("/:id/remove-song/:songId", controllers.RemoveSongFromPlaylist())
		authed.PUT("/:id/add-collaborator", controllers.AddCollaborator())
		authed.PUT("/:id/remove-collaborator", controllers.RemoveCollaborator())
	}
}
