package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/abanoubkerols/SpotifyApi/controllers"
	"github.com/abanoubkerols/SpotifyApi/database"
	"github.com/abanoubkerols/SpotifyApi/logger"
	"github.com/abanoubkerols/SpotifyApi/middleware"
	"github.com/abanoubkerols/SpotifyApi/routes"
)

func main() {
	// a missing .env is fine in containers, config comes from the environment
	_ = godotenv.Load()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	database.InitializeLogger(log)
	controllers.InitializeLogger(log)

	database.InitDB()

	controllers.InitUserController()
	controllers.InitArtistController()
	controllers.InitSongController()
	controllers.InitAlbumController()
	controllers.InitPlaylistController()
	controllers.InitHistoryController()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	router := gin.New()
	router.Use(ginzap.Ginzap(log, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(log, true))
	router.Use(middleware.Metrics())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.UserRoutes(router)
	routes.ArtistRoutes(router)
	routes.SongRoutes(router)
	routes.AlbumRoutes(router)
	routes.PlaylistRoutes(router)
	routes.HistoryRoutes(router)

	log.Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
