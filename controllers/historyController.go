package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/abanoubkerols/SpotifyApi/database"
	"github.com/abanoubkerols/SpotifyApi/models"
)

var historyCollection *mongo.Collection

func InitHistoryController() {
	historyCollection = database.OpenCollection(database.Client, "history")
}

// recordPlay stores a listening-history entry. Failures are logged and
// swallowed so a history hiccup never breaks song playback.
func recordPlay(ctx context.Context, userID string, songID string) {
	entry := models.History{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		SongID:   songID,
		PlayedAt: time.Now(),
	}
	if _, err := historyCollection.InsertOne(ctx, entry); err != nil {
		logger.Warn("failed to record play",
			zap.String("user_id", userID),
			zap.String("song_id", songID),
			zap.Error(err))
	}
}

// GetMyHistory returns the authenticated user's most recent plays, newest first
// GET /api/history/me?limit=50
func GetMyHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("user_id")

		findOptions := options.Find().
			SetSort(bson.D{{Key: "played_at", Value: -1}}).
			SetLimit(50)

		cursor, err := historyCollection.Find(ctx, bson.M{"user_id": userID}, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch history")
			return
		}
		defer cursor.Close(ctx)

		var entries []models.History
		if err := cursor.All(ctx, &entries); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to decode history")
			return
		}
		if entries == nil {
			entries = []models.History{}
		}

		c.JSON(http.StatusOK, entries)
	}
}

// ClearHistory deletes all of the authenticated user's history entries
// DELETE /api/history/clear
func ClearHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("user_id")

		result, err := historyCollection.DeleteMany(ctx, bson.M{"user_id": userID})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to clear history")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "History cleared",
			"deleted": result.DeletedCount,
		})
	}
}
