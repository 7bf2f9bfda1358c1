package controllers

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/abanoubkerols/SpotifyApi/database"
	"github.com/abanoubkerols/SpotifyApi/helpers"
	"github.com/abanoubkerols/SpotifyApi/models"
)

var artistCollection *mongo.Collection

func InitArtistController() {
	artistCollection = database.OpenCollection(database.Client, "artists")
}

// CreateArtist creates a new artist with an optional image upload (Admin only)
// POST /api/artists
func CreateArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := c.Request.ParseMultipartForm(20 << 20); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid form data")
			return
		}

		name := c.PostForm("name")
		bio := c.PostForm("bio")
		genres := c.PostFormArray("genres")

		if name == "" || bio == "" || len(genres) == 0 {
			respondError(c, http.StatusBadRequest, "Name, bio, genres are required")
			return
		}

		count, err := artistCollection.CountDocuments(ctx, bson.M{"name": name})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error checking artist name")
			return
		}
		if count > 0 {
			respondError(c, http.StatusConflict, "Artist already exists")
			return
		}

		var image *string
		imageFile, imageHeader, err := c.Request.FormFile("image")
		if err == nil {
			defer imageFile.Close()
			imgURL, err := helpers.UploadFile(imageFile, imageHeader, "spotify/artists")
			if err != nil {
				logger.Error("artist image upload failed", zap.Error(err))
				respondError(c, http.StatusInternalServerError, "Failed to upload artist image")
				return
			}
			image = &imgURL
		}

		now := time.Now()
		artist := models.Artist{
			ID:        primitive.NewObjectID(),
			Name:      &name,
			Bio:       &bio,
			Genres:    genres,
			Image:     image,
			Followers: 0,
			Verified:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		artist.ArtistID = artist.ID.Hex()

		if _, err := artistCollection.InsertOne(ctx, artist); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to create artist")
			return
		}

		c.JSON(http.StatusCreated, artist)
	}
}

// GetArtists lists artists with genre filter, free-text search and pagination
// GET /api/artists?genre=Rock&search=pink&page=1&limit=10
func GetArtists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{}
		if genre := c.Query("genre"); genre != "" {
			filter["genres"] = bson.M{"$in": []string{genre}}
		}
		if search := c.Query("search"); search != "" {
			esc := regexp.QuoteMeta(search)
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": esc, "$options": "i"}},
				{"bio": bson.M{"$regex": esc, "$options": "i"}},
			}
		}

		count, err := artistCollection.CountDocuments(ctx, filter)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch artists")
			return
		}

		page, limit, skip := helpers.ParsePagination(c)

		findOptions := options.Find().
			SetSort(bson.D{{Key: "followers", Value: -1}}).
			SetLimit(limit).
			SetSkip(skip)

		cursor, err := artistCollection.Find(ctx, filter, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch artists")
			return
		}
		defer cursor.Close(ctx)

		var artists []models.Artist
		if err := cursor.All(ctx, &artists); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to decode artists")
			return
		}
		if artists == nil {
			artists = []models.Artist{}
		}

		c.JSON(http.StatusOK, gin.H{
			"artists":      artists,
			"page":         page,
			"pages":        helpers.PageCount(count, limit),
			"totalArtists": count,
		})
	}
}

// GetArtistByID retrieves a single artist
// GET /api/artists/:id
func GetArtistByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var artist models.Artist
		err := artistCollection.FindOne(ctx, bson.M{"artist_id": c.Param("id")}).Decode(&artist)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, http.StatusNotFound, "Artist not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Failed to fetch artist")
			return
		}

		c.JSON(http.StatusOK, artist)
	}
}

// UpdateArtist applies a partial update; absent fields stay unchanged (Admin only)
// PUT /api/artists/:id
func UpdateArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		artistID := c.Param("id")

		var body struct {
			Name     *string  `json:"name" validate:"omitempty,min=2,max=100"`
			Bio      *string  `json:"bio"`
			Genres   []string `json:"genres"`
			Image    *string  `json:"image"`
			Verified *bool    `json:"verified"`
		}

		if err := c.BindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		updateObj := bson.M{}
		if body.Name != nil {
			updateObj["name"] = body.Name
		}
		if body.Bio != nil {
			updateObj["bio"] = body.Bio
		}
		if len(body.Genres) > 0 {
			updateObj["genres"] = body.Genres
		}
		if body.Image != nil {
			updateObj["image"] = body.Image
		}
		if body.Verified != nil {
			updateObj["verified"] = body.Verified
		}
		updateObj["updated_at"] = time.Now()

		result, err := artistCollection.UpdateOne(ctx, bson.M{"artist_id": artistID}, bson.M{"$set": updateObj})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update artist")
			return
		}
		if result.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Artist not found")
			return
		}

		var updatedArtist models.Artist
		if err := artistCollection.FindOne(ctx, bson.M{"artist_id": artistID}).Decode(&updatedArtist); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch artist")
			return
		}

		c.JSON(http.StatusOK, updatedArtist)
	}
}

// DeleteArtist removes an artist and cascades delete of its songs and albums
// (Admin only). Dangling song references in playlists and users' liked lists
// are a known data-integrity gap and are not scrubbed here.
// DELETE /api/artists/:id
func DeleteArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		artistID := c.Param("id")

		count, err := artistCollection.CountDocuments(ctx, bson.M{"artist_id": artistID})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch artist")
			return
		}
		if count == 0 {
			respondError(c, http.StatusNotFound, "Artist not found")
			return
		}

		if _, err := songCollection.DeleteMany(ctx, bson.M{"artist_id": artistID}); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to delete artist songs")
			return
		}
		if _, err := albumCollection.DeleteMany(ctx, bson.M{"artist_id": artistID}); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to delete artist albums")
			return
		}
		if _, err := artistCollection.DeleteOne(ctx, bson.M{"artist_id": artistID}); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to delete artist")
			return
		}

		logger.Info("artist deleted with cascade", zap.String("artist_id", artistID))
		c.JSON(http.StatusOK, gin.H{"message": "Artist removed"})
	}
}

// GetTopArtists returns the most followed artists
// GET /api/artists/top?limit=10
func GetTopArtists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "followers", Value: -1}}).
			SetLimit(helpers.ParseLimit(c, 10))

		cursor, err := artistCollection.Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch artists")
			return
		}
		defer cursor.Close(ctx)

		var artists []models.Artist
		if err := cursor.All(ctx, &artists); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to decode artists")
			return
		}
		if artists == nil {
			artists = []models.Artist{}
		}

		c.JSON(http.StatusOK, artists)
	}
}

// GetArtistTopSongs returns an artist's most played songs
// GET /api/artists/:id/top-songs?limit=5
func GetArtistTopSongs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		artistID := c.Param("id")

		count, err := artistCollection.CountDocuments(ctx, bson.M{"artist_id": artistID})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch artist")
			return
		}
		if count == 0 {
			respondError(c, http.StatusNotFound, "Artist not found")
			return
		}

		findOptions := options.Find().
			SetSort(bson.D{{Key: "plays", Value: -1}}).
			SetLimit(helpers.ParseLimit(c, 5))

		cursor, err := songCollection.Find(ctx, bson.M{"artist_id": artistID}, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch songs")
			return
		}
		defer cursor.Close(ctx)

		var songs []models.Song
		if err := cursor.All(ctx, &songs); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to decode songs")
			return
		}

		if len(songs) == 0 {
			respondError(c, http.StatusNotFound, "No songs found for this artist")
			return
		}

		c.JSON(http.StatusOK, songs)
	}
}
