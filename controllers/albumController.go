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

var albumCollection *mongo.Collection

func InitAlbumController() {
	albumCollection = database.OpenCollection(database.Client, "albums")
}

// CreateAlbum creates a new album with an optional cover upload (Admin only)
// POST /api/albums
func CreateAlbum() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := c.Request.ParseMultipartForm(20 << 20); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid form data")
			return
		}

		title := c.PostForm("title")
		artistID := c.PostForm("artist_id")

		if title == "" || artistID == "" {
			respondError(c, http.StatusBadRequest, "Title and artist_id are required")
			return
		}

		count, err := artistCollection.CountDocuments(ctx, bson.M{"artist_id": artistID})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch artist")
			return
		}
		if count == 0 {
			respondError(c, http.StatusNotFound, "Artist not found")
			return
		}

		var coverImage *string
		coverFile, coverHeader, err := c.Request.FormFile("coverImage")
		if err == nil {
			defer coverFile.Close()
			imgURL, err := helpers.UploadFile(coverFile, coverHeader, "spotify/albums")
			if err != nil {
				logger.Error("album cover upload failed", zap.Error(err))
				respondError(c, http.StatusInternalServerError, "Failed to upload cover image")
				return
			}
			coverImage = &imgURL
		}

		var releasedDate *time.Time
		if releaseStr := c.PostForm("released_date"); releaseStr != "" {
			if t, err := time.Parse("2006-01-02", releaseStr); err == nil {
				releasedDate = &t
			}
		}
		if releasedDate == nil {
			now := time.Now()
			releasedDate = &now
		}

		now := time.Now()
		album := models.Album{
			ID:           primitive.NewObjectID(),
			Title:        &title,
			ArtistID:     &artistID,
			ReleasedDate: releasedDate,
			CoverImage:   coverImage,
			SongIDs:      []string{},
			Likes:        0,
			IsExplicit:   c.PostForm("is_explicit") == "true",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		album.AlbumID = album.ID.Hex()
		if genre := c.PostForm("genre"); genre != "" {
			album.Genre = &genre
		}
		if description := c.PostForm("description"); description != "" {
			album.Description = &description
		}

		if _, err := albumCollection.InsertOne(ctx, album); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to create album")
			return
		}

		c.JSON(http.StatusCreated, album)
	}
}

// GetAlbums lists albums with genre filter, free-text search and pagination
// GET /api/albums?genre=&search=&page=&limit=
func GetAlbums() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{}
		if genre := c.Query("genre"); genre != "" {
			filter["genre"] = genre
		}
		if artistID := c.Query("artist"); artistID != "" {
			filter["artist_id"] = artistID
		}
		if search := c.Query("search"); search != "" {
			esc := regexp.QuoteMeta(search)
			filter["$or"] = []bson.M{
				{"title": bson.M{"$regex": esc, "$options": "i"}},
				{"description": bson.M{"$regex": esc, "$options": "i"}},
			}
		}

		count, err := albumCollection.CountDocuments(ctx, filter)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch albums")
			return
		}

		page, limit, skip := helpers.ParsePagination(c)

		findOptions := options.Find().
			SetSort(bson.D{{Key: "likes", Value: -1}}).
			SetLimit(limit).
			SetSkip(skip)

		cursor, err := albumCollection.Find(ctx, filter, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch albums")
			return
		}
		defer cursor.Close(ctx)

		var albums []models.Album
		if err := cursor.All(ctx, &albums); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to decode albums")
			return
		}
		if albums == nil {
			albums = []models.Album{}
		}

		c.JSON(http.StatusOK, gin.H{
			"albums":      albums,
			"page":        page,
			"pages":       helpers.PageCount(count, limit),
			"totalAlbums": count,
		})
	}
}

// GetAlbumByID retrieves a single album
// GET /api/albums/:id
func GetAlbumByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var album models.Album
		err := albumCollection.FindOne(ctx, bson.M{"album_id": c.Param("id")}).Decode(&album)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, http.StatusNotFound, "Album not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Failed to fetch album")
			return
		}

		c.JSON(http.StatusOK, album)
	}
}

// UpdateAlbum applies a partial update; absent fields stay unchanged (Admin only)
// PUT /api/albums/:id
func UpdateAlbum() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		albumID := c.Param("id")

		var body struct {
			Title       *string    `json:"title" validate:"omitempty,min=1,max=100"`
			Genre       *string    `json:"genre"`
			Description *string    `json:"description"`
			CoverImage  *string    `json:"cover_image"`
			IsExplicit  *bool      `json:"is_explicit"`
			Released    *time.Time `json:"released_date"`
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
		if body.Title != nil {
			updateObj["title"] = body.Title
		}
		if body.Genre != nil {
			updateObj["genre"] = body.Genre
		}
		if body.Description != nil {
			updateObj["description"] = body.Description
		}
		if body.CoverImage != nil {
			updateObj["cover_image"] = body.CoverImage
		}
		if body.IsExplicit != nil {
			updateObj["is_explicit"] = body.IsExplicit
		}
		if body.Released != nil {
			updateObj["released_date"] = body.Released
		}
		updateObj["updated_at"] = time.Now()

		result, err := albumCollection.UpdateOne(ctx, bson.M{"album_id": albumID}, bson.M{"$set": updateObj})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update album")
			return
		}
		if result.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Album not found")
			return
		}

		var updatedAlbum models.Album
		if err := albumCollection.FindOne(ctx, bson.M{"album_id": albumID}).Decode(&updatedAlbum); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch album")
			return
		}

		c.JSON(http.StatusOK, updatedAlbum)
	}
}

// DeleteAlbum removes an album (Admin only)
// DELETE /api/albums/:id
func DeleteAlbum() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := albumCollection.DeleteOne(ctx, bson.M{"album_id": c.Param("id")})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to delete album")
			return
		}
		if result.DeletedCount == 0 {
			respondError(c, http.StatusNotFound, "Album not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Album removed"})
	}
}

// AddSongsToAlbum appends songs to the album's ordered list (Admin only).
// Unknown song ids and songs already in the album are skipped silently;
// the list is persisted once after all insertions are attempted.
// PUT /api/albums/:id/add-songs
func AddSongsToAlbum() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		albumID := c.Param("id")

		var body struct {
			SongIDs []string `json:"songIds"`
		}
		if err := c.BindJSON(&body); err != nil || body.SongIDs == nil {
			respondError(c, http.StatusBadRequest, "Song IDs are required")
			return
		}

		var album models.Album
		err := albumCollection.FindOne(ctx, bson.M{"album_id": albumID}).Decode(&album)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, http.StatusNotFound, "Album not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Failed to fetch album")
			return
		}

		verified, err := verifySongIDs(ctx, body.SongIDs)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to add songs to album")
			return
		}
		songIDs := models.AppendUnique(album.SongIDs, verified...)

		update := bson.M{"$set": bson.M{
			"song_ids":   songIDs,
			"updated_at": time.Now(),
		}}
		if _, err := albumCollection.UpdateOne(ctx, bson.M{"album_id": albumID}, update); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to add songs to album")
			return
		}

		album.SongIDs = songIDs
		c.JSON(http.StatusOK, album)
	}
}

// RemoveSongFromAlbum removes one song; unlike add-songs this fails hard
// when the song is not a member (Admin only).
// DELETE /api/albums/:id/remove-song/:songId
func RemoveSongFromAlbum() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		albumID := c.Param("id")
		songID := c.Param("songId")

		var album models.Album
		err := albumCollection.FindOne(ctx, bson.M{"album_id": albumID}).Decode(&album)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, http.StatusNotFound, "Album not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Failed to fetch album")
			return
		}

		if !models.Contains(album.SongIDs, songID) {
			respondError(c, http.StatusBadRequest, "Song is not in the album")
			return
		}

		update := bson.M{
			"$pull": bson.M{"song_ids": songID},
			"$set":  bson.M{"updated_at": time.Now()},
		}
		if _, err := albumCollection.UpdateOne(ctx, bson.M{"album_id": albumID}, update); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to remove song from album")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Song removed from album"})
	}
}

// GetAlbumNewReleases returns the most recently released albums
// GET /api/albums/new-releases?limit=10
func GetAlbumNewReleases() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "released_date", Value: -1}}).
			SetLimit(helpers.ParseLimit(c, 10))

		cursor, err := albumCollection.Find(ctx, bson.M{}, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch albums")
			return
		}
		defer cursor.Close(ctx)

		var albums []models.Album
		if err := cursor.All(ctx, &albums); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to decode albums")
			return
		}
		if albums == nil {
			albums = []models.Album{}
		}

		c.JSON(http.StatusOK, albums)
	}
}
