package controllers

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
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

var songCollection *mongo.Collection

func InitSongController() {
	songCollection = database.OpenCollection(database.Client, "songs")
}

// verifySongIDs returns the subset of ids that exist in the songs
// collection, preserving request order.
func verifySongIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	found, err := songCollection.Distinct(ctx, "song_id", bson.M{"song_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	existing := make([]string, 0, len(found))
	for _, v := range found {
		if id, ok := v.(string); ok {
			existing = append(existing, id)
		}
	}

	verified := make([]string, 0, len(ids))
	for _, id := range ids {
		if models.Contains(existing, id) {
			verified = append(verified, id)
		}
	}
	return verified, nil
}

// CreateSong uploads a new song with its audio file and optional cover (Admin only)
// POST /api/songs
func CreateSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		if err := c.Request.ParseMultipartForm(50 << 20); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid form data")
			return
		}

		title := c.PostForm("title")
		artistID := c.PostForm("artist_id")
		albumID := c.PostForm("album_id")
		genre := c.PostForm("genre")
		durationStr := c.PostForm("duration")

		if title == "" || artistID == "" || durationStr == "" {
			respondError(c, http.StatusBadRequest, "Title, artist_id and duration are required")
			return
		}

		duration, err := strconv.Atoi(durationStr)
		if err != nil || duration < 1 {
			respondError(c, http.StatusBadRequest, "Duration must be a positive number of seconds")
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

		if albumID != "" {
			count, err := albumCollection.CountDocuments(ctx, bson.M{"album_id": albumID})
			if err != nil {
				respondError(c, http.StatusInternalServerError, "Failed to fetch album")
				return
			}
			if count == 0 {
				respondError(c, http.StatusNotFound, "Album not found")
				return
			}
		}

		audioFile, audioHeader, err := c.Request.FormFile("audio")
		if err != nil {
			respondError(c, http.StatusBadRequest, "Audio file is required")
			return
		}
		defer audioFile.Close()

		audioURL, err := helpers.UploadFile(audioFile, audioHeader, "spotify/songs")
		if err != nil {
			logger.Error("audio upload failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Failed to upload audio")
			return
		}

		var coverImage *string
		coverFile, coverHeader, err := c.Request.FormFile("cover")
		if err == nil {
			defer coverFile.Close()
			imgURL, err := helpers.UploadFile(coverFile, coverHeader, "spotify/covers")
			if err == nil {
				coverImage = &imgURL
			}
		}

		var releaseDate *time.Time
		if releaseStr := c.PostForm("release_date"); releaseStr != "" {
			if t, err := time.Parse(time.RFC3339, releaseStr); err == nil {
				releaseDate = &t
			} else if t, err := time.Parse("2006-01-02", releaseStr); err == nil {
				releaseDate = &t
			}
		}
		if releaseDate == nil {
			now := time.Now()
			releaseDate = &now
		}

		now := time.Now()
		song := models.Song{
			ID:          primitive.NewObjectID(),
			Title:       &title,
			ArtistID:    &artistID,
			Duration:    duration,
			AudioURL:    &audioURL,
			CoverImage:  coverImage,
			Plays:       0,
			Likes:       0,
			IsExplicit:  c.PostForm("is_explicit") == "true",
			ReleaseDate: releaseDate,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		song.SongID = song.ID.Hex()
		if albumID != "" {
			song.AlbumID = &albumID
		}
		if genre != "" {
			song.Genre = &genre
		}

		if _, err := songCollection.InsertOne(ctx, song); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to save song")
			return
		}

		c.JSON(http.StatusCreated, song)
	}
}

// GetSongs lists songs with genre filter, title search and pagination
// GET /api/songs?genre=&search=&page=&limit=
func GetSongs() gin.HandlerFunc {
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
				{"genre": bson.M{"$regex": esc, "$options": "i"}},
			}
		}

		count, err := songCollection.CountDocuments(ctx, filter)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch songs")
			return
		}

		page, limit, skip := helpers.ParsePagination(c)

		findOptions := options.Find().
			SetSort(bson.D{{Key: "plays", Value: -1}}).
			SetLimit(limit).
			SetSkip(skip)

		cursor, err := songCollection.Find(ctx, filter, findOptions)
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
		if songs == nil {
			songs = []models.Song{}
		}

		c.JSON(http.StatusOK, gin.H{
			"songs":      songs,
			"page":       page,
			"pages":      helpers.PageCount(count, limit),
			"totalSongs": count,
		})
	}
}

// GetSongByID returns a song, counting the play atomically and recording
// listening history when the caller is authenticated.
// GET /api/songs/:id
func GetSongByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		songID := c.Param("id")

		var song models.Song
		err := songCollection.FindOne(ctx, bson.M{"song_id": songID}).Decode(&song)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, http.StatusNotFound, "Song not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "Failed to fetch song")
			return
		}

		if _, err := songCollection.UpdateOne(ctx,
			bson.M{"song_id": songID},
			bson.M{"$inc": bson.M{"plays": 1}},
		); err == nil {
			song.Plays++
		}

		if userID := c.GetString("user_id"); userID != "" {
			recordPlay(ctx, userID, songID)
		}

		c.JSON(http.StatusOK, song)
	}
}

// UpdateSong applies a partial update; absent fields stay unchanged (Admin only)
// PUT /api/songs/:id
func UpdateSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		songID := c.Param("id")

		var body struct {
			Title      *string    `json:"title" validate:"omitempty,min=1,max=100"`
			AlbumID    *string    `json:"album_id"`
			Genre      *string    `json:"genre"`
			CoverImage *string    `json:"cover_image"`
			IsExplicit *bool      `json:"is_explicit"`
			Release    *time.Time `json:"release_date"`
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
		if body.AlbumID != nil {
			updateObj["album_id"] = body.AlbumID
		}
		if body.Genre != nil {
			updateObj["genre"] = body.Genre
		}
		if body.CoverImage != nil {
			updateObj["cover_image"] = body.CoverImage
		}
		if body.IsExplicit != nil {
			updateObj["is_explicit"] = body.IsExplicit
		}
		if body.Release != nil {
			updateObj["release_date"] = body.Release
		}
		updateObj["updated_at"] = time.Now()

		result, err := songCollection.UpdateOne(ctx, bson.M{"song_id": songID}, bson.M{"$set": updateObj})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update song")
			return
		}
		if result.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "Song not found")
			return
		}

		var updatedSong models.Song
		if err := songCollection.FindOne(ctx, bson.M{"song_id": songID}).Decode(&updatedSong); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to fetch song")
			return
		}

		c.JSON(http.StatusOK, updatedSong)
	}
}

// DeleteSong removes a song (Admin only)
// DELETE /api/songs/:id
func DeleteSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := songCollection.DeleteOne(ctx, bson.M{"song_id": c.Param("id")})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to delete song")
			return
		}
		if result.DeletedCount == 0 {
			respondError(c, http.StatusNotFound, "Song not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Song removed"})
	}
}

// GetTopSongs returns the most played songs
// GET /api/songs/top?limit=10
func GetTopSongs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "plays", Value: -1}}).
			SetLimit(helpers.ParseLimit(c, 10))

		cursor, err := songCollection.Find(ctx, bson.M{}, findOptions)
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
		if songs == nil {
			songs = []models.Song{}
		}

		c.JSON(http.StatusOK, songs)
	}
}

// GetNewReleases returns the most recently released songs
// GET /api/songs/new-releases?limit=10
func GetNewReleases() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "release_date", Value: -1}}).
			SetLimit(helpers.ParseLimit(c, 10))

		cursor, err := songCollection.Find(ctx, bson.M{}, findOptions)
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
		if songs == nil {
			songs = []models.Song{}
		}

		c.JSON(http.StatusOK, songs)
	}
}
