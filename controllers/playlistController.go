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

var playlistCollection *mongo.Collection

func InitPlaylistController() {
	playlistCollection = database.OpenCollection(database.Client, "playlists")
}

// findPlaylist fetches a playlist by id, writing the error response itself
// when the lookup fails.
func findPlaylist(ctx context.Context, c *gin.Context, playlistID string) (*models.Playlist, bool) {
	var playlist models.Playlist
	err := playlistCollection.FindOne(ctx, bson.M{"playlist_id": playlistID}).Decode(&playlist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "Playlist not found")
			return nil, false
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch playlist")
		return nil, false
	}
	return &playlist, true
}

// CreatePlaylist creates a playlist owned by the authenticated user, with an
// optional cover image upload. Playlist names are unique per creator.
// POST /api/playlists
func CreatePlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		userID := c.GetString("user_id")

		if err := c.Request.ParseMultipartForm(20 << 20); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid form data")
			return
		}

		name := c.PostForm("name")
		description := c.PostForm("description")

		if name == "" || description == "" {
			respondError(c, http.StatusBadRequest, "Name and description are required")
			return
		}
		if len(name) < 3 || len(name) > 50 {
			respondError(c, http.StatusBadRequest, "Name must be between 3 and 50 characters")
			return
		}
		if len(description) < 10 || len(description) > 200 {
			respondError(c, http.StatusBadRequest, "Description must be between 10 and 200 characters")
			return
		}

		count, err := playlistCollection.CountDocuments(ctx, bson.M{"name": name, "creator_id": userID})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error checking playlist name")
			return
		}
		if count > 0 {
			respondError(c, http.StatusConflict, "A playlist with this name already exists")
			return
		}

		var coverImage *string
		coverFile, coverHeader, err := c.Request.FormFile("coverImage")
		if err == nil {
			defer coverFile.Close()
			imgURL, err := helpers.UploadFile(coverFile, coverHeader, "spotify/playlists")
			if err != nil {
				logger.Error("playlist cover upload failed", zap.Error(err))
				respondError(c, http.StatusInternalServerError, "Failed to upload cover image")
				return
			}
			coverImage = &imgURL
		}

		now := time.Now()
		playlist := models.Playlist{
			ID:            primitive.NewObjectID(),
			Name:          &name,
			Description:   &description,
			CoverImage:    coverImage,
			CreatorID:     userID,
			Collaborators: []string{},
			SongIDs:       []string{},
			IsPublic:      c.PostForm("isPublic") == "true",
			Followers:     0,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		playlist.PlaylistID = playlist.ID.Hex()

		if _, err := playlistCollection.InsertOne(ctx, playlist); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to create playlist")
			return
		}

		c.JSON(http.StatusCreated, playlist)
	}
}

// GetPlaylists lists public playlists with free-text search and pagination
// GET /api/playlists?search=summer&page=1&limit=10
func GetPlaylists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{"is_public": true}
		if search := c.Query("search"); search != "" {
			esc := regexp.QuoteMeta(search)
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": esc, "$options": "i"}},
				{"description": bson.M{"$regex": esc, "$options": "i"}},
			}
		}

		count, err := playlistCollection.CountDocuments(ctx, filter)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching playlists")
			return
		}

		page, limit, skip := helpers.ParsePagination(c)

		findOptions := options.Find().
			SetSort(bson.D{{Key: "followers", Value: -1}}).
			SetLimit(limit).
			SetSkip(skip)

		cursor, err := playlistCollection.Find(ctx, filter, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching playlists")
			return
		}
		defer cursor.Close(ctx)

		var playlists []models.Playlist
		if err := cursor.All(ctx, &playlists); err != nil {
			respondError(c, http.StatusInternalServerError, "Error decoding playlists")
			return
		}
		if playlists == nil {
			playlists = []models.Playlist{}
		}

		c.JSON(http.StatusOK, gin.H{
			"playlists":      playlists,
			"page":           page,
			"pages":          helpers.PageCount(count, limit),
			"totalPlaylists": count,
		})
	}
}

// GetFeaturedPlaylists returns the most followed public playlists
// GET /api/playlists/featured?limit=5
func GetFeaturedPlaylists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		findOptions := options.Find().
			SetSort(bson.D{{Key: "followers", Value: -1}}).
			SetLimit(helpers.ParseLimit(c, 5))

		cursor, err := playlistCollection.Find(ctx, bson.M{"is_public": true}, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching playlists")
			return
		}
		defer cursor.Close(ctx)

		var playlists []models.Playlist
		if err := cursor.All(ctx, &playlists); err != nil {
			respondError(c, http.StatusInternalServerError, "Error decoding playlists")
			return
		}
		if playlists == nil {
			playlists = []models.Playlist{}
		}

		c.JSON(http.StatusOK, playlists)
	}
}

// GetUserPlaylists lists playlists the authenticated user created or
// collaborates on, newest first.
// GET /api/playlists/user/me
func GetUserPlaylists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("user_id")
		filter := bson.M{"$or": []bson.M{
			{"creator_id": userID},
			{"collaborator_ids": userID},
		}}

		findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

		cursor, err := playlistCollection.Find(ctx, filter, findOptions)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Error fetching playlists")
			return
		}
		defer cursor.Close(ctx)

		var playlists []models.Playlist
		if err := cursor.All(ctx, &playlists); err != nil {
			respondError(c, http.StatusInternalServerError, "Error decoding playlists")
			return
		}
		if playlists == nil {
			playlists = []models.Playlist{}
		}

		c.JSON(http.StatusOK, playlists)
	}
}

// GetPlaylistByID retrieves a playlist. Private playlists are visible only
// to the creator and collaborators.
// GET /api/playlists/:id
func GetPlaylistByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		playlist, ok := findPlaylist(ctx, c, c.Param("id"))
		if !ok {
			return
		}

		if !playlist.CanView(c.GetString("user_id")) {
			respondError(c, http.StatusForbidden, "This playlist is private")
			return
		}

		c.JSON(http.StatusOK, playlist)
	}
}

type playlistUpdate struct {
	Name        *string `json:"name" validate:"omitempty,min=3,max=50"`
	Description *string `json:"description" validate:"omitempty,min=10,max=200"`
	IsPublic    *bool   `json:"isPublic"`
}

// bindPlaylistUpdate reads a partial update from either a JSON body or a
// multipart form. Absent fields stay nil.
func bindPlaylistUpdate(c *gin.Context) (*playlistUpdate, error) {
	var body playlistUpdate
	if c.ContentType() == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(20 << 20); err != nil {
			return nil, err
		}
		if v, ok := c.GetPostForm("name"); ok {
			body.Name = &v
		}
		if v, ok := c.GetPostForm("description"); ok {
			body.Description = &v
		}
		if v, ok := c.GetPostForm("isPublic"); ok {
			isPublic := v == "true"
			body.IsPublic = &isPublic
		}
	} else if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}
	if err := validate.Struct(body); err != nil {
		return nil, err
	}
	return &body, nil
}

// UpdatePlaylist applies a partial update. Name, description and the cover
// image may be changed by the creator or a collaborator; the privacy flag
// only by the creator (it is ignored for collaborators). Absent fields stay
// unchanged. Accepts JSON, or multipart form data when a new cover image is
// uploaded.
// PUT /api/playlists/:id
func UpdatePlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		userID := c.GetString("user_id")
		playlistID := c.Param("id")

		body, err := bindPlaylistUpdate(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		playlist, ok := findPlaylist(ctx, c, playlistID)
		if !ok {
			return
		}

		if !playlist.CanEdit(userID) {
			respondError(c, http.StatusForbidden, "Not authorized to update this playlist")
			return
		}

		updateObj := bson.M{}
		if body.Name != nil {
			updateObj["name"] = body.Name
		}
		if body.Description != nil {
			updateObj["description"] = body.Description
		}
		if body.IsPublic != nil && playlist.IsCreator(userID) {
			updateObj["is_public"] = body.IsPublic
		}

		if c.ContentType() == "multipart/form-data" {
			coverFile, coverHeader, err := c.Request.FormFile("coverImage")
			if err == nil {
				defer coverFile.Close()
				imgURL, err := helpers.UploadFile(coverFile, coverHeader, "spotify/playlists")
				if err != nil {
					logger.Error("playlist cover upload failed", zap.Error(err))
					respondError(c, http.StatusInternalServerError, "Failed to upload cover image")
					return
				}
				updateObj["cover_image"] = imgURL
			}
		}
		updateObj["updated_at"] = time.Now()

		if _, err := playlistCollection.UpdateOne(ctx,
			bson.M{"playlist_id": playlistID}, bson.M{"$set": updateObj}); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to update playlist")
			return
		}

		updated, ok := findPlaylist(ctx, c, playlistID)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeletePlaylist removes a playlist; only the creator may delete it
// DELETE /api/playlists/:id
func DeletePlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		playlist, ok := findPlaylist(ctx, c, c.Param("id"))
		if !ok {
			return
		}

		if !playlist.IsCreator(c.GetString("user_id")) {
			respondError(c, http.StatusForbidden, "Not authorized to delete this playlist")
			return
		}

		if _, err := playlistCollection.DeleteOne(ctx, bson.M{"playlist_id": playlist.PlaylistID}); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to delete playlist")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Playlist removed"})
	}
}

// AddSongsToPlaylist appends songs in request order. Unknown song ids and
// songs already in the playlist are skipped silently; duplicates within the
// request collapse to their first occurrence. The list is persisted once
// after all insertions are attempted.
// PUT /api/playlists/:id/add-songs
func AddSongsToPlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		playlistID := c.Param("id")

		var body struct {
			SongIDs []string `json:"songIds"`
		}
		if err := c.BindJSON(&body); err != nil || body.SongIDs == nil {
			respondError(c, http.StatusBadRequest, "Song IDs are required")
			return
		}

		playlist, ok := findPlaylist(ctx, c, playlistID)
		if !ok {
			return
		}

		if !playlist.CanEdit(c.GetString("user_id")) {
			respondError(c, http.StatusForbidden, "Not authorized to modify this playlist")
			return
		}

		verified, err := verifySongIDs(ctx, body.SongIDs)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to add songs to playlist")
			return
		}
		songIDs := models.AppendUnique(playlist.SongIDs, verified...)

		update := bson.M{"$set": bson.M{
			"song_ids":   songIDs,
			"updated_at": time.Now(),
		}}
		if _, err := playlistCollection.UpdateOne(ctx, bson.M{"playlist_id": playlistID}, update); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to add songs to playlist")
			return
		}

		playlist.SongIDs = songIDs
		c.JSON(http.StatusOK, playlist)
	}
}

// RemoveSongFromPlaylist removes one song. Unlike add-songs this fails hard:
// removing a song that is not in the playlist is a BadRequest.
// PUT /api/playlists/:id/remove-song/:songId
func RemoveSongFromPlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		playlistID := c.Param("id")
		songID := c.Param("songId")

		playlist, ok := findPlaylist(ctx, c, playlistID)
		if !ok {
			return
		}

		if !playlist.CanEdit(c.GetString("user_id")) {
			respondError(c, http.StatusForbidden, "Not authorized to modify this playlist")
			return
		}

		if !models.Contains(playlist.SongIDs, songID) {
			respondError(c, http.StatusBadRequest, "Song is not in the playlist")
			return
		}

		update := bson.M{
			"$pull": bson.M{"song_ids": songID},
			"$set":  bson.M{"updated_at": time.Now()},
		}
		if _, err := playlistCollection.UpdateOne(ctx, bson.M{"playlist_id": playlistID}, update); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to remove song from playlist")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Song removed from playlist"})
	}
}

// AddCollaborator grants a user edit rights. Only the creator may manage
// collaborators, the creator can never be added as one.
// PUT /api/playlists/:id/add-collaborator
func AddCollaborator() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		playlistID := c.Param("id")

		var body struct {
			UserID string `json:"userId"`
		}
		if err := c.BindJSON(&body); err != nil || body.UserID == "" {
			respondError(c, http.StatusBadRequest, "User ID is required")
			return
		}

		count, err := userCollection.CountDocuments(ctx, bson.M{"user_id": body.UserID})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error fetching user")
			return
		}
		if count == 0 {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}

		playlist, ok := findPlaylist(ctx, c, playlistID)
		if !ok {
			return
		}

		if !playlist.IsCreator(c.GetString("user_id")) {
			respondError(c, http.StatusForbidden, "Only the playlist creator can add collaborators")
			return
		}
		if playlist.CreatorID == body.UserID {
			respondError(c, http.StatusBadRequest, "The creator cannot be added as a collaborator")
			return
		}
		if models.Contains(playlist.Collaborators, body.UserID) {
			respondError(c, http.StatusBadRequest, "User is already a collaborator")
			return
		}

		update := bson.M{
			"$addToSet": bson.M{"collaborator_ids": body.UserID},
			"$set":      bson.M{"updated_at": time.Now()},
		}
		if _, err := playlistCollection.UpdateOne(ctx, bson.M{"playlist_id": playlistID}, update); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to add collaborator")
			return
		}

		playlist.Collaborators = append(playlist.Collaborators, body.UserID)
		c.JSON(http.StatusOK, playlist)
	}
}

// RemoveCollaborator revokes a user's edit rights; creator only.
// PUT /api/playlists/:id/remove-collaborator
func RemoveCollaborator() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		playlistID := c.Param("id")

		var body struct {
			UserID string `json:"userId"`
		}
		if err := c.BindJSON(&body); err != nil || body.UserID == "" {
			respondError(c, http.StatusBadRequest, "User ID is required")
			return
		}

		playlist, ok := findPlaylist(ctx, c, playlistID)
		if !ok {
			return
		}

		if !playlist.IsCreator(c.GetString("user_id")) {
			respondError(c, http.StatusForbidden, "Only the playlist creator can remove collaborators")
			return
		}
		if !models.Contains(playlist.Collaborators, body.UserID) {
			respondError(c, http.StatusBadRequest, "User is not a collaborator")
			return
		}

		update := bson.M{
			"$pull": bson.M{"collaborator_ids": body.UserID},
			"$set":  bson.M{"updated_at": time.Now()},
		}
		if _, err := playlistCollection.UpdateOne(ctx, bson.M{"playlist_id": playlistID}, update); err != nil {
			respondError(c, http.StatusInternalServerError, "Failed to remove collaborator")
			return
		}

		collaborators, _ := models.ToggleMembership(playlist.Collaborators, body.UserID)
		playlist.Collaborators = collaborators
		c.JSON(http.StatusOK, playlist)
	}
}
