package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/abanoubkerols/SpotifyApi/database"
	"github.com/abanoubkerols/SpotifyApi/helpers"
	"github.com/abanoubkerols/SpotifyApi/models"
)

var userCollection *mongo.Collection

func InitUserController() {
	userCollection = database.OpenCollection(database.Client, "users")
}

var validate = validator.New()

// HashPassword hashes a plain password
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// VerifyPassword compares a hashed password with plain text
func VerifyPassword(hashedPassword string, providedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword)) == nil
}

// RegisterUser creates a new account
// POST /api/users/register
func RegisterUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var body struct {
			Name     string `json:"name" validate:"required,min=2,max=100"`
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required,min=6"`
		}

		if err := c.BindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		count, err := userCollection.CountDocuments(ctx, bson.M{"email": body.Email})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error checking email")
			return
		}
		if count > 0 {
			respondError(c, http.StatusConflict, "User already exists")
			return
		}

		password, err := HashPassword(body.Password)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "password hashing failed")
			return
		}

		now := time.Now()
		user := models.User{
			ID:                primitive.NewObjectID(),
			Name:              &body.Name,
			Email:             &body.Email,
			Password:          &password,
			IsAdmin:           false,
			LikedSongs:        []string{},
			LikedAlbums:       []string{},
			FollowedArtists:   []string{},
			FollowedPlaylists: []string{},
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		user.UserID = user.ID.Hex()

		if _, err := userCollection.InsertOne(ctx, user); err != nil {
			logger.Error("failed to insert user", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "user not created")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"user_id":  user.UserID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		})
	}
}

// LoginUser verifies credentials and returns a bearer token
// POST /api/users/login
func LoginUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var body struct {
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required"`
		}

		if err := c.BindJSON(&body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(body); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		var foundUser models.User
		err := userCollection.FindOne(ctx, bson.M{"email": body.Email}).Decode(&foundUser)
		if err != nil || foundUser.Password == nil || !VerifyPassword(*foundUser.Password, body.Password) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := helpers.GenerateToken(foundUser.UserID, *foundUser.Email, *foundUser.Name, foundUser.IsAdmin)
		if err != nil {
			logger.Error("token generation failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":         foundUser.UserID,
			"email":           foundUser.Email,
			"is_admin":        foundUser.IsAdmin,
			"profile_picture": foundUser.ProfilePicture,
			"token":           token,
		})
	}
}

// GetUserProfile returns the authenticated user's document
// GET /api/users/profile
func GetUserProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userID := c.GetString("user_id")

		var user models.User
		err := userCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				respondError(c, http.StatusNotFound, "User not found")
				return
			}
			respondError(c, http.StatusInternalServerError, "error fetching user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

type profileUpdate struct {
	Name           *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Password       *string `json:"password" validate:"omitempty,min=6"`
	ProfilePicture *string `json:"profile_picture"`
}

// bindProfileUpdate reads a partial profile update from either a JSON body
// or a multipart form. Absent fields stay nil; in the multipart case the
// picture itself arrives as a file and is handled by the caller.
func bindProfileUpdate(c *gin.Context) (*profileUpdate, error) {
	var body profileUpdate
	if c.ContentType() == "multipart/form-data" {
		if err := c.Request.ParseMultipartForm(20 << 20); err != nil {
			return nil, err
		}
		if v, ok := c.GetPostForm("name"); ok {
			body.Name = &v
		}
		if v, ok := c.GetPostForm("email"); ok {
			body.Email = &v
		}
		if v, ok := c.GetPostForm("password"); ok {
			body.Password = &v
		}
	} else if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}
	if err := validate.Struct(body); err != nil {
		return nil, err
	}
	return &body, nil
}

// UpdateUserProfile applies a partial update to the authenticated user.
// Absent fields are left unchanged. Accepts JSON, or multipart form data
// when a new profile picture is uploaded.
// PUT /api/users/profile
func UpdateUserProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		userID := c.GetString("user_id")

		body, err := bindProfileUpdate(c)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		updateObj := bson.M{}
		if body.Name != nil {
			updateObj["name"] = body.Name
		}
		if body.Email != nil {
			updateObj["email"] = body.Email
		}
		if body.Password != nil {
			password, err := HashPassword(*body.Password)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "password hashing failed")
				return
			}
			updateObj["password"] = password
		}
		if body.ProfilePicture != nil {
			updateObj["profile_picture"] = body.ProfilePicture
		}
		if c.ContentType() == "multipart/form-data" {
			pictureFile, pictureHeader, err := c.Request.FormFile("profilePicture")
			if err == nil {
				defer pictureFile.Close()
				imgURL, err := helpers.UploadFile(pictureFile, pictureHeader, "spotify/users")
				if err != nil {
					logger.Error("profile picture upload failed", zap.Error(err))
					respondError(c, http.StatusInternalServerError, "Failed to upload profile picture")
					return
				}
				updateObj["profile_picture"] = imgURL
			}
		}
		updateObj["updated_at"] = time.Now()

		result, err := userCollection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": updateObj})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "error while updating user profile")
			return
		}
		if result.MatchedCount == 0 {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}

		var updatedUser models.User
		if err := userCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&updatedUser); err != nil {
			respondError(c, http.StatusInternalServerError, "error while fetching updated user profile")
			return
		}

		c.JSON(http.StatusOK, updatedUser)
	}
}

// relationKind describes one membership set on the user plus the
// denormalized counter on the target entity it mirrors.
type relationKind struct {
	userField     string // membership array on the user document
	targetIDField string // id field on the target collection
	counterField  string // denormalized counter on the target
	responseField string
	notFound      string
	addedMsg      string
	removedMsg    string
	collection    func() *mongo.Collection
	membership    func(*models.User) []string
}

// toggleRelation flips membership of the acting user in one relation set and
// keeps the target's counter in sync. Both writes use atomic update operators
// ($addToSet/$pull and $inc) rather than read-modify-write; the decrement is
// filtered on counter > 0 so the counter can never go negative.
func toggleRelation(c *gin.Context, kind relationKind) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := c.GetString("user_id")
	targetID := c.Param("id")

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "error fetching user")
		return
	}

	targetCollection := kind.collection()
	count, err := targetCollection.CountDocuments(ctx, bson.M{kind.targetIDField: targetID})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "error fetching "+kind.responseField)
		return
	}
	if count == 0 {
		respondError(c, http.StatusNotFound, kind.notFound)
		return
	}

	set, added := models.ToggleMembership(kind.membership(&user), targetID)

	var userUpdate, counterUpdate, counterFilter bson.M
	if added {
		userUpdate = bson.M{
			"$addToSet": bson.M{kind.userField: targetID},
			"$set":      bson.M{"updated_at": time.Now()},
		}
		counterFilter = bson.M{kind.targetIDField: targetID}
		counterUpdate = bson.M{"$inc": bson.M{kind.counterField: 1}}
	} else {
		userUpdate = bson.M{
			"$pull": bson.M{kind.userField: targetID},
			"$set":  bson.M{"updated_at": time.Now()},
		}
		counterFilter = bson.M{
			kind.targetIDField: targetID,
			kind.counterField:  bson.M{"$gt": 0},
		}
		counterUpdate = bson.M{"$inc": bson.M{kind.counterField: -1}}
	}

	if _, err := userCollection.UpdateOne(ctx, bson.M{"user_id": userID}, userUpdate); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to update "+kind.userField)
		return
	}
	if _, err := targetCollection.UpdateOne(ctx, counterFilter, counterUpdate); err != nil {
		logger.Error("counter update failed after membership write",
			zap.String("relation", kind.userField),
			zap.String("target", targetID),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to update "+kind.counterField)
		return
	}

	message := kind.removedMsg
	if added {
		message = kind.addedMsg
	}
	c.JSON(http.StatusOK, gin.H{
		kind.responseField: set,
		"message":          message,
	})
}

// ToggleLikeSong likes or unlikes a song for the authenticated user
// PUT /api/users/like-song/:id
func ToggleLikeSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		toggleRelation(c, relationKind{
			userField:     "liked_songs",
			targetIDField: "song_id",
			counterField:  "likes",
			responseField: "likedSongs",
			notFound:      "Song not found",
			addedMsg:      "Song added to liked songs",
			removedMsg:    "Song removed from liked songs",
			collection:    func() *mongo.Collection { return songCollection },
			membership:    func(u *models.User) []string { return u.LikedSongs },
		})
	}
}

// ToggleLikeAlbum likes or unlikes an album
// PUT /api/users/like-album/:id
func ToggleLikeAlbum() gin.HandlerFunc {
	return func(c *gin.Context) {
		toggleRelation(c, relationKind{
			userField:     "liked_albums",
			targetIDField: "album_id",
			counterField:  "likes",
			responseField: "likedAlbums",
			notFound:      "Album not found",
			addedMsg:      "Album added to liked albums",
			removedMsg:    "Album removed from liked albums",
			collection:    func() *mongo.Collection { return albumCollection },
			membership:    func(u *models.User) []string { return u.LikedAlbums },
		})
	}
}

// ToggleFollowArtist follows or unfollows an artist
// PUT /api/users/follow-artist/:id
func ToggleFollowArtist() gin.HandlerFunc {
	return func(c *gin.Context) {
		toggleRelation(c, relationKind{
			userField:     "followed_artists",
			targetIDField: "artist_id",
			counterField:  "followers",
			responseField: "followedArtists",
			notFound:      "Artist not found",
			addedMsg:      "Artist followed",
			removedMsg:    "Artist unfollowed",
			collection:    func() *mongo.Collection { return artistCollection },
			membership:    func(u *models.User) []string { return u.FollowedArtists },
		})
	}
}

// ToggleFollowPlaylist follows or unfollows a playlist
// PUT /api/users/follow-playlist/:id
func ToggleFollowPlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		toggleRelation(c, relationKind{
			userField:     "followed_playlists",
			targetIDField: "playlist_id",
			counterField:  "followers",
			responseField: "followedPlaylists",
			notFound:      "Playlist not found",
			addedMsg:      "Playlist followed",
			removedMsg:    "Playlist unfollowed",
			collection:    func() *mongo.Collection { return playlistCollection },
			membership:    func(u *models.User) []string { return u.FollowedPlaylists },
		})
	}
}
