package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email             *string            `bson:"email" json:"email" validate:"required,email"`
	Password          *string            `bson:"password" json:"-" validate:"required,min=6"`
	ProfilePicture    *string            `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	IsAdmin           bool               `bson:"is_admin" json:"is_admin"`
	LikedSongs        []string           `bson:"liked_songs" json:"liked_songs"`
	LikedAlbums       []string           `bson:"liked_albums" json:"liked_albums"`
	FollowedArtists   []string           `bson:"followed_artists" json:"followed_artists"`
	FollowedPlaylists []string           `bson:"followed_playlists" json:"followed_playlists"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
	UserID            string             `bson:"user_id" json:"user_id"`
}
