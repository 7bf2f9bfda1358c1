package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Song struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       *string            `bson:"title" json:"title" validate:"required,min=1,max=100"`
	ArtistID    *string            `bson:"artist_id" json:"artist_id" validate:"required"`
	AlbumID     *string            `bson:"album_id,omitempty" json:"album_id,omitempty"`
	Duration    int                `bson:"duration" json:"duration" validate:"required,min=1"` // seconds
	AudioURL    *string            `bson:"audio_url" json:"audio_url" validate:"required"`
	CoverImage  *string            `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Genre       *string            `bson:"genre,omitempty" json:"genre,omitempty"`
	Plays       int64              `bson:"plays" json:"plays"`
	Likes       int64              `bson:"likes" json:"likes"`
	IsExplicit  bool               `bson:"is_explicit" json:"is_explicit"`
	ReleaseDate *time.Time         `bson:"release_date,omitempty" json:"release_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	SongID      string             `bson:"song_id" json:"song_id"`
}
