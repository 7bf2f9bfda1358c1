package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Album struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        *string            `bson:"title" json:"title" validate:"required,min=1,max=100"`
	ArtistID     *string            `bson:"artist_id" json:"artist_id" validate:"required"`
	ReleasedDate *time.Time         `bson:"released_date,omitempty" json:"released_date,omitempty"`
	CoverImage   *string            `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	SongIDs      []string           `bson:"song_ids" json:"song_ids"`
	Genre        *string            `bson:"genre,omitempty" json:"genre,omitempty"`
	Likes        int64              `bson:"likes" json:"likes"`
	Description  *string            `bson:"description,omitempty" json:"description,omitempty"`
	IsExplicit   bool               `bson:"is_explicit" json:"is_explicit"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	AlbumID      string             `bson:"album_id" json:"album_id"`
}
