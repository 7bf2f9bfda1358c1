package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Artist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Bio       *string            `bson:"bio" json:"bio" validate:"required"`
	Genres    []string           `bson:"genres" json:"genres" validate:"required,min=1"`
	Image     *string            `bson:"image,omitempty" json:"image,omitempty"`
	Followers int64              `bson:"followers" json:"followers"`
	Verified  bool               `bson:"verified" json:"verified"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	ArtistID  string             `bson:"artist_id" json:"artist_id"`
}
