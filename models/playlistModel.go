package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Playlist struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          *string            `bson:"name" json:"name" validate:"required,min=3,max=50"`
	Description   *string            `bson:"description" json:"description" validate:"required,min=10,max=200"`
	CoverImage    *string            `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	CreatorID     string             `bson:"creator_id" json:"creator_id"`
	Collaborators []string           `bson:"collaborator_ids" json:"collaborator_ids"`
	SongIDs       []string           `bson:"song_ids" json:"song_ids"`
	IsPublic      bool               `bson:"is_public" json:"is_public"`
	Followers     int64              `bson:"followers" json:"followers"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
	PlaylistID    string             `bson:"playlist_id" json:"playlist_id"`
}

// IsCreator reports whether userID owns the playlist.
func (p *Playlist) IsCreator(userID string) bool {
	return userID != "" && p.CreatorID == userID
}

// IsCollaborator reports whether userID has been granted edit rights.
// The creator is never listed as a collaborator.
func (p *Playlist) IsCollaborator(userID string) bool {
	return userID != "" && Contains(p.Collaborators, userID)
}

// CanEdit reports whether userID may modify the playlist's songs and
// metadata. Privacy flag, collaborator list and deletion stay creator-only.
func (p *Playlist) CanEdit(userID string) bool {
	return p.IsCreator(userID) || p.IsCollaborator(userID)
}

// CanView reports whether userID may read the playlist. An empty userID
// means the caller is not authenticated.
func (p *Playlist) CanView(userID string) bool {
	if p.IsPublic {
		return true
	}
	return p.CanEdit(userID)
}
