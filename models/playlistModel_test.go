package models

import "testing"

func newPlaylist(creator string, collaborators []string, public bool) *Playlist {
	name := "Road Trip"
	description := "Songs for the long drive home"
	return &Playlist{
		Name:          &name,
		Description:   &description,
		CreatorID:     creator,
		Collaborators: collaborators,
		IsPublic:      public,
	}
}

func TestPlaylistIsCreator(t *testing.T) {
	p := newPlaylist("alice", nil, true)

	if !p.IsCreator("alice") {
		t.Fatalf("alice should be the creator")
	}
	if p.IsCreator("bob") {
		t.Fatalf("bob is not the creator")
	}
	if p.IsCreator("") {
		t.Fatalf("anonymous caller can never be the creator")
	}
}

func TestPlaylistCanEdit(t *testing.T) {
	p := newPlaylist("alice", []string{"bob"}, false)

	tests := []struct {
		userID string
		want   bool
	}{
		{"alice", true},
		{"bob", true},
		{"carol", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.CanEdit(tt.userID); got != tt.want {
			t.Errorf("CanEdit(%q) = %v, want %v", tt.userID, got, tt.want)
		}
	}
}

func TestPlaylistCanViewPublic(t *testing.T) {
	p := newPlaylist("alice", nil, true)

	if !p.CanView("") {
		t.Fatalf("anyone can view a public playlist")
	}
	if !p.CanView("stranger") {
		t.Fatalf("anyone can view a public playlist")
	}
}

func TestPlaylistCanViewPrivate(t *testing.T) {
	p := newPlaylist("alice", []string{"bob"}, false)

	tests := []struct {
		userID string
		want   bool
	}{
		{"alice", true},
		{"bob", true},
		{"carol", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.CanView(tt.userID); got != tt.want {
			t.Errorf("CanView(%q) = %v, want %v", tt.userID, got, tt.want)
		}
	}
}

func TestCollaboratorLosesAccessWhenRemoved(t *testing.T) {
	p := newPlaylist("alice", []string{"bob"}, false)

	collaborators, added := ToggleMembership(p.Collaborators, "bob")
	if added {
		t.Fatalf("bob should have been removed, not added")
	}
	p.Collaborators = collaborators

	if p.CanEdit("bob") {
		t.Fatalf("removed collaborator must not edit")
	}
	if p.CanView("bob") {
		t.Fatalf("removed collaborator must not view a private playlist")
	}
}
