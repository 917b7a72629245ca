package domain

import (
	"strings"
	"time"
)

// SpeculativeIDPrefix marks posts created locally before the backend has
// confirmed the write. A post with this prefix is replaced wholesale by the
// next full feed refresh, never patched in place.
const SpeculativeIDPrefix = "temp-"

// Author is the display identity attached to a community post.
type Author struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Post is a community feed entry shaped for rendering.
type Post struct {
	ID         string `json:"id"`
	Author     Author `json:"author"`
	Content    string `json:"content"`
	Image      string `json:"image,omitempty"`
	Likes      int    `json:"likes"`
	Comments   int    `json:"comments"`
	TimePosted string `json:"timePosted"`
	LikedByMe  bool   `json:"likedByMe"`
}

// IsSpeculative reports whether the post is a local entry still awaiting
// backend confirmation.
func (p Post) IsSpeculative() bool {
	return strings.HasPrefix(p.ID, SpeculativeIDPrefix)
}

// PostRow is the raw post shape as it leaves the backend, before any
// display defaulting. Both the primary store and the fallback list function
// decode into this single boundary type; everything past the repositories
// works with Post.
type PostRow struct {
	ID        string      `bson:"_id"`
	UserID    string      `bson:"userId"`
	Content   string      `bson:"content"`
	ImageURL  string      `bson:"imageUrl,omitempty"`
	Likes     int         `bson:"likes,omitempty"`
	CreatedAt time.Time   `bson:"createdAt"`
	Profile   *ProfileRow `bson:"profile,omitempty"`
}

// ProfileRow is the author profile as joined onto a PostRow. Any field may
// be empty; display defaults are applied when the row becomes a Post.
type ProfileRow struct {
	FullName  string `bson:"fullName,omitempty"`
	Username  string `bson:"username,omitempty"`
	AvatarURL string `bson:"avatarUrl,omitempty"`
}

// NewPost carries the fields of a post insert.
type NewPost struct {
	UserID   string
	Content  string
	ImageURL string
}

// Change-event operation types delivered by the post collection watch.
const (
	ChangeInsert = "insert"
	ChangeUpdate = "update"
	ChangeDelete = "delete"
)

// PostChange is a single change notification from the post collection.
// Consumers treat any event as "the collection moved" and re-fetch; the
// payload exists for logging only.
type PostChange struct {
	Operation string
	PostID    string
}
