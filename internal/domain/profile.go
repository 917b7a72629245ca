package domain

import (
	"time"
)

// Profile is a user's public profile as managed by the external auth
// backend. This layer only ever reads it.
type Profile struct {
	ID        string    `bson:"_id" json:"id"`
	FullName  string    `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Username  string    `bson:"username,omitempty" json:"username,omitempty"`
	AvatarURL string    `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
