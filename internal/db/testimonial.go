package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Testimonial is a quote from a student or parent shown on the public site.
type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Language  string             `bson:"language" json:"language"`
	Author    string             `bson:"author" json:"author"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Quote     string             `bson:"quote" json:"quote"`
	AvatarURL string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Rating    int                `bson:"rating" json:"rating"`
	SortOrder int                `bson:"sortOrder" json:"sortOrder"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
