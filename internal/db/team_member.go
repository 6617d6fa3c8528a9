package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamMember is a staff profile, one record per language.
type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Language  string             `bson:"language" json:"language"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL  string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	SortOrder int                `bson:"sortOrder" json:"sortOrder"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
