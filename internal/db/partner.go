package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partner is a partner university or organization. Partners are
// language-neutral: the logo carries the name.
type Partner struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	LogoURL    string             `bson:"logoUrl" json:"logoUrl"`
	WebsiteURL string             `bson:"websiteUrl,omitempty" json:"websiteUrl,omitempty"`
	SortOrder  int                `bson:"sortOrder" json:"sortOrder"`
	IsActive   bool               `bson:"isActive" json:"isActive"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
