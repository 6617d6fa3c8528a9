package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is one consulting service offered by the agency, in one language.
// Description holds markdown; public responses carry a sanitized rendering.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Language    string             `bson:"language" json:"language"`
	Title       string             `bson:"title" json:"title"`
	Summary     string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	SortOrder   int                `bson:"sortOrder" json:"sortOrder"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
