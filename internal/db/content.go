package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentRecord stores one localized content block for a site section. The
// Content field holds the section payload serialized as JSON; its shape is
// validated against the section on write. Title, Subtitle and Description are
// denormalized copies lifted from the payload for admin list screens.
type ContentRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Section     string             `bson:"section" json:"section"`
	Language    string             `bson:"language" json:"language"`
	Content     string             `bson:"content" json:"content"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle    string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
