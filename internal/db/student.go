package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student registration statuses.
const (
	StudentStatusNew       = "new"
	StudentStatusContacted = "contacted"
	StudentStatusEnrolled  = "enrolled"
	StudentStatusArchived  = "archived"
)

// Student is a registration submitted through the public site form.
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	School     string             `bson:"school,omitempty" json:"school,omitempty"`
	Grade      string             `bson:"grade,omitempty" json:"grade,omitempty"`
	Program    string             `bson:"program,omitempty" json:"program,omitempty"`
	TargetCity string             `bson:"targetCity,omitempty" json:"targetCity,omitempty"`
	Message    string             `bson:"message,omitempty" json:"message,omitempty"`
	Language   string             `bson:"language" json:"language"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
