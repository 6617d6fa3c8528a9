package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImageAsset records one uploaded image and the object-storage metadata
// returned by the upload pipeline.
type ImageAsset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FileName  string             `bson:"fileName" json:"fileName"`
	ObjectKey string             `bson:"objectKey" json:"objectKey"`
	URL       string             `bson:"url" json:"url"`
	Format    string             `bson:"format" json:"format"`
	Width     int                `bson:"width" json:"width"`
	Height    int                `bson:"height" json:"height"`
	ByteSize  int64              `bson:"byteSize" json:"byteSize"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
