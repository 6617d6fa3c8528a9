package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrImageNotFound is returned when an image asset id matches nothing.
var ErrImageNotFound = errors.New("image not found")

// ImageService tracks uploaded images and the storage they occupy.
type ImageService struct {
	col store.Collection
}

// StorageUsage summarizes the media library against the configured quota.
type StorageUsage struct {
	ImageCount  int64   `json:"imageCount"`
	TotalBytes  int64   `json:"totalBytes"`
	QuotaBytes  int64   `json:"quotaBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

// NewImageService creates an ImageService instance.
func NewImageService(col store.Collection) *ImageService {
	return &ImageService{col: col}
}

// Record stores the metadata of a freshly uploaded image.
func (s *ImageService) Record(ctx context.Context, asset db.ImageAsset) (*db.ImageAsset, error) {
	asset.CreatedAt = time.Now().UTC()
	id, err := s.col.InsertOne(ctx, asset)
	if err != nil {
		return nil, fmt.Errorf("record image: %w", err)
	}
	asset.ID = id
	return &asset, nil
}

// List returns all image assets, newest first.
func (s *ImageService) List(ctx context.Context) ([]db.ImageAsset, error) {
	items := []db.ImageAsset{}
	err := s.col.Find(ctx, bson.M{}, store.FindOptions{
		Sort: bson.D{{Key: "createdAt", Value: -1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return items, nil
}

// Get fetches one image asset by id.
func (s *ImageService) Get(ctx context.Context, id primitive.ObjectID) (*db.ImageAsset, error) {
	var item db.ImageAsset
	if err := s.col.FindByID(ctx, id, &item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Delete removes an image asset record.
func (s *ImageService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}

// Usage sums the stored image sizes against the configured quota.
func (s *ImageService) Usage(ctx context.Context, quotaBytes int64) (StorageUsage, error) {
	items, err := s.List(ctx)
	if err != nil {
		return StorageUsage{}, err
	}

	usage := StorageUsage{ImageCount: int64(len(items)), QuotaBytes: quotaBytes}
	for _, item := range items {
		usage.TotalBytes += item.ByteSize
	}
	if quotaBytes > 0 {
		usage.UsedPercent = float64(usage.TotalBytes) / float64(quotaBytes) * 100
	}
	return usage, nil
}
