package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/locale"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrServiceNotFound     = errors.New("service not found")
	ErrServiceTitleMissing = errors.New("service title is required")
)

// CatalogService manages the consulting-service catalog.
type CatalogService struct {
	col store.Collection
}

// ServiceInput carries fields accepted when creating or updating a catalog
// entry.
type ServiceInput struct {
	Language    string
	Title       string
	Summary     string
	Description string
	Icon        string
	SortOrder   int
	IsActive    *bool
}

// NewCatalogService creates a CatalogService instance.
func NewCatalogService(col store.Collection) *CatalogService {
	return &CatalogService{col: col}
}

// ListPublic returns active services for one language, in display order.
func (s *CatalogService) ListPublic(ctx context.Context, language string) ([]db.Service, error) {
	normalized := locale.NormalizeLanguage(language)
	if normalized == "" {
		normalized = locale.LanguageMongolian
	}

	items := []db.Service{}
	err := s.col.Find(ctx, bson.M{"language": normalized, "isActive": true}, store.FindOptions{
		Sort: bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: 1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return items, nil
}

// List returns all services for the admin screens, inactive included.
func (s *CatalogService) List(ctx context.Context, language string) ([]db.Service, error) {
	filter := bson.M{}
	if normalized := locale.NormalizeLanguage(language); normalized != "" {
		filter["language"] = normalized
	}

	items := []db.Service{}
	err := s.col.Find(ctx, filter, store.FindOptions{
		Sort: bson.D{{Key: "language", Value: 1}, {Key: "sortOrder", Value: 1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return items, nil
}

// Get fetches one catalog entry by id.
func (s *CatalogService) Get(ctx context.Context, id primitive.ObjectID) (*db.Service, error) {
	var item db.Service
	if err := s.col.FindByID(ctx, id, &item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new catalog entry.
func (s *CatalogService) Create(ctx context.Context, input ServiceInput) (*db.Service, error) {
	item, err := serviceFromInput(input)
	if err != nil {
		return nil, err
	}

	id, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	item.ID = id
	return item, nil
}

// Update replaces an existing catalog entry.
func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, input ServiceInput) (*db.Service, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := serviceFromInput(input)
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	if err := s.col.ReplaceByID(ctx, id, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a catalog entry.
func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return nil
}

func serviceFromInput(input ServiceInput) (*db.Service, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrServiceTitleMissing
	}

	language := locale.NormalizeLanguage(input.Language)
	if language == "" {
		language = locale.LanguageMongolian
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	return &db.Service{
		Language:    language,
		Title:       title,
		Summary:     strings.TrimSpace(input.Summary),
		Description: strings.TrimSpace(input.Description),
		Icon:        strings.TrimSpace(input.Icon),
		SortOrder:   input.SortOrder,
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
