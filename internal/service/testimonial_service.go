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
	ErrTestimonialNotFound      = errors.New("testimonial not found")
	ErrTestimonialQuoteMissing  = errors.New("testimonial author and quote are required")
	ErrTestimonialRatingInvalid = errors.New("testimonial rating must be between 1 and 5")
)

// TestimonialService manages student and parent testimonials.
type TestimonialService struct {
	col store.Collection
}

// TestimonialInput carries fields accepted when creating or updating a
// testimonial.
type TestimonialInput struct {
	Language  string
	Author    string
	Role      string
	Quote     string
	AvatarURL string
	Rating    int
	SortOrder int
	IsActive  *bool
}

// NewTestimonialService creates a TestimonialService instance.
func NewTestimonialService(col store.Collection) *TestimonialService {
	return &TestimonialService{col: col}
}

// ListPublic returns active testimonials for one language, in display order.
func (s *TestimonialService) ListPublic(ctx context.Context, language string) ([]db.Testimonial, error) {
	normalized := locale.NormalizeLanguage(language)
	if normalized == "" {
		normalized = locale.LanguageMongolian
	}

	items := []db.Testimonial{}
	err := s.col.Find(ctx, bson.M{"language": normalized, "isActive": true}, store.FindOptions{
		Sort: bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: -1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

// List returns all testimonials for the admin screens.
func (s *TestimonialService) List(ctx context.Context, language string) ([]db.Testimonial, error) {
	filter := bson.M{}
	if normalized := locale.NormalizeLanguage(language); normalized != "" {
		filter["language"] = normalized
	}

	items := []db.Testimonial{}
	err := s.col.Find(ctx, filter, store.FindOptions{
		Sort: bson.D{{Key: "language", Value: 1}, {Key: "sortOrder", Value: 1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return items, nil
}

// Get fetches one testimonial by id.
func (s *TestimonialService) Get(ctx context.Context, id primitive.ObjectID) (*db.Testimonial, error) {
	var item db.Testimonial
	if err := s.col.FindByID(ctx, id, &item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new testimonial.
func (s *TestimonialService) Create(ctx context.Context, input TestimonialInput) (*db.Testimonial, error) {
	item, err := testimonialFromInput(input)
	if err != nil {
		return nil, err
	}

	id, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	item.ID = id
	return item, nil
}

// Update replaces an existing testimonial.
func (s *TestimonialService) Update(ctx context.Context, id primitive.ObjectID, input TestimonialInput) (*db.Testimonial, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := testimonialFromInput(input)
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	if err := s.col.ReplaceByID(ctx, id, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTestimonialNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTestimonialNotFound
		}
		return err
	}
	return nil
}

func testimonialFromInput(input TestimonialInput) (*db.Testimonial, error) {
	author := strings.TrimSpace(input.Author)
	quote := strings.TrimSpace(input.Quote)
	if author == "" || quote == "" {
		return nil, ErrTestimonialQuoteMissing
	}

	rating := input.Rating
	if rating == 0 {
		rating = 5
	}
	if rating < 1 || rating > 5 {
		return nil, ErrTestimonialRatingInvalid
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
	return &db.Testimonial{
		Language:  language,
		Author:    author,
		Role:      strings.TrimSpace(input.Role),
		Quote:     quote,
		AvatarURL: strings.TrimSpace(input.AvatarURL),
		Rating:    rating,
		SortOrder: input.SortOrder,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
