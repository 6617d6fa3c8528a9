package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPartnerNotFound    = errors.New("partner not found")
	ErrPartnerLogoMissing = errors.New("partner name and logo are required")
)

// PartnerService manages the partner-university strip.
type PartnerService struct {
	col store.Collection
}

// PartnerInput carries fields accepted when creating or updating a partner.
type PartnerInput struct {
	Name       string
	LogoURL    string
	WebsiteURL string
	SortOrder  int
	IsActive   *bool
}

// NewPartnerService creates a PartnerService instance.
func NewPartnerService(col store.Collection) *PartnerService {
	return &PartnerService{col: col}
}

// ListPublic returns active partners in display order.
func (s *PartnerService) ListPublic(ctx context.Context) ([]db.Partner, error) {
	items := []db.Partner{}
	err := s.col.Find(ctx, bson.M{"isActive": true}, store.FindOptions{
		Sort: bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: 1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return items, nil
}

// List returns all partners for the admin screens.
func (s *PartnerService) List(ctx context.Context) ([]db.Partner, error) {
	items := []db.Partner{}
	err := s.col.Find(ctx, bson.M{}, store.FindOptions{
		Sort: bson.D{{Key: "sortOrder", Value: 1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	return items, nil
}

// Get fetches one partner by id.
func (s *PartnerService) Get(ctx context.Context, id primitive.ObjectID) (*db.Partner, error) {
	var item db.Partner
	if err := s.col.FindByID(ctx, id, &item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new partner.
func (s *PartnerService) Create(ctx context.Context, input PartnerInput) (*db.Partner, error) {
	item, err := partnerFromInput(input)
	if err != nil {
		return nil, err
	}

	id, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}
	item.ID = id
	return item, nil
}

// Update replaces an existing partner.
func (s *PartnerService) Update(ctx context.Context, id primitive.ObjectID, input PartnerInput) (*db.Partner, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := partnerFromInput(input)
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	if err := s.col.ReplaceByID(ctx, id, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a partner.
func (s *PartnerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPartnerNotFound
		}
		return err
	}
	return nil
}

func partnerFromInput(input PartnerInput) (*db.Partner, error) {
	name := strings.TrimSpace(input.Name)
	logo := strings.TrimSpace(input.LogoURL)
	if name == "" || logo == "" {
		return nil, ErrPartnerLogoMissing
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	return &db.Partner{
		Name:       name,
		LogoURL:    logo,
		WebsiteURL: strings.TrimSpace(input.WebsiteURL),
		SortOrder:  input.SortOrder,
		IsActive:   active,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
