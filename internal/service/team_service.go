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
	ErrTeamMemberNotFound    = errors.New("team member not found")
	ErrTeamMemberNameMissing = errors.New("team member name is required")
)

// TeamService manages staff profiles.
type TeamService struct {
	col store.Collection
}

// TeamMemberInput carries fields accepted when creating or updating a staff
// profile.
type TeamMemberInput struct {
	Language  string
	Name      string
	Role      string
	Bio       string
	PhotoURL  string
	SortOrder int
	IsActive  *bool
}

// NewTeamService creates a TeamService instance.
func NewTeamService(col store.Collection) *TeamService {
	return &TeamService{col: col}
}

// ListPublic returns active team members for one language, in display order.
func (s *TeamService) ListPublic(ctx context.Context, language string) ([]db.TeamMember, error) {
	normalized := locale.NormalizeLanguage(language)
	if normalized == "" {
		normalized = locale.LanguageMongolian
	}

	items := []db.TeamMember{}
	err := s.col.Find(ctx, bson.M{"language": normalized, "isActive": true}, store.FindOptions{
		Sort: bson.D{{Key: "sortOrder", Value: 1}, {Key: "createdAt", Value: 1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return items, nil
}

// List returns all team members for the admin screens.
func (s *TeamService) List(ctx context.Context, language string) ([]db.TeamMember, error) {
	filter := bson.M{}
	if normalized := locale.NormalizeLanguage(language); normalized != "" {
		filter["language"] = normalized
	}

	items := []db.TeamMember{}
	err := s.col.Find(ctx, filter, store.FindOptions{
		Sort: bson.D{{Key: "language", Value: 1}, {Key: "sortOrder", Value: 1}},
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return items, nil
}

// Get fetches one team member by id.
func (s *TeamService) Get(ctx context.Context, id primitive.ObjectID) (*db.TeamMember, error) {
	var item db.TeamMember
	if err := s.col.FindByID(ctx, id, &item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new team member.
func (s *TeamService) Create(ctx context.Context, input TeamMemberInput) (*db.TeamMember, error) {
	item, err := teamMemberFromInput(input)
	if err != nil {
		return nil, err
	}

	id, err := s.col.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	item.ID = id
	return item, nil
}

// Update replaces an existing team member.
func (s *TeamService) Update(ctx context.Context, id primitive.ObjectID, input TeamMemberInput) (*db.TeamMember, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item, err := teamMemberFromInput(input)
	if err != nil {
		return nil, err
	}
	item.ID = id
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()

	if err := s.col.ReplaceByID(ctx, id, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return item, nil
}

// Delete removes a team member.
func (s *TeamService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTeamMemberNotFound
		}
		return err
	}
	return nil
}

func teamMemberFromInput(input TeamMemberInput) (*db.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamMemberNameMissing
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
	return &db.TeamMember{
		Language:  language,
		Name:      name,
		Role:      strings.TrimSpace(input.Role),
		Bio:       strings.TrimSpace(input.Bio),
		PhotoURL:  strings.TrimSpace(input.PhotoURL),
		SortOrder: input.SortOrder,
		IsActive:  active,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
