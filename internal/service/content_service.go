package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Zerogne/Haneducation-sub000/internal/content"
	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/locale"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	ErrContentInvalid        = errors.New("content payload is invalid")
	ErrLanguageUnsupported   = errors.New("language is not supported")
	ErrContentSectionMissing = errors.New("content section is required")
)

// Resolution sources, in fallback order.
const (
	SourceRecord  = "record"
	SourceDefault = "default"
	SourceEmpty   = "empty"
)

// Resolution is what a (section, language) pair resolves to. Payload is
// never nil and Source says which tier produced it.
type Resolution struct {
	Section  content.Section
	Language string
	Source   string
	Payload  content.Payload
}

// ContentService owns the content collection: the three-tier read-side
// resolver and the replace-on-save writer.
type ContentService struct {
	col store.Collection
	log *zap.Logger
}

// NewContentService creates a ContentService instance.
func NewContentService(col store.Collection, log *zap.Logger) *ContentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentService{col: col, log: log}
}

// Resolve returns the displayable payload for a section and language.
// Tier 1 is the first active database record by ascending order; a store
// failure or a corrupt payload is logged and demotes the lookup to tier 2,
// the static default table, and finally to the section's neutral shape.
// Resolve never fails: unknown languages simply miss tiers 1 and 2.
func (s *ContentService) Resolve(ctx context.Context, section content.Section, language string) Resolution {
	var records []db.ContentRecord
	err := s.col.Find(ctx,
		bson.M{"section": string(section), "language": language, "isActive": true},
		store.FindOptions{Sort: bson.D{{Key: "order", Value: 1}}},
		&records,
	)
	switch {
	case err != nil:
		s.log.Warn("content lookup failed, serving fallback",
			zap.String("section", string(section)),
			zap.String("language", language),
			zap.Error(err))
	case len(records) > 0:
		payload, decodeErr := content.Decode(section, []byte(records[0].Content))
		if decodeErr == nil {
			return Resolution{Section: section, Language: language, Source: SourceRecord, Payload: payload}
		}
		// Corrupt stored JSON is a tier-1 miss, never a caller-visible error.
		s.log.Warn("stored content payload is corrupt, serving fallback",
			zap.String("section", string(section)),
			zap.String("language", language),
			zap.String("recordId", records[0].ID.Hex()),
			zap.Error(decodeErr))
	}

	if payload, ok := content.Default(section, language); ok {
		return Resolution{Section: section, Language: language, Source: SourceDefault, Payload: payload}
	}
	return Resolution{Section: section, Language: language, Source: SourceEmpty, Payload: content.Empty(section)}
}

// Save validates the payload against the section's shape and replaces the
// (section, language) record in one upsert. Repeated saves leave exactly one
// record; the unique index on the pair backs that up.
func (s *ContentService) Save(ctx context.Context, section content.Section, language string, raw json.RawMessage, order int) (*db.ContentRecord, error) {
	normalized := locale.NormalizeLanguage(language)
	if normalized == "" {
		return nil, fmt.Errorf("%w: %q", ErrLanguageUnsupported, language)
	}

	payload, err := content.Decode(section, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentInvalid, err)
	}

	canonical, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", section, err)
	}

	now := time.Now().UTC()
	createdAt := now
	var existing db.ContentRecord
	if err := s.col.FindOne(ctx, bson.M{"section": string(section), "language": normalized}, &existing); err == nil {
		createdAt = existing.CreatedAt
	}

	title, subtitle, description := content.Meta(payload)
	record := db.ContentRecord{
		Section:     string(section),
		Language:    normalized,
		Content:     string(canonical),
		Title:       title,
		Subtitle:    subtitle,
		Description: description,
		IsActive:    true,
		Order:       order,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	}

	if err := s.col.ReplaceOne(ctx, bson.M{"section": string(section), "language": normalized}, record, true); err != nil {
		return nil, fmt.Errorf("save content %s/%s: %w", section, normalized, err)
	}
	return &record, nil
}

// List returns content records, optionally filtered by section and language.
// Admin callers pass includeInactive to see disabled records too.
func (s *ContentService) List(ctx context.Context, section, language string, includeInactive bool) ([]db.ContentRecord, error) {
	filter := bson.M{}
	if section != "" {
		parsed, err := content.ParseSection(section)
		if err != nil {
			return nil, err
		}
		filter["section"] = string(parsed)
	}
	if language != "" {
		filter["language"] = language
	}
	if !includeInactive {
		filter["isActive"] = true
	}

	records := []db.ContentRecord{}
	err := s.col.Find(ctx, filter, store.FindOptions{
		Sort: bson.D{{Key: "section", Value: 1}, {Key: "order", Value: 1}},
	}, &records)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return records, nil
}

// Delete removes every record for the exact (section, language) pair and
// reports how many were removed.
func (s *ContentService) Delete(ctx context.Context, section content.Section, language string) (int64, error) {
	removed, err := s.col.DeleteMany(ctx, bson.M{"section": string(section), "language": language})
	if err != nil {
		return 0, fmt.Errorf("delete content %s/%s: %w", section, language, err)
	}
	return removed, nil
}
