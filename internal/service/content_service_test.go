package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Zerogne/Haneducation-sub000/internal/content"
	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/locale"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

func setupContentService(t *testing.T) (*ContentService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemory()
	return NewContentService(mem.Collection(db.ColContent), nil), mem
}

func seedContent(t *testing.T, mem *store.MemoryStore, record db.ContentRecord) {
	t.Helper()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
		record.UpdatedAt = record.CreatedAt
	}
	if _, err := mem.Collection(db.ColContent).InsertOne(context.Background(), record); err != nil {
		t.Fatalf("failed to seed content: %v", err)
	}
}

func TestResolvePrefersStoredRecord(t *testing.T) {
	svc, mem := setupContentService(t)
	seedContent(t, mem, db.ContentRecord{
		Section:  string(content.SectionHero),
		Language: locale.LanguageMongolian,
		Content:  `{"title":"Засварласан гарчиг"}`,
		IsActive: true,
	})

	res := svc.Resolve(context.Background(), content.SectionHero, locale.LanguageMongolian)
	if res.Source != SourceRecord {
		t.Fatalf("expected source record, got %s", res.Source)
	}
	hero, ok := res.Payload.(content.HeroContent)
	if !ok {
		t.Fatalf("expected HeroContent, got %T", res.Payload)
	}
	if hero.Title != "Засварласан гарчиг" {
		t.Fatalf("unexpected title %q", hero.Title)
	}
}

func TestResolveIgnoresInactiveRecords(t *testing.T) {
	svc, mem := setupContentService(t)
	seedContent(t, mem, db.ContentRecord{
		Section:  string(content.SectionHero),
		Language: locale.LanguageMongolian,
		Content:  `{"title":"Идэвхгүй"}`,
		IsActive: false,
	})

	res := svc.Resolve(context.Background(), content.SectionHero, locale.LanguageMongolian)
	if res.Source != SourceDefault {
		t.Fatalf("expected inactive record to be skipped, got source %s", res.Source)
	}
}

func TestResolveFallsBackToDefaultThenEmpty(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	res := svc.Resolve(ctx, content.SectionHero, locale.LanguageMongolian)
	if res.Source != SourceDefault {
		t.Fatalf("expected default for hero/mn, got %s", res.Source)
	}
	if hero := res.Payload.(content.HeroContent); hero.Title == "" {
		t.Fatal("expected the default hero to carry a title")
	}

	// No default table covers French, so the neutral shape is served.
	res = svc.Resolve(ctx, content.SectionHero, "fr")
	if res.Source != SourceEmpty {
		t.Fatalf("expected empty for hero/fr, got %s", res.Source)
	}
	if hero := res.Payload.(content.HeroContent); hero.Title != "" || len(hero.Stats) != 0 {
		t.Fatalf("expected neutral hero shape, got %+v", hero)
	}
}

func TestResolveCorruptRecordFallsThrough(t *testing.T) {
	svc, mem := setupContentService(t)
	seedContent(t, mem, db.ContentRecord{
		Section:  string(content.SectionHero),
		Language: locale.LanguageMongolian,
		Content:  `{"title": not-json`,
		IsActive: true,
	})

	res := svc.Resolve(context.Background(), content.SectionHero, locale.LanguageMongolian)
	if res.Source != SourceDefault {
		t.Fatalf("expected corrupt record to fall through to default, got %s", res.Source)
	}
}

func TestResolveStoreOutageFallsThrough(t *testing.T) {
	svc, mem := setupContentService(t)
	mem.FailWith(errors.New("connection refused"))

	res := svc.Resolve(context.Background(), content.SectionContact, locale.LanguageMongolian)
	if res.Source != SourceDefault {
		t.Fatalf("expected outage to fall through to default, got %s", res.Source)
	}
	contact := res.Payload.(content.ContactContent)
	if contact.Phone == "" && contact.Email == "" {
		t.Fatal("expected the default contact block to carry contact details")
	}
}

func TestSaveThenResolveRoundTrip(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	raw := json.RawMessage(`{"phone":"+976 99119911","email":"x@y.mn"}`)
	if _, err := svc.Save(ctx, content.SectionContact, locale.LanguageMongolian, raw, 0); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	res := svc.Resolve(ctx, content.SectionContact, locale.LanguageMongolian)
	if res.Source != SourceRecord {
		t.Fatalf("expected source record, got %s", res.Source)
	}
	contact := res.Payload.(content.ContactContent)
	if contact.Phone != "+976 99119911" || contact.Email != "x@y.mn" {
		t.Fatalf("unexpected contact after round trip: %+v", contact)
	}
}

func TestSaveReplacesInsteadOfAccumulating(t *testing.T) {
	svc, mem := setupContentService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		raw := json.RawMessage(`{"title":"Гарчиг"}`)
		if _, err := svc.Save(ctx, content.SectionHero, locale.LanguageMongolian, raw, i); err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
	}

	count, err := mem.Collection(db.ColContent).Count(ctx, bson.M{
		"section":  string(content.SectionHero),
		"language": locale.LanguageMongolian,
	})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one record after repeated saves, got %d", count)
	}
}

func TestSavePreservesCreatedAt(t *testing.T) {
	svc, mem := setupContentService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, content.SectionHero, locale.LanguageMongolian, json.RawMessage(`{"title":"Нэг"}`), 0); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	var first db.ContentRecord
	filter := bson.M{"section": string(content.SectionHero), "language": locale.LanguageMongolian}
	if err := mem.Collection(db.ColContent).FindOne(ctx, filter, &first); err != nil {
		t.Fatalf("load first record: %v", err)
	}

	if _, err := svc.Save(ctx, content.SectionHero, locale.LanguageMongolian, json.RawMessage(`{"title":"Хоёр"}`), 0); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	var second db.ContentRecord
	if err := mem.Collection(db.ColContent).FindOne(ctx, filter, &second); err != nil {
		t.Fatalf("load second record: %v", err)
	}

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected createdAt to survive the replace, got %v then %v", first.CreatedAt, second.CreatedAt)
	}
	if second.Title != "Хоёр" {
		t.Fatalf("expected denormalized title to update, got %q", second.Title)
	}
}

func TestSaveRejectsBadInput(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, content.SectionHero, "fr", json.RawMessage(`{"title":"x"}`), 0)
	if !errors.Is(err, ErrLanguageUnsupported) {
		t.Fatalf("expected ErrLanguageUnsupported, got %v", err)
	}

	_, err = svc.Save(ctx, content.SectionHero, locale.LanguageMongolian, json.RawMessage(`{"title": broken`), 0)
	if !errors.Is(err, ErrContentInvalid) {
		t.Fatalf("expected ErrContentInvalid for malformed JSON, got %v", err)
	}

	_, err = svc.Save(ctx, content.SectionHero, locale.LanguageMongolian, json.RawMessage(`{}`), 0)
	if !errors.Is(err, ErrContentInvalid) {
		t.Fatalf("expected ErrContentInvalid for an empty payload, got %v", err)
	}
}

func TestDeleteReportsRemovedCount(t *testing.T) {
	svc, _ := setupContentService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, content.SectionFooter, locale.LanguageEnglish, json.RawMessage(`{"tagline":"Study in China"}`), 0); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	removed, err := svc.Delete(ctx, content.SectionFooter, locale.LanguageEnglish)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	removed, err = svc.Delete(ctx, content.SectionFooter, locale.LanguageEnglish)
	if err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected 0 removed on second delete, got %d", removed)
	}

	res := svc.Resolve(ctx, content.SectionFooter, locale.LanguageEnglish)
	if res.Source == SourceRecord {
		t.Fatal("expected delete to demote resolution below the record tier")
	}
}
