package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Zerogne/Haneducation-sub000/internal/db"
	"github.com/Zerogne/Haneducation-sub000/internal/store"
)

func setupTestimonialService(t *testing.T) *TestimonialService {
	t.Helper()
	return NewTestimonialService(store.NewMemory().Collection(db.ColTestimonials))
}

func TestCreateTestimonialRating(t *testing.T) {
	svc := setupTestimonialService(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, TestimonialInput{Author: "Анужин", Quote: "Маш их баярлалаа"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Rating != 5 {
		t.Fatalf("expected rating to default to 5, got %d", item.Rating)
	}

	_, err = svc.Create(ctx, TestimonialInput{Author: "Анужин", Quote: "x", Rating: 6})
	if !errors.Is(err, ErrTestimonialRatingInvalid) {
		t.Fatalf("expected ErrTestimonialRatingInvalid, got %v", err)
	}

	_, err = svc.Create(ctx, TestimonialInput{Author: "Анужин"})
	if !errors.Is(err, ErrTestimonialQuoteMissing) {
		t.Fatalf("expected ErrTestimonialQuoteMissing, got %v", err)
	}
}
