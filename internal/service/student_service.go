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
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentNameMissing    = errors.New("student name is required")
	ErrStudentContactMissing = errors.New("student phone or email is required")
	ErrStudentStatusInvalid  = errors.New("student status is invalid")
)

var studentStatuses = []string{
	db.StudentStatusNew,
	db.StudentStatusContacted,
	db.StudentStatusEnrolled,
	db.StudentStatusArchived,
}

// StudentService handles registrations from the public form and the admin
// student screens.
type StudentService struct {
	col store.Collection
}

// StudentInput carries the fields accepted when creating or updating a
// registration.
type StudentInput struct {
	Name       string
	Email      string
	Phone      string
	School     string
	Grade      string
	Program    string
	TargetCity string
	Message    string
	Language   string
	Status     string
}

// StudentFilter selects and pages the admin student list.
type StudentFilter struct {
	Status  string
	Page    int
	PerPage int
}

// StudentListResult aggregates one page of registrations.
type StudentListResult struct {
	Items      []db.Student
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// NewStudentService creates a StudentService instance.
func NewStudentService(col store.Collection) *StudentService {
	return &StudentService{col: col}
}

// Register stores a new registration from the public form. The status always
// starts at "new" regardless of input.
func (s *StudentService) Register(ctx context.Context, input StudentInput) (*db.Student, error) {
	student, err := studentFromInput(input)
	if err != nil {
		return nil, err
	}
	student.Status = db.StudentStatusNew

	id, err := s.col.InsertOne(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("register student: %w", err)
	}
	student.ID = id
	return student, nil
}

// Create stores a registration entered by an admin. Unlike Register the
// status is honored, defaulting to "new" when blank.
func (s *StudentService) Create(ctx context.Context, input StudentInput) (*db.Student, error) {
	student, err := studentFromInput(input)
	if err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = db.StudentStatusNew
	}
	if !validStudentStatus(status) {
		return nil, ErrStudentStatusInvalid
	}
	student.Status = status

	id, err := s.col.InsertOne(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	student.ID = id
	return student, nil
}

// List returns registrations matching the filter, newest first.
func (s *StudentService) List(ctx context.Context, filter StudentFilter) (StudentListResult, error) {
	result := StudentListResult{
		Page:    normalizePage(filter.Page),
		PerPage: normalizePerPage(filter.PerPage, 20),
	}

	query := bson.M{}
	if status := strings.TrimSpace(filter.Status); status != "" {
		if !validStudentStatus(status) {
			return result, ErrStudentStatusInvalid
		}
		query["status"] = status
	}

	total, err := s.col.Count(ctx, query)
	if err != nil {
		return result, fmt.Errorf("count students: %w", err)
	}
	result.Total = total
	result.TotalPages = calculateTotalPages(total, result.PerPage)

	result.Items = []db.Student{}
	err = s.col.Find(ctx, query, store.FindOptions{
		Sort:  bson.D{{Key: "createdAt", Value: -1}},
		Limit: int64(result.PerPage),
		Skip:  int64((result.Page - 1) * result.PerPage),
	}, &result.Items)
	if err != nil {
		return result, fmt.Errorf("list students: %w", err)
	}
	return result, nil
}

// Get fetches one registration by id.
func (s *StudentService) Get(ctx context.Context, id primitive.ObjectID) (*db.Student, error) {
	var student db.Student
	if err := s.col.FindByID(ctx, id, &student); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// Update replaces a registration's editable fields, including its status.
func (s *StudentService) Update(ctx context.Context, id primitive.ObjectID, input StudentInput) (*db.Student, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := studentFromInput(input)
	if err != nil {
		return nil, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = existing.Status
	}
	if !validStudentStatus(status) {
		return nil, ErrStudentStatusInvalid
	}

	updated.ID = id
	updated.Status = status
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	if err := s.col.ReplaceByID(ctx, id, updated); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a registration.
func (s *StudentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.col.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return nil
}

func studentFromInput(input StudentInput) (*db.Student, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrStudentNameMissing
	}
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if email == "" && phone == "" {
		return nil, ErrStudentContactMissing
	}

	language := locale.NormalizeLanguage(input.Language)
	if language == "" {
		language = locale.LanguageMongolian
	}

	now := time.Now().UTC()
	return &db.Student{
		Name:       name,
		Email:      email,
		Phone:      phone,
		School:     strings.TrimSpace(input.School),
		Grade:      strings.TrimSpace(input.Grade),
		Program:    strings.TrimSpace(input.Program),
		TargetCity: strings.TrimSpace(input.TargetCity),
		Message:    strings.TrimSpace(input.Message),
		Language:   language,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func validStudentStatus(status string) bool {
	for _, candidate := range studentStatuses {
		if status == candidate {
			return true
		}
	}
	return false
}
